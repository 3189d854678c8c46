package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the lineage CLI.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Subtle gradient (teal to blue)
	s1 := termenv.String(" _ _                          ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("| (_)_ __   ___  __ _  __ _  ___ ").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String("| | | '_ \\ / _ \\/ _` |/ _` |/ _ \\").Foreground(p.Color("#38bdf8"))
	s4 := termenv.String("| | | | | |  __/ (_| | (_| |  __/").Foreground(p.Color("#60a5fa"))
	s5 := termenv.String("|_|_|_| |_|\\___|\\__,_|\\__, |\\___|").Foreground(p.Color("#818cf8"))
	s6 := termenv.String("                      |___/      ").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
