package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitreaper/lineage/internal/presentation/graph"
	"github.com/bitreaper/lineage/internal/presentation/tui"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Pretty-print the hierarchy",
	Long:  `Loads the manifest and renders a readable outline of the declared hierarchy in the terminal.`,
	Run: func(cmd *cobra.Command, args []string) {
		h, err := loadHierarchy(cmd)
		if err != nil {
			fmt.Printf("Error loading hierarchy: %v\n", err)
			os.Exit(1)
		}

		if noBanner, _ := cmd.Flags().GetBool("no-banner"); !noBanner {
			tui.PrintBanner()
		}

		outline := graph.GenerateOutline(h.Name(), h.Topology(), h.Root())
		render := tui.NewRenderer()
		out, err := render(outline)
		if err != nil {
			// Renderer failure is cosmetic only; fall back to raw markdown.
			out = outline
		}
		fmt.Print(out)
	},
}

func init() {
	showCmd.Flags().Bool("no-banner", false, "Suppress the ASCII banner")
	rootCmd.AddCommand(showCmd)
}
