package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitreaper/lineage/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the hierarchy visualization",
	Long:  `Loads the manifest and outputs a Mermaid diagram (graph TD) of the declared hierarchy.`,
	Run: func(cmd *cobra.Command, args []string) {
		h, err := loadHierarchy(cmd)
		if err != nil {
			fmt.Printf("Error loading hierarchy: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(h.Root()))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
