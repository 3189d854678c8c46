package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/resolve"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a version or model against the hierarchy",
	Long: `Resolves a query tag against the manifest's hierarchy and prints the
matching node. Use --version for chain lookups and --model for tree lookups.`,
	Run: func(cmd *cobra.Command, args []string) {
		h, err := loadHierarchy(cmd)
		if err != nil {
			fmt.Printf("Error loading hierarchy: %v\n", err)
			os.Exit(1)
		}

		version, _ := cmd.Flags().GetString("version")
		model, _ := cmd.Flags().GetString("model")
		if (version == "") == (model == "") {
			fmt.Println("Specify exactly one of --version or --model")
			os.Exit(1)
		}

		var opts []resolve.Option
		if exact, _ := cmd.Flags().GetBool("exact"); exact {
			opts = append(opts, resolve.Exact())
		}
		if fallback, _ := cmd.Flags().GetBool("fallback"); fallback {
			opts = append(opts, resolve.FallbackToRoot())
		}

		var node *domain.Node
		if version != "" {
			node, err = h.FindVersion(version, opts...)
		} else {
			node, err = h.FindModel(model, opts...)
		}
		if err != nil {
			fmt.Printf("Resolution failed: %v\n", err)
			os.Exit(1)
		}

		out := map[string]any{
			"tag":   node.Tag,
			"depth": node.Depth(),
		}
		if len(node.Aliases) > 0 {
			out["aliases"] = node.Aliases
		}
		if node.Parent != nil {
			out["parent"] = node.Parent.Tag
		}
		if attrs, ok := node.Payload.(map[string]any); ok {
			out["attrs"] = attrs
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Printf("Error encoding result: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	resolveCmd.Flags().String("version", "", "Version tag to resolve (chain hierarchies)")
	resolveCmd.Flags().String("model", "", "Model identifier to resolve (tree hierarchies)")
	resolveCmd.Flags().Bool("exact", false, "Require an exact tag match")
	resolveCmd.Flags().Bool("fallback", false, "Fall back to the root on a miss")
	rootCmd.AddCommand(resolveCmd)
}
