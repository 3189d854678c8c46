package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitreaper/lineage"
	"github.com/bitreaper/lineage/internal/logging"
	"github.com/bitreaper/lineage/pkg/manifest"
)

var rootCmd = &cobra.Command{
	Use:   "lineage",
	Short: "Lineage resolves versioned and modeled specialization hierarchies",
	Long: `Lineage loads a declared specialization hierarchy (a version chain or a
model tree) and answers resolution queries against it: which known revision
handles an observed version, which node handles an observed device model.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("manifest", "f", "", "Path to the hierarchy manifest (YAML)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// loadHierarchy builds the hierarchy declared by the --manifest flag, wired
// with the CLI logger.
func loadHierarchy(cmd *cobra.Command) (*lineage.Hierarchy, error) {
	path, _ := cmd.Flags().GetString("manifest")
	if path == "" {
		return nil, fmt.Errorf("no manifest given (use -f path/to/hierarchy.yaml)")
	}

	h, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}

	level, _ := cmd.Flags().GetString("log-level")
	return lineage.FromRegistry(h.Registry(),
		lineage.WithName(h.Name()),
		lineage.WithLogger(logging.New(logging.ParseLevel(level))),
	), nil
}
