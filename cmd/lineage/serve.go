package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpAdapter "github.com/bitreaper/lineage/internal/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resolver HTTP server",
	Long:  `Loads the manifest and exposes the hierarchy as a read-only JSON API: resolution queries, introspection, health and metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		h, err := loadHierarchy(cmd)
		if err != nil {
			fmt.Printf("Error loading hierarchy: %v\n", err)
			os.Exit(1)
		}

		port, _ := cmd.Flags().GetString("port")
		handler := httpAdapter.NewHandler(h)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: handler,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting lineage server on %s\n", srv.Addr)
			fmt.Printf("Serving hierarchy: %s (%s, %d nodes)\n", h.Name(), h.Topology(), h.Len())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown failed: %v\n", err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Forced close failed: %v\n", err)
				}
			}
		}
	},
}

func init() {
	serveCmd.Flags().String("port", "8080", "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
