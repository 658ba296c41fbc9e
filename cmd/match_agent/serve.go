package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for job ranking, project selection, content optimization, and context assembly.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (0 = config default)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	c, cleanup, err := newComponents(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	port := c.Config.Port
	if servePort != 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:      port,
		Scorer:    c.Scorer,
		Selector:  c.Selector,
		Optimizer: c.Optimizer,
		Pipeline:  c.Pipeline,
		Logger:    c.Log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
