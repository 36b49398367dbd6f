package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/config"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/llm"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/pipeline"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/server"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the content-generation actions as a REST API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.RequireGemini(); err != nil {
		return err
	}

	client, err := llm.NewClient(cmd.Context(), llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	srv, err := server.New(server.Config{
		Port:     servePort,
		Pipeline: pipeline.New(client, pipeline.WithRetryLimit(cfg.RetryLimit)),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
