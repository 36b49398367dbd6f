package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/config"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/llm"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/pipeline"
	"github.com/zunairkalyar/chamkili-ai-blog-writer-2/internal/types"
)

var (
	generateConfigPath string
	generateParams     []string
)

var generateCmd = &cobra.Command{
	Use:   "generate <action>",
	Short: "Run one content-generation action and print the result",
	Long: `Run a single content-generation action and print the structured result
as JSON. Parameters are passed as repeated --param key=value flags, e.g.:

  chamkili_agent generate generate_outline --param title="Vitamin C Basics" --param keywords="vitamin c serum"`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to JSON config file")
	generateCmd.Flags().StringArrayVar(&generateParams, "param", nil, "Request parameter as key=value (repeatable)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	intent, err := types.IntentForAction(args[0])
	if err != nil {
		return err
	}

	params := make(map[string]string, len(generateParams))
	for _, pair := range generateParams {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return fmt.Errorf("invalid --param %q, expected key=value", pair)
		}
		params[key] = value
	}

	cfg, err := config.Load(generateConfigPath)
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

	result, err := pipeline.New(client, pipeline.WithRetryLimit(cfg.RetryLimit)).
		Run(cmd.Context(), types.NewRequest(intent, params))
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
