// Package main provides the entry point for the Chamkili AI blog writer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chamkili_agent",
	Short: "Chamkili AI blog writer",
	Long:  "Chamkili AI blog writer generates schema-validated skincare content with Gemini and publishes it to a Shopify store.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
