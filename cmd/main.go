package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"extractor/internal/config"
	"extractor/internal/logger"
)

var (
	cfg     config.Config
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "extractor",
	Short: "AI tool metadata extraction service",
	Long: `Extractor fetches a tool's website metadata (falling back to web search when the site
cannot be read) and normalizes it into a directory record with an LLM.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(envFile); err != nil && envFile != ".env" {
			return err
		}
		cfg = config.Load()
		return nil
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	rootCmd.AddCommand(serveCmd, extractCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.New("main").LogError("command failed", err)
		os.Exit(1)
	}
}
