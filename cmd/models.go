package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/pagechat/internal/chat"
)

var modelsFormat string

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the chat models available with the current keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeOutput(cmd.OutOrStdout(), modelsFormat,
			chat.Catalogue(cfg.Anthropic.Models, cfg.Groq.Key != "", cfg.Anthropic.Key != ""))
	},
}

func init() {
	modelsCmd.Flags().StringVar(&modelsFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(modelsCmd)
}
