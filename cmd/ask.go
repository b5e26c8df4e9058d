package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/pagechat/internal/model"
)

var askModel string

var askCmd = &cobra.Command{
	Use:   "ask <url> <question>",
	Short: "Scrape a page and ask one question about it",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("ask"); err != nil {
			return err
		}

		result := initScraper(cfg, initFetcher(cfg)).Scrape(cmd.Context(), args[0])
		if !result.Success {
			return eris.New(result.Error)
		}
		zap.L().Debug("ask: page scraped",
			zap.String("url", result.URL),
			zap.Int("word_count", result.WordCount),
		)

		question := strings.Join(args[1:], " ")
		answer := initChat(cfg).Ask(cmd.Context(), question, askModel, model.NewPageSlot(result))
		_, err := fmt.Fprintln(cmd.OutOrStdout(), answer)
		return err
	},
}

func init() {
	askCmd.Flags().StringVar(&askModel, "model", "", "model id (default llm.default_model)")
	rootCmd.AddCommand(askCmd)
}
