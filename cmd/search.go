package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	searchNum    int
	searchFormat string
)

var searchCmd = &cobra.Command{
	Use:   "search <topic>",
	Short: "Search a topic and scrape the top results",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if searchNum > 0 {
			cfg.Search.NumResults = searchNum
		}
		if err := cfg.Validate("scrape"); err != nil {
			return err
		}

		f := initFetcher(cfg)
		adapter, err := initSearch(cfg, f, initScraper(cfg, f))
		if err != nil {
			return err
		}

		result := adapter.Search(cmd.Context(), strings.Join(args, " "), cfg.Search.NumResults)
		if err := writeOutput(cmd.OutOrStdout(), searchFormat, result); err != nil {
			return err
		}
		if !result.Success {
			return eris.New(result.Error)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchNum, "num", "n", 0, "number of results to scrape (default from config)")
	searchCmd.Flags().StringVar(&searchFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(searchCmd)
}
