package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	scrapeMaxLength int
	scrapeFormat    string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Scrape a single page and print the extraction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if scrapeMaxLength > 0 {
			cfg.Extract.MaxContentLength = scrapeMaxLength
		}
		if err := cfg.Validate("scrape"); err != nil {
			return err
		}

		result := initScraper(cfg, initFetcher(cfg)).Scrape(cmd.Context(), args[0])
		if err := writeOutput(cmd.OutOrStdout(), scrapeFormat, result); err != nil {
			return err
		}
		if !result.Success {
			return eris.New(result.Error)
		}
		return nil
	},
}

func init() {
	scrapeCmd.Flags().IntVar(&scrapeMaxLength, "max-length", 0, "content length limit in characters (default from config)")
	scrapeCmd.Flags().StringVar(&scrapeFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(scrapeCmd)
}
