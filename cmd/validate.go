package cmd

import (
	"fmt"

	"github.com/opensumi/sumi-site/logging"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the site configuration and report every problem",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log := logging.WithComponent("validate")
		log.Info().
			Str("title", cfg.Metadata.Title).
			Str("siteUrl", cfg.Metadata.SiteURL).
			Msg("configuration is valid")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d navs, %d docs, locales %v\n",
			cfg.Metadata.Title, len(cfg.Navs), len(cfg.Docs), cfg.Locales)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
