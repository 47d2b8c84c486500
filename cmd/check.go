package cmd

import (
	"fmt"

	"github.com/opensumi/sumi-site/content"
	"github.com/opensumi/sumi-site/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every configured page has a markdown source per locale",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("content")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		findings, err := content.Check(cfg, dir)
		if err != nil {
			return err
		}

		for _, f := range findings {
			fmt.Fprintln(cmd.OutOrStdout(), f.String())
		}
		if len(findings) > 0 {
			return errors.Errorf("%d content problem(s) in %s", len(findings), dir)
		}

		log := logging.WithComponent("check")
		log.Info().Str("dir", dir).Int("docs", len(cfg.Docs)).Msg("content complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("content", "docs", "Documentation content directory")
}
