package cmd

import (
	"github.com/opensumi/sumi-site/gatsby"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print gatsby-config.js, or the resolved configuration as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		minify, _ := cmd.Flags().GetBool("minify")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var out []byte
		if asJSON {
			out, err = gatsby.RenderJSON(cfg)
		} else {
			out, err = gatsby.Render(cfg, gatsby.RenderOptions{Minify: minify})
		}
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().Bool("json", false, "Print the resolved configuration as JSON, secrets masked")
	exportCmd.Flags().Bool("minify", false, "Minify gatsby-config.js")
}
