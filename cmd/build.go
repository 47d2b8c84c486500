package cmd

import (
	"os"
	"path/filepath"
	"time"

	"github.com/opensumi/sumi-site/gatsby"
	"github.com/opensumi/sumi-site/logging"
	"github.com/opensumi/sumi-site/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Write gatsby-config.js, config.json and sitemap.xml for the theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.WithComponent("build")
		outDir, _ := cmd.Flags().GetString("out")
		minify, _ := cmd.Flags().GetBool("minify")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Join(outDir, "public"), os.ModePerm); err != nil {
			return errors.Wrap(err, "creating output directory")
		}

		js, err := gatsby.Render(cfg, gatsby.RenderOptions{Minify: minify})
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(outDir, "gatsby-config.js"), js); err != nil {
			return err
		}

		resolved, err := gatsby.RenderJSON(cfg)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(outDir, "config.json"), resolved); err != nil {
			return err
		}

		sitemap := filepath.Join(outDir, "public", "sitemap.xml")
		if err := utils.GenerateSitemap(cfg, sitemap, time.Now()); err != nil {
			return errors.Wrap(err, "generating sitemap")
		}
		log.Info().Str("path", sitemap).Msg("generated")

		log.Info().Str("dir", outDir).Msg("site configuration built")
		return nil
	},
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.WithStack(err)
	}
	log := logging.WithComponent("build")
	log.Info().Str("path", path).Msg("generated")
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", ".", "Output directory")
	buildCmd.Flags().Bool("minify", false, "Minify gatsby-config.js")
}
