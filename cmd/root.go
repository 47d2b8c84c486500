package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/opensumi/sumi-site/config"
	"github.com/opensumi/sumi-site/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sumi-site",
	Short: "sumi-site - configuration for the OpenSumi documentation site",
	Long: `sumi-site loads and validates the OpenSumi documentation site configuration
and emits it in the form @opensumi/gatsby-theme consumes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Configure(logging.Config{Level: viper.GetString("log-level")})
		return config.LoadDotenv(viper.GetString("env-file"))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	viper.SetEnvPrefix("SUMI_SITE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Site configuration file (built-in OpenSumi configuration when empty)")
	flags.String("env-file", ".env", "Env file loaded before the configuration")
	flags.String("log-level", "info", "Log level")

	for _, name := range []string{"config", "env-file", "log-level"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// loadConfig runs after the env file has been loaded, so the process
// environment is complete.
func loadConfig() (*config.SiteConfig, error) {
	path := viper.GetString("config")
	log := logging.WithComponent("config")
	if path == "" {
		log.Debug().Msg("using built-in configuration")
	} else {
		log.Debug().Str("path", path).Msg("loading configuration")
	}

	cfg, err := config.NewLoader(path, config.OSEnv).Load()
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("navs", len(cfg.Navs)).
		Int("docs", len(cfg.Docs)).
		Strs("locales", cfg.Locales).
		Bool("docsearch", cfg.DocSearch.Configured()).
		Msg("configuration loaded")
	return cfg, nil
}
