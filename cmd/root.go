package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	coreconfig "github.com/AzielCF/az-learn/core/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "az-learn",
	Short: "Local caching layer and API for the learning assistant",
	Long: `az-learn keeps notes, roadmaps, manifesto items, journals and chat analytics
close to the client. Reads go through a local key-value cache with lazy expiry,
writes go to the remote document store first.`,
	PersistentPreRunE: initApp,
	SilenceUsage:      true,
}

func init() {
	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	initFlags()
}

func initFlags() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("port", "p", "", "change port number with --port <number> | example: --port=8080")
	flags.BoolP("debug", "d", false, "hide or displaying log with --debug <true/false> | example: --debug=true")
	flags.String("base-path", "", `base path for subpath deployment --base-path <string> | example: --base-path="/learn"`)
	flags.String("kv-driver", "", "local cache backend: memory, badger or valkey | example: --kv-driver=memory")
	flags.String("db-driver", "", "remote document store driver: sqlite, postgres or memory | example: --db-driver=postgres")
	flags.String("timezone", "", `timezone for analytics hour buckets | example: --timezone="America/Lima"`)
	flags.StringSliceP("basic-auth", "b", nil, "basic auth credential | -b=yourUsername:yourPassword")

	for key, name := range flagKeys {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}
}

var flagKeys = map[string]string{
	"app_port":       "port",
	"app_debug":      "debug",
	"app_base_path":  "base-path",
	"kv_driver":      "kv-driver",
	"db_driver":      "db-driver",
	"app_timezone":   "timezone",
	"app_basic_auth": "basic-auth",
}

// initApp loads the environment configuration and lets explicit flags win.
func initApp(cmd *cobra.Command, _ []string) error {
	cfg, err := coreconfig.LoadConfig()
	if err != nil {
		return err
	}

	if viper.IsSet("app_port") {
		cfg.App.Port = viper.GetString("app_port")
	}
	if viper.IsSet("app_debug") {
		cfg.App.Debug = viper.GetBool("app_debug")
	}
	if viper.IsSet("app_base_path") {
		cfg.App.BasePath = viper.GetString("app_base_path")
	}
	if viper.IsSet("kv_driver") {
		cfg.Storage.KVDriver = viper.GetString("kv_driver")
	}
	if viper.IsSet("db_driver") {
		cfg.Database.Driver = viper.GetString("db_driver")
	}
	if viper.IsSet("app_timezone") {
		cfg.App.Timezone = viper.GetString("app_timezone")
	}
	if viper.IsSet("app_basic_auth") {
		cfg.App.BasicAuth = viper.GetStringSlice("app_basic_auth")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.WithFields(coreconfig.GetAllSettings()).Debug("[CONFIG] Loaded settings")
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
