// Package ssprog is the sscat command program.
package ssprog

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "sscat",
	Short: "Solar system catalog assembler",
	Long: `Sscat assembles a solar system body database from JPL Horizons
ephemeris extracts, the JPL small-body database, and the JPL satellite
physical parameter list, and solves body states from it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .sscat.yaml)")
	pf.StringP("database", "d", "database", "database directory")
	pf.BoolP("verbose", "v", false, "verbose output")
	viper.BindPFlag("database", pf.Lookup("database"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".sscat")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("SSCAT")
	viper.AutomaticEnv()

	// A missing config file just means defaults.
	_ = viper.ReadInConfig()
}

// newLogger builds the program logger.  Verbose mode lowers the level
// to debug; either way output is structured JSON on stderr.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if viper.GetBool("verbose") {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
