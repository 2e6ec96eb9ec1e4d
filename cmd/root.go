package cmd

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/lcg"
	"github.com/tutils/lcg/logger"
)

var (
	cfgFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lcg",
	Short: "Linear congruential generator tools.",
	Long: `Linear congruential generator tools.
Repo: https://github.com/tutils/lcg
Generate, benchmark and plot x' = (a*x + c) mod m, For example:
  lcg gen --count=5 --seed=42
  lcg bench --batch=1000 --duration=2s
  lcg plot --kind=lattice -a 65539 -c 0 -m 2147483648 --seed=1`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.SetFormat(viper.GetString("log-format")); err != nil {
			return err
		}
		return logger.SetLevel(viper.GetString("log-level"))
	},
}

const (
	prefix = "@"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) == 2 && strings.HasPrefix(os.Args[1], prefix) {
		if err := decodeCmdline(os.Args[1][1:]); err != nil {
			logger.Error(err, "decode cmdline")
			os.Exit(1)
		}
	} else if len(os.Args) >= 2 {
		if s, err := encodeCmdline(); err == nil {
			logger.Debug("encoded cmdline", "cmdline", prefix+s)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		logger.Error(err, "command failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lcg.yaml)")
	flags.String("log-level", "info", "log level [trace,debug,info,warn,error,silent]")
	flags.String("log-format", "console", "log format [console,json]")
	flags.Int64P("multiplier", "a", lcg.DefaultMultiplier, "multiplier a")
	flags.Int64P("increment", "c", lcg.DefaultIncrement, "increment c")
	flags.Int64P("modulus", "m", lcg.DefaultModulus, "modulus m (must be positive)")
	flags.Int64P("seed", "s", 0, "initial state")

	for _, name := range []string{"log-level", "log-format", "multiplier", "increment", "modulus", "seed"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".lcg")
		viper.SetConfigType("yaml")
	}

	// LCG_MODULUS, LCG_LOG_LEVEL, ...
	viper.SetEnvPrefix("lcg")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "file", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Warn("cannot read config file", "file", cfgFile, "error", err)
	}
}

// newGenerator builds the generator described by flags, env and config.
func newGenerator() (*lcg.Generator, error) {
	return lcg.NewWithOptions(
		lcg.WithMultiplier(viper.GetInt64("multiplier")),
		lcg.WithIncrement(viper.GetInt64("increment")),
		lcg.WithModulus(viper.GetInt64("modulus")),
		lcg.WithSeed(viper.GetInt64("seed")),
	)
}
