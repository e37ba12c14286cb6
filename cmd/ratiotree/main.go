package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "RATIOTREE"

type rootCmdConfig struct {
	verbose       bool
	configFile    string
	metadataInput string
	v             *viper.Viper
	logger        *logrus.Logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{v: viper.New(), logger: newLogger(false, os.Stderr)}
	rootCmd := &cobra.Command{
		Use:   "ratiotree",
		Short: "ratiotree is a tool to grow decision trees by gain ratio",
		Long: `A tool to grow decision trees from tables of discrete data choosing
every split by gain ratio, print them, test them and report the figures
behind every choice`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.applySettings(cmd.Flags()); err != nil {
				return fail(1, err)
			}
			config.logger = newLogger(config.verbose, cmd.ErrOrStderr())
			return nil
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&(config.verbose), "verbose", "v", false, "log what is done and every decision taken while growing trees")
	pf.StringVar(&(config.configFile), "config", "", "path to a YAML, TOML or JSON file with values for any flag")
	pf.StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata naming the columns of the input")
	rootCmd.AddCommand(versionCmd(), growCmd(config), statsCmd(config), testCmd(config), predictCmd(config), setCmd(config))
	return rootCmd
}

/*
applySettings fills every flag not given on the command line with the value
found for it in the environment (RATIOTREE_ followed by the flag name in
upper case with dashes replaced by underscores) or in the config file.
*/
func (rcc *rootCmdConfig) applySettings(flags *pflag.FlagSet) error {
	v := rcc.v
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		value := v.GetString(f.Name)
		if f.Value.Type() == "stringSlice" {
			value = strings.Join(v.GetStringSlice(f.Name), ",")
		}
		if serr := flags.Set(f.Name, value); serr != nil {
			err = fmt.Errorf("setting flag %s from configuration: %w", f.Name, serr)
		}
	})
	return err
}

type exitError struct {
	code int
	err  error
}

func fail(code int, err error) error {
	return &exitError{code, err}
}

func (ee *exitError) Error() string {
	return ee.err.Error()
}

func (ee *exitError) Unwrap() error {
	return ee.err
}
