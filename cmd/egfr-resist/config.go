package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/oncotools/egfr-resist/internal/predict"
)

// initConfig loads ~/.egfr-resist.yaml if present. Recognized keys:
//
//	thresholds.moderate  copy-number cutoff for moderate resistance
//	thresholds.high      copy-number cutoff for high resistance
//	dataset.path         default reference dataset TSV
//	dataset.db           default DuckDB reference store
func initConfig() {
	viper.SetConfigName(".egfr-resist")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")
	viper.ReadInConfig() // missing config file is fine
}

// configuredThresholds returns the copy-number thresholds from config,
// falling back to the defaults.
func configuredThresholds() predict.Thresholds {
	t := predict.DefaultThresholds
	if viper.IsSet("thresholds.moderate") {
		t.Moderate = viper.GetInt("thresholds.moderate")
	}
	if viper.IsSet("thresholds.high") {
		t.High = viper.GetInt("thresholds.high")
	}
	return t
}

func configuredString(key string) string {
	return viper.GetString(key)
}

// runConfig executes the config subcommand tree.
func runConfig(args []string) int {
	cmd := newConfigCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage egfr-resist configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.egfr-resist.yaml.",
		Example: `  egfr-resist config                         # show all config
  egfr-resist config set thresholds.high 6   # high resistance at 6+ copies
  egfr-resist config get dataset.path        # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(args[0])
		},
	}
}

func runConfigShow() error {
	settings := viper.AllSettings()
	if len(settings) == 0 {
		fmt.Println("# No configuration set. Config file: ~/.egfr-resist.yaml")
		return nil
	}

	out, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// configKeys maps each recognized key to its value kind. Threshold keys
// hold positive copy counts; dataset keys hold file paths.
var configKeys = map[string]string{
	"thresholds.moderate": "count",
	"thresholds.high":     "count",
	"dataset.path":        "path",
	"dataset.db":          "path",
}

func knownConfigKeys() string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

// parseConfigValue validates a key/value pair and returns the typed value
// to store.
func parseConfigValue(key, value string) (any, error) {
	kind, ok := configKeys[key]
	if !ok {
		return nil, fmt.Errorf("unknown config key %q (known keys: %s)", key, knownConfigKeys())
	}
	switch kind {
	case "count":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%s must be a positive copy count, got %q", key, value)
		}
		return n, nil
	default:
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%s must not be empty", key)
		}
		return value, nil
	}
}

func runConfigSet(key, value string) error {
	typed, err := parseConfigValue(key, value)
	if err != nil {
		return err
	}
	viper.Set(key, typed)

	// Ensure config file exists
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".egfr-resist.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Set %s = %v in %s\n", key, typed, cfgFile)
	return nil
}

func runConfigGet(key string) error {
	if _, ok := configKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, knownConfigKeys())
	}
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Println(val)
	return nil
}
