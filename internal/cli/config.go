package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the settings the commands read, for generating and
// printing config files. Keys line up with the score.* and bench.* flag
// bindings.
type fileConfig struct {
	Score scoreConfig `yaml:"score"`
	Bench benchConfig `yaml:"bench"`
}

type scoreConfig struct {
	Metric    string `yaml:"metric"`
	Weights   string `yaml:"weights,omitempty"`
	Tokenizer string `yaml:"tokenizer"`
	Lowercase bool   `yaml:"lowercase"`
	NFC       bool   `yaml:"nfc"`
	Workers   int    `yaml:"workers"`
}

type benchConfig struct {
	Metric     string `yaml:"metric"`
	Iterations int    `yaml:"iterations"`
	Tokenizer  string `yaml:"tokenizer"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		Score: scoreConfig{
			Metric:    "all",
			Tokenizer: "word",
			Workers:   1,
		},
		Bench: benchConfig{
			Metric:     "all",
			Iterations: 10,
			Tokenizer:  "word",
		},
	}
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the bleunet config file",
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the default configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(defaultFileConfig())
		if err != nil {
			return errors.Wrap(err, "failed to marshal config")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		if path == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return errors.Wrap(err, "failed to find home directory")
			}
			path = filepath.Join(home, ".bleunet.yaml")
		}

		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !force {
			return errors.Errorf("config file %s already exists, use --force to overwrite", path)
		}

		out, err := yaml.Marshal(defaultFileConfig())
		if err != nil {
			return errors.Wrap(err, "failed to marshal config")
		}
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write config file %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().String("output", "", "path to write (default: $HOME/.bleunet.yaml)")
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
