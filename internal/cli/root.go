// Package cli implements the bleunet command line interface.
package cli

import (
	goflag "flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var cfgFile string

// Version is stamped at build time via -ldflags "-X .../internal/cli.Version=v1.2.3".
var Version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bleunet",
	Short: "BLEU and RIBES scoring for machine translation output",
	Long: `bleunet scores machine translation output against reference
translations with corpus-level BLEU and RIBES.

Corpora are plain text files, one sentence per line, optionally
gzip-compressed. A hypothesis file is scored against one or more reference
files holding the same number of sentences.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	defer klog.Flush()
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bleunet %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.bleunet.yaml)")

	// Logging goes through klog; its flags (--v and friends) become
	// persistent flags here.
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in the config file and BLEUNET_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bleunet")
	}

	viper.SetEnvPrefix("BLEUNET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		klog.V(1).Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}
