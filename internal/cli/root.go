package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "rbacd",
	Short: "Role-based access control service and policy tooling",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	home, _ := os.UserHomeDir()
	defaultCfg := filepath.Join(home, ".rbacd", "config.yaml")

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultCfg, "config file path")

	rootCmd.AddCommand(cmdServe(), cmdPolicy(), cmdVersion())

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
