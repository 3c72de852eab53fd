package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dyload",
	Short: "Host for the external dyloading shared library",
	Long: `Loads the external dyloading shared library at runtime and invokes its
exported dyloading_add symbol by name, the way the original host process does.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// defaultLibFile follows the original host's per-platform library name.
func defaultLibFile() string {
	if runtime.GOOS == "windows" {
		return "external_dy.dll"
	}
	return "libexternal_dy.so"
}

func init() {
	rootCmd.PersistentFlags().StringP("lib", "l", defaultLibFile(), "Path to the dyloading shared library")
}
