package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	driveFlag   = "drive"
	verboseFlag = "verbose"

	compressionFlag      = "compression"
	compressionLevelFlag = "compression-level"
)

var rootCmd = &cobra.Command{
	Use:   "ustar",
	Short: "POSIX tar archiver",
	Long: `USTAR (ustar) is a CLI to create, list and unpack POSIX.1-1988 tar archives.

Find more information at:
https://github.com/pojntfx/ustar`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		viper.SetEnvPrefix("ustar")
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP(driveFlag, "d", "archive.tar", "Tar file to use")
	rootCmd.PersistentFlags().BoolP(verboseFlag, "v", false, "Enable verbose logging")

	viper.AutomaticEnv()
}
