package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pojntfx/ustar/internal/check"
	"github.com/pojntfx/ustar/internal/formatting"
	"github.com/pojntfx/ustar/internal/logging"
	"github.com/pojntfx/ustar/internal/suffix"
	"github.com/pojntfx/ustar/pkg/compression"
	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/operations"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"lis", "l", "t", "ls"},
	Short:   "List the contents of a tar file",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return err
		}

		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		return check.CheckCompressionFormat(viper.GetString(compressionFlag))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewJSONLogger(viper.GetBool(verboseFlag))

		drive, err := suffix.AddSuffix(viper.GetString(driveFlag), viper.GetString(compressionFlag))
		if err != nil {
			return err
		}

		f, err := os.Open(drive)
		if err != nil {
			return err
		}
		defer f.Close()

		decompressor, err := compression.Decompress(f, viper.GetString(compressionFlag))
		if err != nil {
			return err
		}
		defer decompressor.Close()

		entries, err := operations.List(
			config.DriveReaderConfig{Drive: decompressor},
			logger,
		)
		if err != nil {
			return err
		}

		if err := formatting.PrintCSV(formatting.HeaderCSV); err != nil {
			return err
		}

		for record, entry := range entries {
			if err := formatting.PrintCSV(formatting.GetHeaderAsCSV(record, entry.Block, entry.Header)); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	listCmd.PersistentFlags().StringP(compressionFlag, "c", config.NoneKey, fmt.Sprintf("Compression format to use (default none, available are %v)", config.KnownCompressionFormats))

	viper.AutomaticEnv()

	rootCmd.AddCommand(listCmd)
}
