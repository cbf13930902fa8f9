package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
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

const (
	fromFlag = "from"
)

var archiveCmd = &cobra.Command{
	Use:     "archive",
	Aliases: []string{"arc", "a", "c"},
	Short:   "Archive a file or directory to a tar file",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return err
		}

		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		if err := check.CheckCompressionFormat(viper.GetString(compressionFlag)); err != nil {
			return err
		}

		return check.CheckCompressionLevel(viper.GetString(compressionLevelFlag))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.NewJSONLogger(viper.GetBool(verboseFlag))

		drive, err := suffix.AddSuffix(viper.GetString(driveFlag), viper.GetString(compressionFlag))
		if err != nil {
			return err
		}

		f, err := os.OpenFile(drive, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
		if err != nil {
			return err
		}
		defer f.Close()

		compressor, err := compression.Compress(f, viper.GetString(compressionFlag), viper.GetString(compressionLevelFlag))
		if err != nil {
			return err
		}

		headers, err := operations.Archive(
			config.DriveWriterConfig{Drive: compressor},
			afero.NewOsFs(),
			viper.GetString(fromFlag),
			logger,
		)
		if err != nil {
			return err
		}

		if err := compressor.Close(); err != nil {
			return err
		}

		if err := formatting.PrintCSV(formatting.HeaderCSV); err != nil {
			return err
		}

		block := 0
		for record, hdr := range headers {
			if err := formatting.PrintCSV(formatting.GetHeaderAsCSV(record, block, hdr)); err != nil {
				return err
			}

			body := 0
			if hdr.IsRegular() {
				body = (int(hdr.Size) + config.BlockSize - 1) / config.BlockSize
			}

			block += 1 + body
		}

		return nil
	},
}

func init() {
	archiveCmd.PersistentFlags().StringP(fromFlag, "f", ".", "File or directory to archive")
	archiveCmd.PersistentFlags().StringP(compressionFlag, "c", config.NoneKey, fmt.Sprintf("Compression format to use (default none, available are %v)", config.KnownCompressionFormats))
	archiveCmd.PersistentFlags().StringP(compressionLevelFlag, "l", config.CompressionLevelBalancedKey, fmt.Sprintf("Compression level to use (available are %v)", config.KnownCompressionLevels))

	viper.AutomaticEnv()

	rootCmd.AddCommand(archiveCmd)
}
