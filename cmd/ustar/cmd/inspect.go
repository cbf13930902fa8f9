package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattetti/filebuffer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pojntfx/ustar/internal/check"
	"github.com/pojntfx/ustar/internal/formatting"
	"github.com/pojntfx/ustar/internal/suffix"
	"github.com/pojntfx/ustar/pkg/compression"
	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/header"
)

const (
	blockFlag = "block"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"ins", "i"},
	Short:   "Decode and print a single 512-byte header block",
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
		drive, err := suffix.AddSuffix(viper.GetString(driveFlag), viper.GetString(compressionFlag))
		if err != nil {
			return err
		}

		raw, err := os.ReadFile(drive)
		if err != nil {
			return err
		}

		decompressor, err := compression.Decompress(filebuffer.New(raw), viper.GetString(compressionFlag))
		if err != nil {
			return err
		}
		defer decompressor.Close()

		stream, err := io.ReadAll(decompressor)
		if err != nil {
			return err
		}

		fb := filebuffer.New(stream)
		block := viper.GetInt(blockFlag)
		if _, err := fb.Seek(int64(block)*config.BlockSize, io.SeekStart); err != nil {
			return err
		}

		var b header.Block
		if _, err := io.ReadFull(fb, b[:]); err != nil {
			return err
		}

		hdr, err := header.Decode(&b)
		if err != nil {
			return err
		}

		if err := formatting.PrintCSV(formatting.HeaderCSV); err != nil {
			return err
		}

		return formatting.PrintCSV(formatting.GetHeaderAsCSV(0, block, hdr))
	},
}

func init() {
	inspectCmd.PersistentFlags().IntP(blockFlag, "b", 0, fmt.Sprintf("Block offset of the %v-byte header record to decode", config.BlockSize))
	inspectCmd.PersistentFlags().StringP(compressionFlag, "c", config.NoneKey, fmt.Sprintf("Compression format to use (default none, available are %v)", config.KnownCompressionFormats))

	viper.AutomaticEnv()

	rootCmd.AddCommand(inspectCmd)
}
