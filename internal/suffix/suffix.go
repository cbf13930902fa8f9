package suffix

import (
	"strings"

	"github.com/pojntfx/ustar/pkg/config"
)

const (
	CompressionFormatGZipSuffix      = ".gz"
	CompressionFormatZStandardSuffix = ".zst"
)

func AddSuffix(name string, compressionFormat string) (string, error) {
	switch compressionFormat {
	case config.CompressionFormatGZipKey:
		fallthrough
	case config.CompressionFormatParallelGZipKey:
		name += CompressionFormatGZipSuffix
	case config.CompressionFormatZStandardKey:
		name += CompressionFormatZStandardSuffix
	case config.NoneKey:
	default:
		return "", config.ErrUnsupportedCompressionFormat
	}

	return name, nil
}

func RemoveSuffix(name string, compressionFormat string) (string, error) {
	switch compressionFormat {
	case config.CompressionFormatGZipKey:
		fallthrough
	case config.CompressionFormatParallelGZipKey:
		name = strings.TrimSuffix(name, CompressionFormatGZipSuffix)
	case config.CompressionFormatZStandardKey:
		name = strings.TrimSuffix(name, CompressionFormatZStandardSuffix)
	case config.NoneKey:
	default:
		return "", config.ErrUnsupportedCompressionFormat
	}

	return name, nil
}
