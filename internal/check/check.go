package check

import "github.com/pojntfx/ustar/pkg/config"

func CheckCompressionFormat(format string) error {
	for _, candidate := range config.KnownCompressionFormats {
		if format == candidate {
			return nil
		}
	}

	return config.ErrUnsupportedCompressionFormat
}

func CheckCompressionLevel(level string) error {
	for _, candidate := range config.KnownCompressionLevels {
		if level == candidate {
			return nil
		}
	}

	return config.ErrUnsupportedCompressionLevel
}
