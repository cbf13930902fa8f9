package compression

import (
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"

	"github.com/pojntfx/ustar/internal/ioext"
	"github.com/pojntfx/ustar/pkg/config"
)

func Compress(
	dst io.Writer,
	compressionFormat string,
	compressionLevel string,
) (io.WriteCloser, error) {
	switch compressionFormat {
	case config.CompressionFormatGZipKey:
		l := gzip.DefaultCompression
		switch compressionLevel {
		case config.CompressionLevelFastestKey:
			l = gzip.BestSpeed
		case config.CompressionLevelBalancedKey:
			l = gzip.DefaultCompression
		case config.CompressionLevelSmallestKey:
			l = gzip.BestCompression
		default:
			return nil, config.ErrUnsupportedCompressionLevel
		}

		return gzip.NewWriterLevel(dst, l)
	case config.CompressionFormatParallelGZipKey:
		l := pgzip.DefaultCompression
		switch compressionLevel {
		case config.CompressionLevelFastestKey:
			l = pgzip.BestSpeed
		case config.CompressionLevelBalancedKey:
			l = pgzip.DefaultCompression
		case config.CompressionLevelSmallestKey:
			l = pgzip.BestCompression
		default:
			return nil, config.ErrUnsupportedCompressionLevel
		}

		return pgzip.NewWriterLevel(dst, l)
	case config.CompressionFormatZStandardKey:
		l := zstd.SpeedDefault
		switch compressionLevel {
		case config.CompressionLevelFastestKey:
			l = zstd.SpeedFastest
		case config.CompressionLevelBalancedKey:
			l = zstd.SpeedDefault
		case config.CompressionLevelSmallestKey:
			l = zstd.SpeedBestCompression
		default:
			return nil, config.ErrUnsupportedCompressionLevel
		}

		return zstd.NewWriter(dst, zstd.WithEncoderLevel(l))
	case config.NoneKey:
		return ioext.AddCloseNopToWriter(dst), nil
	default:
		return nil, config.ErrUnsupportedCompressionFormat
	}
}
