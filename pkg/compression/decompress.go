package compression

import (
	"compress/gzip"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"

	"github.com/pojntfx/ustar/pkg/config"
)

func Decompress(
	src io.Reader,
	compressionFormat string,
) (io.ReadCloser, error) {
	switch compressionFormat {
	case config.CompressionFormatGZipKey:
		return gzip.NewReader(src)
	case config.CompressionFormatParallelGZipKey:
		return pgzip.NewReader(src)
	case config.CompressionFormatZStandardKey:
		zz, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}

		return io.NopCloser(zz), nil
	case config.NoneKey:
		return io.NopCloser(src), nil
	default:
		return nil, config.ErrUnsupportedCompressionFormat
	}
}
