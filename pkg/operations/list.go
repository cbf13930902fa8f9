package operations

import (
	"io"

	"github.com/pojntfx/ustar/pkg/archive"
	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/header"
	"github.com/pojntfx/ustar/pkg/logging"
)

// ListEntry is one archive member together with the block offset its header
// record sits at.
type ListEntry struct {
	Block  int
	Header *header.Header
}

// List reads the drive's USTAR stream without materializing anything and
// returns every member it finds.
func List(
	reader config.DriveReaderConfig,
	logger logging.StructuredLogger,
) ([]ListEntry, error) {
	ar := archive.NewReader(reader.Drive)

	entries := []ListEntry{}
	for {
		hdr, err := ar.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		// Sampling the offset before Next would point at the previous
		// entry's body, not at the header record.
		block := ar.HeaderOffset()

		logger.Trace("operations.list", "block", block, "path", hdr.Name())

		entries = append(entries, ListEntry{Block: block, Header: hdr})
	}

	return entries, nil
}
