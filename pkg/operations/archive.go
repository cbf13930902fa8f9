package operations

import (
	"io"
	"io/fs"
	"os"

	"github.com/spf13/afero"

	"github.com/pojntfx/ustar/internal/converters"
	"github.com/pojntfx/ustar/internal/statext"
	"github.com/pojntfx/ustar/pkg/archive"
	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/header"
	"github.com/pojntfx/ustar/pkg/logging"
)

// Archive walks from on fsys and writes every entry below it to the drive
// as one USTAR stream. It returns the headers it wrote.
func Archive(
	writer config.DriveWriterConfig,
	fsys afero.Fs,
	from string,
	logger logging.StructuredLogger,
) ([]*header.Header, error) {
	aw := archive.NewWriter(writer.Drive)

	headers := []*header.Header{}
	if err := afero.Walk(fsys, from, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		link := ""
		if info.Mode()&os.ModeSymlink == os.ModeSymlink {
			if lr, ok := fsys.(afero.LinkReader); ok {
				if link, err = lr.ReadlinkIfPossible(path); err != nil {
					return err
				}
			}
		}

		hdr, err := converters.FileInfoToHeader(path, info, link)
		if err != nil {
			return err
		}

		if err := statext.EnhanceHeader(path, hdr); err != nil {
			// Not every backing filesystem is stat-able; keep the
			// walk-provided metadata then.
			logger.Trace("operations.archive.stat", "path", path, "error", err.Error())
		}

		logger.Debug("operations.archive", "path", path, "typeflag", string(rune(hdr.TypeFlag)), "size", hdr.Size)

		if err := aw.WriteHeader(hdr); err != nil {
			return err
		}

		if hdr.IsRegular() {
			file, err := fsys.Open(path)
			if err != nil {
				return err
			}

			if _, err := io.Copy(aw, file); err != nil {
				_ = file.Close()

				return err
			}

			if err := file.Close(); err != nil {
				return err
			}
		}

		headers = append(headers, hdr)

		return nil
	}); err != nil {
		return headers, err
	}

	return headers, aw.Close()
}
