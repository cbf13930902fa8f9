package operations

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/spf13/afero"

	"github.com/pojntfx/ustar/pkg/archive"
	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/logging"
)

// Restore materializes every entry of the drive's USTAR stream below to on
// fsys. Entries the target filesystem can not represent (devices, FIFOs,
// hard links) are logged and skipped.
func Restore(
	reader config.DriveReaderConfig,
	fsys afero.Fs,
	to string,
	logger logging.StructuredLogger,
) error {
	ar := archive.NewReader(reader.Drive)

	for {
		hdr, err := ar.Next()
		if err == io.EOF {
			return nil
		}

		if err != nil {
			return err
		}

		target := path.Join(to, hdr.Name())

		logger.Debug("operations.restore", "path", target, "typeflag", string(rune(hdr.TypeFlag)), "size", hdr.Size)

		materialized := false
		switch {
		case hdr.IsDir():
			if err := fsys.MkdirAll(target, hdr.FileMode().Perm()); err != nil {
				return err
			}

			materialized = true
		case hdr.IsRegular() || hdr.IsContiguous():
			if err := fsys.MkdirAll(path.Dir(target), 0o755); err != nil {
				return err
			}

			file, err := fsys.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, hdr.FileMode().Perm())
			if err != nil {
				return err
			}

			if _, err := io.Copy(file, ar); err != nil {
				_ = file.Close()

				return err
			}

			if err := file.Close(); err != nil {
				return err
			}

			materialized = true
		case hdr.IsSymlink():
			if linker, ok := fsys.(afero.Linker); ok {
				if err := linker.SymlinkIfPossible(hdr.LinkDest, target); err != nil {
					return err
				}
			} else {
				logger.Warn("operations.restore.symlink", "path", target, "linkdest", hdr.LinkDest)
			}
		case hdr.IsHardLink():
			logger.Warn("operations.restore.hardlink", "path", target, "linkdest", hdr.LinkDest)
		default:
			logger.Warn("operations.restore.special", "path", target, "typeflag", string(rune(hdr.TypeFlag)))
		}

		if materialized {
			modTime := time.Unix(int64(hdr.ModTime), 0)
			if err := fsys.Chtimes(target, modTime, modTime); err != nil {
				logger.Trace("operations.restore.chtimes", "path", target, "error", err.Error())
			}
		}
	}
}
