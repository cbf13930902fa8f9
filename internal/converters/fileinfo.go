package converters

import (
	"io/fs"
	"os"

	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/header"
	"github.com/pojntfx/ustar/pkg/pathsplit"
)

// FileInfoToHeader builds the header for one filesystem entry. link is the
// symlink target and is only read for symlinks. Size is only carried over
// for regular files.
func FileInfoToHeader(path string, info fs.FileInfo, link string) (*header.Header, error) {
	hdr := &header.Header{
		Mode:    uint32(info.Mode().Perm()),
		ModTime: uint64(info.ModTime().Unix()),
	}

	switch {
	case info.Mode().IsRegular():
		hdr.TypeFlag = header.TypeRegular
		hdr.Size = uint64(info.Size())
	case info.Mode()&os.ModeSymlink != 0:
		hdr.TypeFlag = header.TypeSymlink
		hdr.LinkDest = link
	case info.Mode()&os.ModeCharDevice != 0:
		hdr.TypeFlag = header.TypeCharDevice
	case info.Mode()&os.ModeDevice != 0:
		hdr.TypeFlag = header.TypeBlockDevice
	case info.IsDir():
		hdr.TypeFlag = header.TypeDir
	case info.Mode()&os.ModeNamedPipe != 0:
		hdr.TypeFlag = header.TypeFIFO
	default:
		return nil, config.ErrUnsupportedTypeFlag
	}

	hdr.Prefix, hdr.Suffix = pathsplit.Split(path, info.IsDir())

	return hdr, nil
}
