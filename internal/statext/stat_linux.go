//go:build linux

package statext

import (
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/pojntfx/ustar/pkg/header"
)

func EnhanceHeader(path string, hdr *header.Header) error {
	var unixStat syscall.Stat_t
	if err := syscall.Lstat(path, &unixStat); err != nil {
		return err
	}

	hdr.UID = unixStat.Uid
	hdr.GID = unixStat.Gid

	if hdr.IsCharDevice() || hdr.IsBlockDevice() {
		hdr.DevMajor = unix.Major(unixStat.Rdev)
		hdr.DevMinor = unix.Minor(unixStat.Rdev)
	}

	return nil
}
