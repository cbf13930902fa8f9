//go:build darwin

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
		hdr.DevMajor = unix.Major(uint64(unixStat.Rdev))
		hdr.DevMinor = unix.Minor(uint64(unixStat.Rdev))
	}

	return nil
}
