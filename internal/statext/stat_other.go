//go:build !linux && !darwin

package statext

import "github.com/pojntfx/ustar/pkg/header"

func EnhanceHeader(path string, hdr *header.Header) error {
	return nil
}
