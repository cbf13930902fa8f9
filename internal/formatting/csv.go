package formatting

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/pojntfx/ustar/pkg/header"
)

var (
	HeaderCSV = []string{
		"record", "block", "typeflag", "name", "linkdest", "size", "mode", "uid", "gid", "user", "group", "modtime", "devmajor", "devminor",
	}
)

func PrintCSV(input []string) error {
	w := csv.NewWriter(os.Stdout)

	return w.WriteAll([][]string{input})
}

func GetHeaderAsCSV(record, block int, hdr *header.Header) []string {
	return []string{
		fmt.Sprintf("%v", record), fmt.Sprintf("%v", block), string(rune(hdr.TypeFlag)), hdr.Name(), hdr.LinkDest, fmt.Sprintf("%v", hdr.Size), fmt.Sprintf("%#o", hdr.Mode), fmt.Sprintf("%v", hdr.UID), fmt.Sprintf("%v", hdr.GID), hdr.User, hdr.Group, time.Unix(int64(hdr.ModTime), 0).UTC().Format(time.RFC3339), fmt.Sprintf("%v", hdr.DevMajor), fmt.Sprintf("%v", hdr.DevMinor),
	}
}
