package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pojntfx/ustar/pkg/archive"
	"github.com/pojntfx/ustar/pkg/config"
)

func main() {
	file := flag.String("file", "archive.tar", "Tar file to open")
	blockSizeMultiplier := flag.Int("blockSizeMultiplier", 20, "Amount of blocks to read from the tar stream at once")

	flag.Parse()

	f, err := os.Open(*file)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, config.BlockSize**blockSizeMultiplier)
	r := archive.NewReader(br)

	for {
		hdr, err := r.Next()
		if err == io.EOF {
			break
		}

		if err != nil {
			panic(err)
		}

		fmt.Printf(
			"%v %v %v %v %v %v\n",
			string(rune(hdr.TypeFlag)),

			hdr.Mode,
			hdr.UID,
			hdr.GID,

			hdr.Size,

			hdr.Name(),
		)
	}
}
