package archive

import (
	"io"

	"github.com/pojntfx/ustar/internal/ioext"
	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/header"
)

// Reader walks a USTAR stream entry by entry. Next decodes the following
// header block (validating its checksum) and Read streams the current
// entry's body.
type Reader struct {
	counter *ioext.CounterReader

	headerOffset int
	remaining    uint64
	padding      uint64
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		counter: &ioext.CounterReader{Reader: r},
	}
}

// Offset returns the position in the stream in blocks.
func (r *Reader) Offset() int {
	return r.counter.BytesRead / config.BlockSize
}

// HeaderOffset returns the block offset of the header record the last call
// to Next decoded. It is only meaningful after a successful Next.
func (r *Reader) HeaderOffset() int {
	return r.headerOffset
}

// Next skips whatever is left of the current body and returns the next
// header. It returns io.EOF after the two-block end-of-archive marker.
func (r *Reader) Next() (*header.Header, error) {
	if _, err := io.CopyN(io.Discard, r.counter, int64(r.remaining+r.padding)); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return nil, err
	}

	r.remaining = 0
	r.padding = 0

	r.headerOffset = r.Offset()

	var block header.Block
	if _, err := io.ReadFull(r.counter, block[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}

		return nil, err
	}

	if block.IsZero() {
		r.headerOffset = r.Offset()

		if _, err := io.ReadFull(r.counter, block[:]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}

			return nil, err
		}

		// Two consecutive zero blocks mark the end of the archive; a lone
		// zero block is followed by further entries.
		if block.IsZero() {
			return nil, io.EOF
		}
	}

	hdr, err := header.Decode(&block)
	if err != nil {
		return nil, err
	}

	if hdr.IsRegular() || hdr.IsContiguous() {
		r.remaining = hdr.Size
		r.padding = uint64(blockPadding(int(hdr.Size)))
	}

	return hdr, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, io.EOF
	}

	if uint64(len(p)) > r.remaining {
		p = p[:r.remaining]
	}

	n, err := r.counter.Read(p)

	r.remaining -= uint64(n)

	if err == io.EOF && r.remaining > 0 {
		err = io.ErrUnexpectedEOF
	}

	return n, err
}
