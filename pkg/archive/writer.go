package archive

import (
	"io"

	"github.com/pojntfx/ustar/internal/ioext"
	"github.com/pojntfx/ustar/pkg/config"
	"github.com/pojntfx/ustar/pkg/header"
)

var zeroBlock [config.BlockSize]byte

// blockPadding computes the number of bytes needed to pad offset up to the
// nearest block edge where 0 <= n < config.BlockSize.
func blockPadding(offset int) int {
	return -offset & (config.BlockSize - 1)
}

// Writer sequences headers and file bodies into a USTAR stream. Bodies are
// zero-padded to block edges and Close appends the two-block end-of-archive
// marker.
type Writer struct {
	counter *ioext.CounterWriter

	remaining uint64
	closed    bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		counter: &ioext.CounterWriter{Writer: w},
	}
}

// WriteHeader finishes the previous entry and writes the header block for
// the next one. For regular and contiguous files the declared size must be
// provided in full through Write before the next header.
func (w *Writer) WriteHeader(hdr *header.Header) error {
	if w.closed {
		return config.ErrWriteAfterClose
	}

	if err := w.pad(); err != nil {
		return err
	}

	block, err := hdr.Encode()
	if err != nil {
		return err
	}

	if _, err := w.counter.Write(block[:]); err != nil {
		return err
	}

	if hdr.IsRegular() || hdr.IsContiguous() {
		w.remaining = hdr.Size
	} else {
		w.remaining = 0
	}

	return nil
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, config.ErrWriteAfterClose
	}

	if uint64(len(p)) > w.remaining {
		return 0, config.ErrWriteTooLong
	}

	n, err := w.counter.Write(p)

	w.remaining -= uint64(n)

	return n, err
}

func (w *Writer) pad() error {
	if w.remaining > 0 {
		return config.ErrMissingBody
	}

	if padding := blockPadding(w.counter.BytesWritten); padding > 0 {
		if _, err := w.counter.Write(zeroBlock[:padding]); err != nil {
			return err
		}
	}

	return nil
}

// Close finishes the current entry and writes the end-of-archive marker. It
// does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	if err := w.pad(); err != nil {
		return err
	}

	for i := 0; i < 2; i++ {
		if _, err := w.counter.Write(zeroBlock[:]); err != nil {
			return err
		}
	}

	w.closed = true

	return nil
}
