package header

import "github.com/pojntfx/ustar/pkg/config"

const (
	Magic   = "ustar"
	Version = "00"
)

// Block is one raw 512-byte USTAR header record. The accessors below slice
// out the individual fields per the POSIX.1-1988 layout; they are the single
// source of truth for offsets and widths.
type Block [config.BlockSize]byte

var zeroBlock Block

func (b *Block) Suffix() []byte   { return b[0:][:100] }
func (b *Block) Mode() []byte     { return b[100:][:8] }
func (b *Block) UID() []byte      { return b[108:][:8] }
func (b *Block) GID() []byte      { return b[116:][:8] }
func (b *Block) Size() []byte     { return b[124:][:12] }
func (b *Block) ModTime() []byte  { return b[136:][:12] }
func (b *Block) Checksum() []byte { return b[148:][:8] }
func (b *Block) TypeFlag() []byte { return b[156:][:1] }
func (b *Block) LinkDest() []byte { return b[157:][:100] }
func (b *Block) Magic() []byte    { return b[257:][:6] }
func (b *Block) Version() []byte  { return b[263:][:2] }
func (b *Block) User() []byte     { return b[265:][:32] }
func (b *Block) Group() []byte    { return b[297:][:32] }
func (b *Block) DevMajor() []byte { return b[329:][:8] }
func (b *Block) DevMinor() []byte { return b[337:][:8] }
func (b *Block) Prefix() []byte   { return b[345:][:155] }

// ComputeChecksum sums all 512 bytes as unsigned 8-bit values, treating the
// checksum field itself as ASCII spaces.
func (b *Block) ComputeChecksum() uint64 {
	var sum uint64
	for i, c := range b {
		if 148 <= i && i < 156 {
			c = ' '
		}

		sum += uint64(c)
	}

	return sum
}

// IsZero reports whether the block consists entirely of zero bytes, which is
// how the end-of-archive marker looks on the wire.
func (b *Block) IsZero() bool {
	return *b == zeroBlock
}
