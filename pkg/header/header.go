package header

import (
	"io/fs"

	"github.com/pojntfx/ustar/internal/fields"
	"github.com/pojntfx/ustar/pkg/config"
)

// Type flags per the USTAR type code table.
const (
	TypeRegular     = '0'
	TypeHardLink    = '1'
	TypeSymlink     = '2'
	TypeCharDevice  = '3'
	TypeBlockDevice = '4'
	TypeDir         = '5'
	TypeFIFO        = '6'
	TypeContiguous  = '7'
)

// typeFlagModes maps each type flag to its fs.FileMode type bits. Hard links
// and contiguous files deliberately have no entry: a hard link's kind is a
// property of the link, not of the inode, and contiguous files are a legacy
// marker that restores like a regular file.
var typeFlagModes = map[byte]fs.FileMode{
	TypeRegular:     0,
	TypeSymlink:     fs.ModeSymlink,
	TypeCharDevice:  fs.ModeDevice | fs.ModeCharDevice,
	TypeBlockDevice: fs.ModeDevice,
	TypeDir:         fs.ModeDir,
	TypeFIFO:        fs.ModeNamedPipe,
}

// Header is the structured form of one 512-byte USTAR record. Size is only
// meaningful for regular files and DevMajor/DevMinor only for devices; both
// are zero otherwise.
type Header struct {
	Prefix   string
	Suffix   string
	Mode     uint32
	UID      uint32
	GID      uint32
	Size     uint64
	ModTime  uint64
	TypeFlag byte
	LinkDest string
	User     string
	Group    string
	DevMajor uint32
	DevMinor uint32
}

// Encode writes the header into a fresh block. The checksum is written last:
// all other fields first, then the checksum field is blanked to eight ASCII
// spaces, the block is summed, and the sum is written as 7-digit octal.
// Getting this order wrong produces archives standard tar can not read.
func (h *Header) Encode() (*Block, error) {
	if h.TypeFlag < TypeRegular || h.TypeFlag > TypeContiguous {
		return nil, config.ErrUnsupportedTypeFlag
	}

	b := &Block{}

	if err := fields.WriteString(b.Suffix(), h.Suffix); err != nil {
		return nil, err
	}

	if err := fields.WriteOctal(b.Mode(), 7, uint64(h.Mode&0o7777)); err != nil {
		return nil, err
	}

	if err := fields.WriteOctal(b.UID(), 7, uint64(h.UID)); err != nil {
		return nil, err
	}

	if err := fields.WriteOctal(b.GID(), 7, uint64(h.GID)); err != nil {
		return nil, err
	}

	if err := fields.WriteOctal(b.Size(), 12, h.Size); err != nil {
		return nil, err
	}

	if err := fields.WriteOctal(b.ModTime(), 12, h.ModTime); err != nil {
		return nil, err
	}

	b.TypeFlag()[0] = h.TypeFlag

	if err := fields.WriteString(b.LinkDest(), h.LinkDest); err != nil {
		return nil, err
	}

	if err := fields.WriteString(b.Magic(), Magic); err != nil {
		return nil, err
	}

	if err := fields.WriteString(b.Version(), Version); err != nil {
		return nil, err
	}

	if err := fields.WriteString(b.User(), h.User); err != nil {
		return nil, err
	}

	if err := fields.WriteString(b.Group(), h.Group); err != nil {
		return nil, err
	}

	if err := fields.WriteOctal(b.DevMajor(), 7, uint64(h.DevMajor)); err != nil {
		return nil, err
	}

	if err := fields.WriteOctal(b.DevMinor(), 7, uint64(h.DevMinor)); err != nil {
		return nil, err
	}

	if err := fields.WriteString(b.Prefix(), h.Prefix); err != nil {
		return nil, err
	}

	copy(b.Checksum(), "        ")

	if err := fields.WriteOctal(b.Checksum(), 7, b.ComputeChecksum()); err != nil {
		return nil, err
	}

	return b, nil
}

// Decode parses a block into a header after validating its checksum. A
// checksum mismatch is fatal for the block; no fields of a corrupt block are
// ever returned.
func Decode(b *Block) (*Header, error) {
	stored, err := fields.ReadOctal(b.Checksum())
	if err != nil {
		return nil, config.ErrChecksumMismatch
	}

	if b.ComputeChecksum() != stored {
		return nil, config.ErrChecksumMismatch
	}

	mode, err := fields.ReadOctal(b.Mode())
	if err != nil {
		return nil, err
	}

	uid, err := fields.ReadOctal(b.UID())
	if err != nil {
		return nil, err
	}

	gid, err := fields.ReadOctal(b.GID())
	if err != nil {
		return nil, err
	}

	size, err := fields.ReadOctal(b.Size())
	if err != nil {
		return nil, err
	}

	modTime, err := fields.ReadOctal(b.ModTime())
	if err != nil {
		return nil, err
	}

	devMajor, err := fields.ReadOctal(b.DevMajor())
	if err != nil {
		return nil, err
	}

	devMinor, err := fields.ReadOctal(b.DevMinor())
	if err != nil {
		return nil, err
	}

	return &Header{
		Prefix:   fields.ReadString(b.Prefix()),
		Suffix:   fields.ReadString(b.Suffix()),
		Mode:     uint32(mode),
		UID:      uint32(uid),
		GID:      uint32(gid),
		Size:     size,
		ModTime:  modTime,
		TypeFlag: b.TypeFlag()[0],
		LinkDest: fields.ReadString(b.LinkDest()),
		User:     fields.ReadString(b.User()),
		Group:    fields.ReadString(b.Group()),
		DevMajor: uint32(devMajor),
		DevMinor: uint32(devMinor),
	}, nil
}

// Name reassembles the full path from the prefix and suffix fields.
func (h *Header) Name() string {
	if h.Prefix == "" {
		return h.Suffix
	}

	return h.Prefix + "/" + h.Suffix
}

// FileMode combines the stored permission bits with the type bits derived
// from the type flag.
func (h *Header) FileMode() fs.FileMode {
	return fs.FileMode(h.Mode&0o7777) | typeFlagModes[h.TypeFlag]
}

func (h *Header) IsRegular() bool     { return h.TypeFlag == TypeRegular }
func (h *Header) IsHardLink() bool    { return h.TypeFlag == TypeHardLink }
func (h *Header) IsSymlink() bool     { return h.TypeFlag == TypeSymlink }
func (h *Header) IsCharDevice() bool  { return h.TypeFlag == TypeCharDevice }
func (h *Header) IsBlockDevice() bool { return h.TypeFlag == TypeBlockDevice }
func (h *Header) IsDir() bool         { return h.TypeFlag == TypeDir }
func (h *Header) IsFIFO() bool        { return h.TypeFlag == TypeFIFO }
func (h *Header) IsContiguous() bool  { return h.TypeFlag == TypeContiguous }
