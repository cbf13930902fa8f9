package fields

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/pojntfx/ustar/pkg/config"
)

// ReadString returns the contents of a fixed-width field up to the first
// NUL byte; everything after it is padding.
func ReadString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}

	return string(field)
}

// WriteString fills a fixed-width field with value, padding the remainder
// with NUL bytes. A value exactly as long as the field is written verbatim.
func WriteString(field []byte, value string) error {
	if len(value) > len(field) {
		return config.ErrFieldOverflow
	}

	copy(field, value)
	for i := len(value); i < len(field); i++ {
		field[i] = 0
	}

	return nil
}

// ReadOctal parses a fixed-width field as octal ASCII. The field is
// NUL-terminated within its width; surrounding whitespace is tolerated and
// an empty or all-NUL field reads as zero.
func ReadOctal(field []byte) (uint64, error) {
	value := strings.TrimSpace(ReadString(field))
	if value == "" {
		return 0, nil
	}

	number, err := strconv.ParseUint(value, 8, 64)
	if err != nil {
		return 0, err
	}

	return number, nil
}

// WriteOctal formats number as zero-padded octal ASCII with exactly digits
// significant digits and NUL-pads the rest of the field.
func WriteOctal(field []byte, digits int, number uint64) error {
	if number >= uint64(1)<<uint(3*digits) {
		return config.ErrNumericOverflow
	}

	return WriteString(field, fmt.Sprintf("%0*o", digits, number))
}
