package config

import "errors"

var (
	ErrChecksumMismatch = errors.New("header checksum mismatch")
	ErrFieldOverflow    = errors.New("value does not fit into header field")
	ErrNumericOverflow  = errors.New("number does not fit into octal field")

	ErrUnsupportedTypeFlag = errors.New("unsupported type flag")

	ErrWriteTooLong    = errors.New("write exceeds the declared entry size")
	ErrWriteAfterClose = errors.New("write after archive was closed")
	ErrMissingBody     = errors.New("entry body is shorter than the declared size")

	ErrUnsupportedCompressionFormat = errors.New("unsupported compression format")
	ErrUnsupportedCompressionLevel  = errors.New("unsupported compression level")
)
