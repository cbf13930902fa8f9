package config

import "io"

type DriveWriterConfig struct {
	Drive io.Writer
}

type DriveReaderConfig struct {
	Drive io.Reader
}

type PipeConfig struct {
	Compression      string
	CompressionLevel string
}
