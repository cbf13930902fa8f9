package config

const (
	NoneKey = ""

	CompressionFormatGZipKey         = "gzip"
	CompressionFormatParallelGZipKey = "parallelgzip"
	CompressionFormatZStandardKey    = "zstandard"

	CompressionLevelFastestKey  = "fastest"
	CompressionLevelBalancedKey = "balanced"
	CompressionLevelSmallestKey = "smallest"

	BlockSize = 512

	SuffixFieldSize   = 100
	PrefixFieldSize   = 155
	LinkDestFieldSize = 100
	UserFieldSize     = 32
	GroupFieldSize    = 32
)

var (
	KnownCompressionFormats = []string{NoneKey, CompressionFormatGZipKey, CompressionFormatParallelGZipKey, CompressionFormatZStandardKey}

	KnownCompressionLevels = []string{CompressionLevelFastestKey, CompressionLevelBalancedKey, CompressionLevelSmallestKey}
)
