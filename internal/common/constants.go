package common

const (
	// Compression constants
	CompressedSuffix = "_compressed"

	// File operation constants
	DefaultFilePermissions = 0755
)
