package pathsplit

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/pojntfx/ustar/internal/pathext"
	"github.com/pojntfx/ustar/pkg/config"
)

// digestLen is the number of hex characters of the SHA-1 digest embedded
// into a truncated field to keep distinct inputs distinct.
const digestLen = 7

// truncateWithDigest shortens value to exactly target bytes, reserving the
// last digestLen bytes for a hex digest of hashSource. Both truncation sites
// below share it so they stay behaviorally identical; only the hash source
// differs between them.
func truncateWithDigest(value string, target int, hashSource string) string {
	sum := sha1.Sum([]byte(hashSource))

	return value[:target-digestLen] + hex.EncodeToString(sum[:])[:digestLen]
}

// Split breaks a full path into the (prefix, suffix) pair stored in a USTAR
// header, each guaranteed to fit its field (155 and 100 bytes).
//
// Components are assigned to the suffix from the leaf towards the root for
// as long as the joined suffix stays within 100 bytes; everything further
// up becomes the prefix. A leaf longer than 100 bytes is truncated and
// tagged with a digest of the entire original path, so leaves that differ
// only earlier in the path can not collide. A prefix longer than 155 bytes
// is truncated and tagged with a digest of the prefix itself, so all paths
// sharing one overflowing prefix keep sharing it after truncation.
//
// Truncation is a deliberate lossy shortening; apart from it, joining the
// results with "/" reproduces the path. Absolute paths are stored relative,
// as tar does.
func Split(path string, isDir bool) (string, string) {
	if pathext.IsRoot(path, true) {
		return "", "."
	}

	components, _ := pathext.Components(path)
	if len(components) == 0 {
		return "", "."
	}

	if isDir {
		components[len(components)-1] += "/"
	}

	leaf := components[len(components)-1]
	if len(leaf) > config.SuffixFieldSize {
		if isDir {
			leaf = truncateWithDigest(strings.TrimSuffix(leaf, "/"), config.SuffixFieldSize-1, path) + "/"
		} else {
			leaf = truncateWithDigest(leaf, config.SuffixFieldSize, path)
		}

		components[len(components)-1] = leaf
	}

	split := len(components) - 1
	budget := len(leaf)
	for i := len(components) - 2; i >= 0; i-- {
		budget += 1 + len(components[i])
		if budget > config.SuffixFieldSize {
			break
		}

		split = i
	}

	prefix := pathext.Join(components[:split])
	suffix := pathext.Join(components[split:])

	if len(prefix) > config.PrefixFieldSize {
		prefix = truncateWithDigest(prefix, config.PrefixFieldSize, prefix)
	}

	return prefix, suffix
}
