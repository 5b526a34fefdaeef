package snapshot

import (
	"fmt"
	"strings"
)

const (
	V1SnapshotPrefix = "v1/stabcount/snapshots"
	V1SnapshotExt    = "cbor"
	V1PathSep        = "/"
)

// SnapshotPath returns the relative resource name for the named snapshot,
// '{prefix}/{name}.cbor'. Names are a single path segment.
func SnapshotPath(prefix, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%s.%s", strings.TrimSuffix(prefix, V1PathSep), V1PathSep, name, V1SnapshotExt), nil
}

func checkName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
