package manuscript

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when the compilation root does not exist.
var ErrNotFound = errors.New("manuscript path not found")

// ErrNoManuscript is returned when no document can serve as the manuscript root.
var ErrNoManuscript = errors.New("no manuscript found")

// FileNotFoundError reports a manifest entry with no matching corpus document.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return "included file not found: " + e.Path
}

// NestedManifestError reports an included fragment that declares its own
// include list. Manifests are flat; nested manifests are rejected.
type NestedManifestError struct {
	Path string
}

func (e *NestedManifestError) Error() string {
	return fmt.Sprintf("included file %s declares its own include list; nested manifests are not supported", e.Path)
}

// AmbiguousRootError reports several candidate manifests and no metadata.md
// to choose between them.
type AmbiguousRootError struct {
	Candidates []string
}

func (e *AmbiguousRootError) Error() string {
	return fmt.Sprintf("several documents declare an include list (%s); add %s to pick one",
		strings.Join(e.Candidates, ", "), MetadataFile)
}
