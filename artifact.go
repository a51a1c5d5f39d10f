package pagescan

import (
	"context"
	"strings"
	"time"
)

// ArtifactKind identifies the type of a content artifact extracted from a
// page: a table rendered as delimited text, or an image's raw bytes.
type ArtifactKind string

// ArtifactKind constants.
const (
	KindTable ArtifactKind = "table"
	KindImage ArtifactKind = "image"
)

// Valid reports whether the kind is a known artifact kind.
func (k ArtifactKind) Valid() bool {
	return k == KindTable || k == KindImage
}

// Ext returns the file extension used for artifacts of this kind.
// Images always use ".jpg" regardless of actual encoding; downstream
// consumers depend on the current naming, so it is not inferred from content.
func (k ArtifactKind) Ext() string {
	switch k {
	case KindTable:
		return ".txt"
	case KindImage:
		return ".jpg"
	}
	return ""
}

// Marker returns the inline marker embedded in extracted text in place of an
// artifact, e.g. "[TABLE:table_ab12.txt]".
func (k ArtifactKind) Marker(ref string) string {
	return "[" + strings.ToUpper(string(k)) + ":" + ref + "]"
}

// ArtifactStore persists content artifacts and scan results for a scan
// session's storage area. Artifact names are derived from a cryptographic
// digest of the content, so storing identical content twice yields the same
// reference and the second write is a no-op.
type ArtifactStore interface {
	// CreateArea creates the storage area for a scan of sourceURL started at
	// the given time and returns its name. The name is deterministic for a
	// given (normalized URL, timestamp) pair.
	CreateArea(ctx context.Context, sourceURL string, at time.Time) (area string, err error)

	// Store writes an artifact into the area and returns its reference,
	// which doubles as the stored filename.
	Store(ctx context.Context, area string, kind ArtifactKind, content []byte) (ref string, err error)

	// StoreResult persists the scan's final serialized result in the area.
	StoreResult(ctx context.Context, area string, result []byte) error
}
