// Package fs provides filesystem-backed artifact storage for scan sessions.
package fs

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagescan"
)

// ResultFile is the name of the terminal artifact holding a scan's
// serialized final result.
const ResultFile = "result.txt"

// NormalizeURL canonicalizes a source URL for area naming: scheme and host
// are lowercased, the fragment is dropped, and an empty path becomes "/".
// Unparseable input is returned trimmed, so area naming never fails.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// AreaName derives the storage area name for a scan of sourceURL started at
// the given time. The name is deterministic, so concurrent scans of the same
// URL collide only within the same second, and even then all artifact writes
// are content-addressed and idempotent.
func AreaName(sourceURL string, at time.Time) string {
	return fmt.Sprintf("scan_%016x_%d", xxhash.Sum64String(NormalizeURL(sourceURL)), at.Unix())
}

// Ensure Store implements pagescan.ArtifactStore at compile time.
var _ pagescan.ArtifactStore = (*Store)(nil)

// Store persists content artifacts under an explicitly configured base
// directory, one subdirectory per scan session.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// CreateArea creates the session storage area and returns its name.
func (s *Store) CreateArea(ctx context.Context, sourceURL string, at time.Time) (string, error) {
	area := AreaName(sourceURL, at)
	if err := os.MkdirAll(filepath.Join(s.baseDir, area), 0755); err != nil {
		return "", err
	}
	return area, nil
}

// Store writes an artifact into the area and returns its reference. The
// filename is {kind}_{sha256}{ext}, so identical content always maps to the
// same name and re-storing it is a no-op. Image artifacts keep the fixed
// ".jpg" extension whatever their actual encoding.
func (s *Store) Store(ctx context.Context, area string, kind pagescan.ArtifactKind, content []byte) (string, error) {
	if !kind.Valid() {
		return "", pagescan.Errorf(pagescan.EINVALID, "unknown artifact kind %q", kind)
	}

	sum := sha256.Sum256(content)
	name := fmt.Sprintf("%s_%x%s", kind, sum, kind.Ext())
	path := filepath.Join(s.baseDir, area, name)

	// Content-addressed: an existing file already holds these exact bytes.
	if _, err := os.Stat(path); err == nil {
		return name, nil
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", err
	}
	return name, nil
}

// StoreResult persists the scan's final result in the area.
func (s *Store) StoreResult(ctx context.Context, area string, result []byte) error {
	return os.WriteFile(filepath.Join(s.baseDir, area, ResultFile), result, 0644)
}

// ResultPath returns the path of a session's result file under the store's
// base directory.
func (s *Store) ResultPath(area string) string {
	return filepath.Join(s.baseDir, area, ResultFile)
}
