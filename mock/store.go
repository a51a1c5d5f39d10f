package mock

import (
	"context"
	"time"

	"github.com/fwojciec/pagescan"
)

var _ pagescan.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of pagescan.ArtifactStore.
type ArtifactStore struct {
	CreateAreaFn  func(ctx context.Context, sourceURL string, at time.Time) (string, error)
	StoreFn       func(ctx context.Context, area string, kind pagescan.ArtifactKind, content []byte) (string, error)
	StoreResultFn func(ctx context.Context, area string, result []byte) error
}

func (s *ArtifactStore) CreateArea(ctx context.Context, sourceURL string, at time.Time) (string, error) {
	return s.CreateAreaFn(ctx, sourceURL, at)
}

func (s *ArtifactStore) Store(ctx context.Context, area string, kind pagescan.ArtifactKind, content []byte) (string, error) {
	return s.StoreFn(ctx, area, kind, content)
}

func (s *ArtifactStore) StoreResult(ctx context.Context, area string, result []byte) error {
	return s.StoreResultFn(ctx, area, result)
}
