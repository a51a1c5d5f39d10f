package mock

import (
	"context"

	"github.com/fwojciec/pagescan"
)

var _ pagescan.ScanService = (*ScanService)(nil)

// ScanService is a mock implementation of pagescan.ScanService.
type ScanService struct {
	CreateScanFn   func(ctx context.Context, scan *pagescan.Scan) error
	FindScanByIDFn func(ctx context.Context, id string) (*pagescan.Scan, error)
	FindScansFn    func(ctx context.Context, filter pagescan.ScanFilter) ([]*pagescan.Scan, error)
	UpdateScanFn   func(ctx context.Context, id string, upd pagescan.ScanUpdate) (*pagescan.Scan, error)
	DeleteScanFn   func(ctx context.Context, id string) error
}

func (s *ScanService) CreateScan(ctx context.Context, scan *pagescan.Scan) error {
	return s.CreateScanFn(ctx, scan)
}

func (s *ScanService) FindScanByID(ctx context.Context, id string) (*pagescan.Scan, error) {
	return s.FindScanByIDFn(ctx, id)
}

func (s *ScanService) FindScans(ctx context.Context, filter pagescan.ScanFilter) ([]*pagescan.Scan, error) {
	return s.FindScansFn(ctx, filter)
}

func (s *ScanService) UpdateScan(ctx context.Context, id string, upd pagescan.ScanUpdate) (*pagescan.Scan, error) {
	return s.UpdateScanFn(ctx, id, upd)
}

func (s *ScanService) DeleteScan(ctx context.Context, id string) error {
	return s.DeleteScanFn(ctx, id)
}
