package pagescan

import (
	"context"
	"time"
)

// ScanStatus represents the lifecycle state of a scan session.
type ScanStatus string

// ScanStatus constants.
const (
	ScanPending  ScanStatus = "pending"
	ScanComplete ScanStatus = "complete"
	ScanFailed   ScanStatus = "failed"
)

// Scan records one scan session: a single page submitted for extraction,
// together with the storage area that holds its artifacts and result.
type Scan struct {
	ID        string     `json:"id"`
	SourceURL string     `json:"sourceUrl"`
	Area      string     `json:"area"`
	Status    ScanStatus `json:"status"`
	Chunks    int        `json:"chunks"`
	Artifacts int        `json:"artifacts"`
	Error     string     `json:"error,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Validate returns an error if the scan contains invalid fields.
func (s *Scan) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "scan source URL required")
	}
	if s.Area == "" {
		return Errorf(EINVALID, "scan storage area required")
	}
	return nil
}

// ScanService represents a service for managing scan session records.
type ScanService interface {
	// CreateScan records a new scan session.
	CreateScan(ctx context.Context, scan *Scan) error

	// FindScanByID retrieves a scan by ID.
	// Returns ENOTFOUND if the scan does not exist.
	FindScanByID(ctx context.Context, id string) (*Scan, error)

	// FindScans retrieves scans matching the filter.
	FindScans(ctx context.Context, filter ScanFilter) ([]*Scan, error)

	// UpdateScan updates an existing scan record.
	// Returns ENOTFOUND if the scan does not exist.
	UpdateScan(ctx context.Context, id string, upd ScanUpdate) (*Scan, error)

	// DeleteScan permanently removes a scan record.
	// Returns ENOTFOUND if the scan does not exist.
	DeleteScan(ctx context.Context, id string) error
}

// ScanFilter represents a filter for FindScans.
type ScanFilter struct {
	ID        *string     `json:"id"`
	SourceURL *string     `json:"sourceUrl"`
	Status    *ScanStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ScanUpdate represents fields that can be updated on a scan record.
type ScanUpdate struct {
	Status    *ScanStatus `json:"status"`
	Chunks    *int        `json:"chunks"`
	Artifacts *int        `json:"artifacts"`
	Error     *string     `json:"error"`
}
