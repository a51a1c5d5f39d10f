package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pagescan"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagescan.ScanService = (*ScanService)(nil)

// ScanService implements pagescan.ScanService using SQLite.
type ScanService struct {
	db *DB
}

// NewScanService creates a new ScanService.
func NewScanService(db *DB) *ScanService {
	return &ScanService{db: db}
}

// CreateScan records a new scan session.
func (s *ScanService) CreateScan(ctx context.Context, scan *pagescan.Scan) error {
	if err := scan.Validate(); err != nil {
		return err
	}

	scan.ID = uuid.New().String()
	if scan.Status == "" {
		scan.Status = pagescan.ScanPending
	}
	now := time.Now().UTC()
	scan.CreatedAt = now
	scan.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scans (id, source_url, area, status, chunks, artifacts, error, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, scan.ID, scan.SourceURL, scan.Area, string(scan.Status), scan.Chunks, scan.Artifacts, scan.Error,
		scan.CreatedAt.Format(time.RFC3339), scan.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindScanByID retrieves a scan by ID.
func (s *ScanService) FindScanByID(ctx context.Context, id string) (*pagescan.Scan, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, area, status, chunks, artifacts, error, created_at, updated_at
		FROM scans
		WHERE id = ?
	`, id)

	scan, err := scanRow(row)
	if err == sql.ErrNoRows {
		return nil, pagescan.Errorf(pagescan.ENOTFOUND, "scan not found")
	}
	if err != nil {
		return nil, err
	}

	return scan, nil
}

// FindScans retrieves scans matching the filter, newest first.
func (s *ScanService) FindScans(ctx context.Context, filter pagescan.ScanFilter) ([]*pagescan.Scan, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, area, status, chunks, artifacts, error, created_at, updated_at FROM scans WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY created_at DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []*pagescan.Scan
	for rows.Next() {
		scan, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scans, nil
}

// UpdateScan updates an existing scan record.
func (s *ScanService) UpdateScan(ctx context.Context, id string, upd pagescan.ScanUpdate) (*pagescan.Scan, error) {
	scan, err := s.FindScanByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		scan.Status = *upd.Status
	}
	if upd.Chunks != nil {
		scan.Chunks = *upd.Chunks
	}
	if upd.Artifacts != nil {
		scan.Artifacts = *upd.Artifacts
	}
	if upd.Error != nil {
		scan.Error = *upd.Error
	}
	scan.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE scans
		SET status = ?, chunks = ?, artifacts = ?, error = ?, updated_at = ?
		WHERE id = ?
	`, string(scan.Status), scan.Chunks, scan.Artifacts, scan.Error,
		scan.UpdatedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return scan, nil
}

// DeleteScan permanently removes a scan record.
func (s *ScanService) DeleteScan(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM scans WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return pagescan.Errorf(pagescan.ENOTFOUND, "scan not found")
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanRow.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (*pagescan.Scan, error) {
	var scan pagescan.Scan
	var status, createdAt, updatedAt string

	err := row.Scan(&scan.ID, &scan.SourceURL, &scan.Area, &status,
		&scan.Chunks, &scan.Artifacts, &scan.Error, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	scan.Status = pagescan.ScanStatus(status)
	if scan.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if scan.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}

	return &scan, nil
}

// Timestamps are stored as RFC3339 strings; a parse error names the column.
func parseTime(column, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("scans.%s: invalid timestamp %q: %w", column, value, err)
	}
	return t, nil
}
