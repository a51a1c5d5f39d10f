// Package scan provides the page extraction pipeline orchestration.
// It coordinates parsing, chunking, DOM walking, artifact storage,
// sanitization, text processing, and result aggregation for one scan.
package scan

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pagescan"
	pagehtml "github.com/fwojciec/pagescan/html"
)

// DefaultMaxChunkSize is the default bound on a chunk's serialized markup
// size, in bytes.
const DefaultMaxChunkSize = 20000

// Scanner orchestrates a single page scan. Chunks are processed strictly
// sequentially: the text processor may be rate-limited or order-sensitive,
// and results must aggregate in document order without a reordering step.
type Scanner struct {
	Store        pagescan.ArtifactStore
	Images       pagescan.ImageFetcher
	Processor    pagescan.TextProcessor
	Scans        pagescan.ScanService // optional scan bookkeeping
	Limiter      *HostLimiter         // optional image-fetch politeness
	MaxChunkSize int

	// Now returns the scan start time; defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a scan.
type Result struct {
	ScanID      string                 `json:"scanId,omitempty"`
	Area        string                 `json:"area"`
	Extractions []*pagescan.Extraction `json:"extractions"`
	Artifacts   int                    `json:"artifacts"`
}

// Run scans rawHTML retrieved from sourceURL and returns the aggregated
// extraction result. The pipeline is strictly sequential: parse, create the
// session area, chunk, then per chunk walk, store artifacts, sanitize,
// process, and collect, and finally persist the result. Any fetch, storage,
// or processor failure aborts the whole scan; partial results are discarded.
func (s *Scanner) Run(ctx context.Context, rawHTML, sourceURL string) (*Result, error) {
	maxSize := s.MaxChunkSize
	if maxSize <= 0 {
		maxSize = DefaultMaxChunkSize
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	doc, err := pagehtml.Parse(rawHTML)
	if err != nil {
		return nil, pagescan.Errorf(pagescan.EINVALID, "failed to parse HTML: %v", err)
	}

	area, err := s.Store.CreateArea(ctx, sourceURL, now())
	if err != nil {
		return nil, err
	}

	var rec *pagescan.Scan
	if s.Scans != nil {
		rec = &pagescan.Scan{SourceURL: sourceURL, Area: area, Status: pagescan.ScanPending}
		if err := s.Scans.CreateScan(ctx, rec); err != nil {
			return nil, err
		}
	}

	chunks, err := pagehtml.Chunk(doc, maxSize)
	if err != nil {
		return nil, s.fail(ctx, rec, err)
	}

	// Non-nil so an empty page still persists "[]" rather than "null".
	extractions := make([]*pagescan.Extraction, 0)
	artifacts := 0
	processed := 0

	for _, chunk := range chunks {
		// Empty chunks exist only as unused accumulator seeds.
		if chunk.FirstChild == nil {
			continue
		}

		segs := pagehtml.Walk(chunk)

		text, stored, err := s.assemble(ctx, segs, sourceURL, area)
		if err != nil {
			return nil, s.fail(ctx, rec, err)
		}
		artifacts += stored

		raw, err := s.Processor.ProcessText(ctx, pagescan.Sanitize(text))
		if err != nil {
			return nil, s.fail(ctx, rec, err)
		}

		extraction, err := pagescan.DecodeExtraction(raw)
		if err != nil {
			return nil, s.fail(ctx, rec, err)
		}

		extractions = append(extractions, extraction)
		processed++
	}

	payload, err := json.Marshal(extractions)
	if err != nil {
		return nil, s.fail(ctx, rec, err)
	}
	if err := s.Store.StoreResult(ctx, area, payload); err != nil {
		return nil, s.fail(ctx, rec, err)
	}

	result := &Result{
		Area:        area,
		Extractions: extractions,
		Artifacts:   artifacts,
	}

	if rec != nil {
		result.ScanID = rec.ID
		status := pagescan.ScanComplete
		// Best-effort, like fail(): the result is already persisted, and a
		// bookkeeping failure must not discard it.
		_, _ = s.Scans.UpdateScan(ctx, rec.ID, pagescan.ScanUpdate{
			Status:    &status,
			Chunks:    &processed,
			Artifacts: &artifacts,
		})
	}

	return result, nil
}

// assemble turns walker segments into the chunk's text stream, storing table
// and image artifacts and embedding their inline markers. It returns the
// text and the number of artifacts stored. A failed image fetch or artifact
// write aborts the chunk: a silently skipped artifact would leave a dangling
// marker in the output.
func (s *Scanner) assemble(ctx context.Context, segs []pagehtml.Segment, sourceURL, area string) (string, int, error) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return "", 0, pagescan.Errorf(pagescan.EINVALID, "invalid source URL %q: %v", sourceURL, err)
	}

	var b strings.Builder
	stored := 0

	for _, seg := range segs {
		switch seg.Kind {
		case pagehtml.SegmentText:
			b.WriteString(seg.Text)
			b.WriteString("\n")

		case pagehtml.SegmentTable:
			ref, err := s.Store.Store(ctx, area, pagescan.KindTable, []byte(seg.Text))
			if err != nil {
				return "", stored, err
			}
			stored++
			b.WriteString(pagescan.KindTable.Marker(ref))
			b.WriteString("\n")

		case pagehtml.SegmentImage:
			ref, err := s.storeImage(ctx, base, seg.Src, area)
			if err != nil {
				return "", stored, err
			}
			stored++
			b.WriteString(pagescan.KindImage.Marker(ref))
			b.WriteString("\n")
		}
	}

	return b.String(), stored, nil
}

func (s *Scanner) storeImage(ctx context.Context, base *url.URL, src, area string) (string, error) {
	ref, err := url.Parse(src)
	if err != nil {
		return "", pagescan.Errorf(pagescan.EINVALID, "invalid image URL %q: %v", src, err)
	}
	abs := base.ResolveReference(ref)

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, abs.Host); err != nil {
			return "", err
		}
	}

	data, err := s.Images.FetchImage(ctx, abs.String())
	if err != nil {
		return "", err
	}

	return s.Store.Store(ctx, area, pagescan.KindImage, data)
}

// fail marks the scan record failed before propagating err. The record
// update is best-effort; the original error always wins.
func (s *Scanner) fail(ctx context.Context, rec *pagescan.Scan, err error) error {
	if rec != nil {
		status := pagescan.ScanFailed
		msg := err.Error()
		_, _ = s.Scans.UpdateScan(ctx, rec.ID, pagescan.ScanUpdate{
			Status: &status,
			Error:  &msg,
		})
	}
	return err
}
