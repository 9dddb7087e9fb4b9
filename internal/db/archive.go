// Package db archives resolution logs in SQLite or PostgreSQL.
package db

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/JustinWhittecar/battlecore/internal/report"
)

var ErrNotFound = errors.New("resolution not found")

// UnitSummary is one participant of an archived resolution.
type UnitSummary struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	StartBV   int    `json:"start_bv"`
	EndBV     int    `json:"end_bv"`
	Destroyed bool   `json:"destroyed"`
	Cause     string `json:"cause,omitempty"`
}

// Resolution is one archived engagement with its full report log.
type Resolution struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Seed      int64           `json:"seed"`
	Turns     int             `json:"turns"`
	Winner    string          `json:"winner,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Units     []UnitSummary   `json:"units"`
	Reports   []report.Report `json:"reports,omitempty"`
}

// Summary is a list row without the log.
type Summary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Winner      string    `json:"winner,omitempty"`
	Turns       int       `json:"turns"`
	ReportCount int       `json:"report_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// Archive stores and reads back resolutions.
type Archive interface {
	Save(ctx context.Context, r *Resolution) error
	Get(ctx context.Context, id uuid.UUID) (*Resolution, error)
	List(ctx context.Context, limit int) ([]Summary, error)
	Close() error
}

// prepare fills the id and timestamp of a resolution about to be saved.
func prepare(r *Resolution) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Millisecond)
}

// encodeLog gzips the JSON report log.
func encodeLog(reports []report.Report) ([]byte, error) {
	raw, err := json.Marshal(reports)
	if err != nil {
		return nil, fmt.Errorf("marshal log: %w", err)
	}
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(raw); err != nil {
		return nil, fmt.Errorf("compress log: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("compress log: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeLog(data []byte) ([]report.Report, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress log: %w", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("decompress log: %w", err)
	}
	var reports []report.Report
	if err := json.Unmarshal(raw, &reports); err != nil {
		return nil, fmt.Errorf("unmarshal log: %w", err)
	}
	return reports, nil
}
