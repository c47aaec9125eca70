package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/skim"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ skim.SummaryService = (*SummaryService)(nil)

// SummaryService implements skim.SummaryService using SQLite.
type SummaryService struct {
	db *DB
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(db *DB) *SummaryService {
	return &SummaryService{db: db}
}

// CreateSummary persists a new summary, assigning its ID and CreatedAt.
func (s *SummaryService) CreateSummary(ctx context.Context, summary *skim.Summary) error {
	if err := summary.Validate(); err != nil {
		return err
	}

	summary.ID = uuid.New().String()
	summary.CreatedAt = time.Now().UTC()

	bullets, err := marshalBullets(summary.Bullets)
	if err != nil {
		return skim.Errorf(skim.EINTERNAL, "encoding bullets: %v", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO summaries (id, url, title, bullets, source_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, summary.ID, summary.URL, summary.Title, bullets, summary.SourceHash,
		summary.CreatedAt.Format(time.RFC3339))

	if err != nil {
		return skim.Errorf(skim.EINTERNAL, "inserting summary: %v", err)
	}
	return nil
}

// FindSummaryByID retrieves a summary by ID.
func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*skim.Summary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, bullets, source_hash, created_at
		FROM summaries
		WHERE id = ?
	`, id)

	summary, err := scanSummary(row.Scan)
	if err == sql.ErrNoRows {
		return nil, skim.Errorf(skim.ENOTFOUND, "summary not found")
	}
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// FindSummaries retrieves summaries matching the filter, most recent first.
func (s *SummaryService) FindSummaries(ctx context.Context, filter skim.SummaryFilter) ([]*skim.Summary, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, bullets, source_hash, created_at FROM summaries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
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

	var summaries []*skim.Summary
	for rows.Next() {
		summary, err := scanSummary(rows.Scan)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// DeleteSummary permanently removes a summary.
func (s *SummaryService) DeleteSummary(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM summaries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return skim.Errorf(skim.ENOTFOUND, "summary not found")
	}
	return nil
}

// scanSummary reads one summaries row through the given scan function.
func scanSummary(scan func(dest ...any) error) (*skim.Summary, error) {
	var summary skim.Summary
	var bullets, createdAt string

	if err := scan(&summary.ID, &summary.URL, &summary.Title, &bullets,
		&summary.SourceHash, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(bullets), &summary.Bullets); err != nil {
		return nil, fmt.Errorf("failed to parse bullets: %w", err)
	}

	var err error
	summary.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &summary, nil
}

// marshalBullets serializes the bullet list, storing nil as an empty array.
func marshalBullets(bullets []string) (string, error) {
	if bullets == nil {
		bullets = []string{}
	}
	b, err := json.Marshal(bullets)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
