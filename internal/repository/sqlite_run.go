package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/beachhead/internal/db"
	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/domain"
)

// SQLiteRunRepo implements RunRepo using a SQLite database. The full result
// is stored as a JSON payload; a few columns are denormalized for listing.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo.
func NewSQLiteRunRepo(dbtx db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: dbtx}
}

func (r *SQLiteRunRepo) Save(ctx context.Context, result *discovery.DiscoveryResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding run result: %w", err)
	}

	var beachheadID string
	if result.Synthesis != nil && result.Synthesis.Beachhead.Genome != nil {
		beachheadID = result.Synthesis.Beachhead.Genome.ID
	}

	query := `INSERT INTO discovery_runs (
		id, created_at, mode, business_description,
		beachhead_id, beachhead_profile, raw_population, survivors, elapsed_ms, result_json
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		result.RunID,
		nowUTC(),
		string(result.Context.Mode),
		result.Context.BusinessDescription,
		beachheadID,
		beachheadProfile(result),
		result.RawPopulation,
		result.Survivors,
		result.ElapsedMs,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("inserting discovery run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*discovery.DiscoveryResult, error) {
	query := `SELECT result_json FROM discovery_runs WHERE id = ?`
	var payload string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("discovery run: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading discovery run: %w", err)
	}

	var result discovery.DiscoveryResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("decoding run result: %w", err)
	}
	return &result, nil
}

func (r *SQLiteRunRepo) List(ctx context.Context, limit int) ([]RunSummary, error) {
	query := `SELECT id, created_at, mode, business_description,
		beachhead_id, beachhead_profile, raw_population, survivors, elapsed_ms
		FROM discovery_runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing discovery runs: %w", err)
	}
	defer rows.Close()

	var summaries []RunSummary
	for rows.Next() {
		var s RunSummary
		var createdAtStr, mode string
		if err := rows.Scan(
			&s.ID, &createdAtStr, &mode, &s.BusinessDescription,
			&s.BeachheadID, &s.BeachheadProfile, &s.RawPopulation, &s.Survivors, &s.ElapsedMs,
		); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		s.Mode = domain.SegmentationMode(mode)
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return summaries, nil
}

func (r *SQLiteRunRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM discovery_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting discovery run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("discovery run: %w", ErrNotFound)
	}
	return nil
}

// beachheadProfile builds a short listing label from the beachhead's genes,
// e.g. "CTO / fintech" for a business-mode run.
func beachheadProfile(result *discovery.DiscoveryResult) string {
	if result.Synthesis == nil || result.Synthesis.Beachhead.Genome == nil {
		return ""
	}
	g := result.Synthesis.Beachhead.Genome
	mode := result.Context.Mode

	primary := g.Genes[domain.DiversityKey(mode)]
	secondary := g.Genes[domain.DimensionOrder(mode)[0]]
	if primary == "" {
		return secondary
	}
	if secondary == "" {
		return primary
	}
	return primary + " / " + secondary
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
