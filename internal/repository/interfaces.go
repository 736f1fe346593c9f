package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// RunSummary is a listing-friendly view of a stored discovery run, without
// the full result payload.
type RunSummary struct {
	ID                  string
	CreatedAt           time.Time
	Mode                domain.SegmentationMode
	BusinessDescription string
	BeachheadID         string
	BeachheadProfile    string
	RawPopulation       int
	Survivors           int
	ElapsedMs           int64
}

type RunRepo interface {
	Save(ctx context.Context, result *discovery.DiscoveryResult) error
	GetByID(ctx context.Context, id string) (*discovery.DiscoveryResult, error)
	List(ctx context.Context, limit int) ([]RunSummary, error)
	Delete(ctx context.Context, id string) error
}
