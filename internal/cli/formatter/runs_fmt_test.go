package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/repository"
)

func TestFormatRunList_Empty(t *testing.T) {
	out := FormatRunList(nil)
	assert.Contains(t, out, "No discovery runs yet")
}

func TestFormatRunList_Rows(t *testing.T) {
	summaries := []repository.RunSummary{
		{
			ID:               "0c5a9e3f-1234-5678-9abc-def012345678",
			CreatedAt:        time.Now().Add(-2 * time.Hour),
			Mode:             domain.ModeBusiness,
			BeachheadProfile: "CTO / fintech",
			RawPopulation:    20,
			Survivors:        14,
			ElapsedMs:        95000,
		},
	}

	out := FormatRunList(summaries)
	assert.Contains(t, out, "0c5a9e3f")
	assert.Contains(t, out, "B2B")
	assert.Contains(t, out, "CTO / fintech")
	assert.Contains(t, out, "14/20")
	assert.Contains(t, out, "2h ago")
}
