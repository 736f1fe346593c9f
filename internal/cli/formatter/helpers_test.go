package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/beachhead/internal/domain"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly10!", Truncate("exactly10!", 10))
	assert.Equal(t, "this is a…", Truncate("this is a long string", 10))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "850ms", FormatElapsed(850))
	assert.Equal(t, "2.5s", FormatElapsed(2500))
	assert.Equal(t, "1m 35s", FormatElapsed(95000))
}

func TestModeBadge(t *testing.T) {
	assert.Contains(t, ModeBadge(domain.ModeBusiness), "B2B")
	assert.Contains(t, ModeBadge(domain.ModeConsumer), "B2C")
}

func TestTruncID(t *testing.T) {
	assert.Contains(t, TruncID("0c5a9e3f-1234"), "0c5a9e3f")
}
