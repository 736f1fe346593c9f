package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(-0.5, 10), "  0%")
	assert.Contains(t, RenderProgress(1.5, 10), "100%")

	full := RenderProgress(1.0, 10)
	assert.Equal(t, 10, strings.Count(full, filledBlock))
	assert.Equal(t, 0, strings.Count(full, emptyBlock))
}

func TestRenderProgress_Partial(t *testing.T) {
	half := RenderProgress(0.5, 10)
	assert.Equal(t, 5, strings.Count(half, filledBlock))
	assert.Equal(t, 5, strings.Count(half, emptyBlock))
	assert.Contains(t, half, " 50%")
}

func TestProgressLine(t *testing.T) {
	out := ProgressLine("Scoring 42 segments", 50)
	assert.Contains(t, out, "Scoring 42 segments")
	assert.Contains(t, out, " 50%")
}
