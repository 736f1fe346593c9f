package discovery

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/beachhead/internal/llm"
)

// synthResponse serializes a synthesis payload the way the oracle would.
func synthResponse(t *testing.T, fields map[string]any) string {
	t.Helper()
	data, err := json.Marshal(fields)
	require.NoError(t, err)
	return string(data)
}

func TestSynthesize_ResolvesValidResponse(t *testing.T) {
	ranked := rankedPopulation(12)

	client := newStubClient()
	client.onText(llm.TaskSynthesis, synthResponse(t, map[string]any{
		"beachheadId":    ranked[2].ID,
		"rationale":      "clearest path to the economic buyer",
		"validationPlan": []string{"interview 10 buyers", "run a pricing test", "close 2 pilots"},
		"backupIds":      []string{ranked[0].ID, ranked[3].ID},
		"neverList": []map[string]string{
			{"id": ranked[10].ID, "reason": "no budget authority"},
			{"id": ranked[11].ID, "reason": "saturated channel"},
		},
		"strategicInsights": []string{"insight one", "insight two", "insight three"},
	}))

	synth := NewSynthesizer(client, fastGuard(), noWarn)
	out, err := synth.Synthesize(context.Background(), testContext(), ranked)
	require.NoError(t, err)

	assert.Equal(t, ranked[2].ID, out.Beachhead.Genome.ID)
	assert.Equal(t, "clearest path to the economic buyer", out.Beachhead.Rationale)
	assert.Len(t, out.Beachhead.ValidationPlan, 3)

	require.Len(t, out.Backups, 2)
	assert.Equal(t, ranked[0].ID, out.Backups[0].ID)
	assert.Equal(t, ranked[3].ID, out.Backups[1].ID)

	require.Len(t, out.NeverList, 2)
	assert.Equal(t, "no budget authority", out.NeverList[0].Reason)
	assert.Len(t, out.StrategicInsights, 3)
}

func TestSynthesize_UnknownBeachheadFallsBackToRank1(t *testing.T) {
	ranked := rankedPopulation(8)

	client := newStubClient()
	client.onText(llm.TaskSynthesis, synthResponse(t, map[string]any{
		"beachheadId": "G999",
		"rationale":   "hallucinated pick",
	}))

	var warnings int
	synth := NewSynthesizer(client, fastGuard(), func(string, ...any) { warnings++ })
	out, err := synth.Synthesize(context.Background(), testContext(), ranked)
	require.NoError(t, err)

	assert.Equal(t, ranked[0].ID, out.Beachhead.Genome.ID)
	assert.Greater(t, warnings, 0)
}

func TestSynthesize_BackupsFilledFromNextRanks(t *testing.T) {
	ranked := rankedPopulation(8)

	// No usable backup references: one unknown, one pointing at the
	// beachhead itself.
	client := newStubClient()
	client.onText(llm.TaskSynthesis, synthResponse(t, map[string]any{
		"beachheadId": ranked[0].ID,
		"backupIds":   []string{"G999", ranked[0].ID},
	}))

	synth := NewSynthesizer(client, fastGuard(), noWarn)
	out, err := synth.Synthesize(context.Background(), testContext(), ranked)
	require.NoError(t, err)

	require.Len(t, out.Backups, maxBackups)
	assert.Equal(t, ranked[1].ID, out.Backups[0].ID)
	assert.Equal(t, ranked[2].ID, out.Backups[1].ID)
	assert.Equal(t, ranked[3].ID, out.Backups[2].ID)
}

func TestSynthesize_AllBackupReferencesUnknown(t *testing.T) {
	ranked := rankedPopulation(8)

	client := newStubClient()
	client.onText(llm.TaskSynthesis, synthResponse(t, map[string]any{
		"beachheadId": "G999",
		"backupIds":   []string{"G901", "G902", "G903"},
	}))

	synth := NewSynthesizer(client, fastGuard(), noWarn)
	out, err := synth.Synthesize(context.Background(), testContext(), ranked)
	require.NoError(t, err)

	// Hallucinated beachhead drops to rank 1, backups to ranks 2 through 4.
	assert.Equal(t, ranked[0].ID, out.Beachhead.Genome.ID)
	require.Len(t, out.Backups, maxBackups)
	for i, g := range out.Backups {
		assert.Equal(t, ranked[i+1].ID, g.ID)
	}
}

func TestSynthesize_NoBackupReferencesFillsMinimum(t *testing.T) {
	ranked := rankedPopulation(8)

	client := newStubClient()
	client.onText(llm.TaskSynthesis, synthResponse(t, map[string]any{
		"beachheadId": ranked[0].ID,
	}))

	synth := NewSynthesizer(client, fastGuard(), noWarn)
	out, err := synth.Synthesize(context.Background(), testContext(), ranked)
	require.NoError(t, err)

	require.Len(t, out.Backups, minBackups)
	assert.Equal(t, ranked[1].ID, out.Backups[0].ID)
	assert.Equal(t, ranked[2].ID, out.Backups[1].ID)
}

func TestSynthesize_NeverListDefaultsToLowestRanks(t *testing.T) {
	ranked := rankedPopulation(8)

	client := newStubClient()
	client.onText(llm.TaskSynthesis, synthResponse(t, map[string]any{
		"beachheadId": ranked[0].ID,
	}))

	synth := NewSynthesizer(client, fastGuard(), noWarn)
	out, err := synth.Synthesize(context.Background(), testContext(), ranked)
	require.NoError(t, err)

	require.Len(t, out.NeverList, minNeverList)
	assert.Equal(t, ranked[len(ranked)-1].ID, out.NeverList[0].Genome.ID)
	assert.Equal(t, ranked[len(ranked)-2].ID, out.NeverList[1].Genome.ID)
	for _, e := range out.NeverList {
		assert.NotEmpty(t, e.Reason)
	}
}

func TestSynthesize_PlanAndInsightsBounded(t *testing.T) {
	ranked := rankedPopulation(8)

	client := newStubClient()
	client.onText(llm.TaskSynthesis, synthResponse(t, map[string]any{
		"beachheadId":       ranked[0].ID,
		"validationPlan":    []string{"a", "b", "c", "d", "e", "f", "g"},
		"strategicInsights": []string{"only one"},
	}))

	synth := NewSynthesizer(client, fastGuard(), noWarn)
	out, err := synth.Synthesize(context.Background(), testContext(), ranked)
	require.NoError(t, err)

	// Oversized plans truncate, undersized insights pad from ranked data.
	assert.Len(t, out.Beachhead.ValidationPlan, maxValidationSteps)
	assert.GreaterOrEqual(t, len(out.StrategicInsights), minInsights)
	assert.Equal(t, "only one", out.StrategicInsights[0])
}

func TestSynthesize_EmptyPlanGetsDefaults(t *testing.T) {
	ranked := rankedPopulation(8)

	client := newStubClient()
	client.onText(llm.TaskSynthesis, synthResponse(t, map[string]any{
		"beachheadId":    ranked[0].ID,
		"validationPlan": []string{"", "   "},
	}))

	synth := NewSynthesizer(client, fastGuard(), noWarn)
	out, err := synth.Synthesize(context.Background(), testContext(), ranked)
	require.NoError(t, err)

	assert.Equal(t, defaultValidationPlan, out.Beachhead.ValidationPlan)
	assert.NotEmpty(t, out.Beachhead.Rationale)
}

func TestSynthesize_EmptyPopulationErrors(t *testing.T) {
	synth := NewSynthesizer(newStubClient(), fastGuard(), noWarn)
	_, err := synth.Synthesize(context.Background(), testContext(), nil)
	require.Error(t, err)
}

func TestSynthesisWindow_NoOverlap(t *testing.T) {
	ranked := rankedPopulation(12)
	top, bottom := synthesisWindow(ranked)
	assert.Len(t, top, 10)
	assert.Len(t, bottom, 2)
	assert.Equal(t, ranked[10].ID, bottom[0].ID)

	// A tiny population fits entirely in the top window.
	small := rankedPopulation(4)
	top, bottom = synthesisWindow(small)
	assert.Len(t, top, 4)
	assert.Empty(t, bottom)
}
