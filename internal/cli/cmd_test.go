package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/beachhead/internal/discovery"
	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/repository"
	"github.com/alexanderramin/beachhead/internal/testutil"
)

// stubEngine returns a canned result and records the context it ran with.
type stubEngine struct {
	result  *discovery.DiscoveryResult
	err     error
	lastCtx domain.DiscoveryContext
}

func (s *stubEngine) RunDiscovery(_ context.Context, dctx domain.DiscoveryContext, onProgress discovery.ProgressFunc) (*discovery.DiscoveryResult, error) {
	s.lastCtx = dctx
	if onProgress != nil {
		onProgress("Generating gene library", 10)
		onProgress("Complete", 100)
	}
	return s.result, s.err
}

// stubRunRepo is an in-memory RunRepo.
type stubRunRepo struct {
	saved map[string]*discovery.DiscoveryResult
	order []string
}

func newStubRunRepo() *stubRunRepo {
	return &stubRunRepo{saved: map[string]*discovery.DiscoveryResult{}}
}

func (r *stubRunRepo) Save(_ context.Context, result *discovery.DiscoveryResult) error {
	r.saved[result.RunID] = result
	r.order = append(r.order, result.RunID)
	return nil
}

func (r *stubRunRepo) GetByID(_ context.Context, id string) (*discovery.DiscoveryResult, error) {
	result, ok := r.saved[id]
	if !ok {
		return nil, fmt.Errorf("discovery run: %w", repository.ErrNotFound)
	}
	return result, nil
}

func (r *stubRunRepo) List(_ context.Context, limit int) ([]repository.RunSummary, error) {
	var summaries []repository.RunSummary
	for _, id := range r.order {
		result := r.saved[id]
		summaries = append(summaries, repository.RunSummary{
			ID:            id,
			Mode:          result.Context.Mode,
			Survivors:     result.Survivors,
			RawPopulation: result.RawPopulation,
		})
		if limit > 0 && len(summaries) == limit {
			break
		}
	}
	return summaries, nil
}

func (r *stubRunRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.saved[id]; !ok {
		return fmt.Errorf("discovery run: %w", repository.ErrNotFound)
	}
	delete(r.saved, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func executeCmd(app *App, args ...string) (stdout, stderr string, err error) {
	var out, errBuf bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	root.SilenceUsage = true
	err = root.Execute()
	return out.String(), errBuf.String(), err
}

func testApp(engine *stubEngine, runs *stubRunRepo) *App {
	return &App{
		Engine:        engine,
		Runs:          runs,
		IsInteractive: func() bool { return false },
	}
}

func TestDiscover_RequiresDescriptionWhenNotInteractive(t *testing.T) {
	app := testApp(&stubEngine{}, newStubRunRepo())
	_, _, err := executeCmd(app, "discover")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--description")
}

func TestDiscover_RunsPipelineAndSaves(t *testing.T) {
	engine := &stubEngine{result: testutil.SampleResult("run-1")}
	runs := newStubRunRepo()
	app := testApp(engine, runs)

	stdout, stderr, err := executeCmd(app, "discover",
		"-d", "An invoicing tool for freelance designers",
		"--mode", "b2b", "--stage", "early_revenue")
	require.NoError(t, err)

	assert.Equal(t, domain.StageEarlyRev, engine.lastCtx.Stage)
	assert.Contains(t, stdout, "BEACHHEAD")
	assert.Contains(t, stdout, "Saved as run-1")
	assert.Contains(t, stderr, "Generating gene library")
	assert.Contains(t, runs.saved, "run-1")
}

func TestDiscover_JSONOutput(t *testing.T) {
	engine := &stubEngine{result: testutil.SampleResult("run-2")}
	app := testApp(engine, newStubRunRepo())

	stdout, _, err := executeCmd(app, "discover", "-d", "A thing", "--json")
	require.NoError(t, err)

	var decoded discovery.DiscoveryResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, "run-2", decoded.RunID)
	assert.NotContains(t, stdout, "Saved as")
}

func TestDiscover_NoSave(t *testing.T) {
	engine := &stubEngine{result: testutil.SampleResult("run-3")}
	runs := newStubRunRepo()
	app := testApp(engine, runs)

	_, _, err := executeCmd(app, "discover", "-d", "A thing", "--no-save")
	require.NoError(t, err)
	assert.Empty(t, runs.saved)
}

func TestDiscover_InvalidModeRejected(t *testing.T) {
	app := testApp(&stubEngine{}, newStubRunRepo())
	_, _, err := executeCmd(app, "discover", "-d", "A thing", "--mode", "b2g")
	require.Error(t, err)
}

func TestDiscover_EngineErrorSurfaces(t *testing.T) {
	engine := &stubEngine{err: errors.New("generating_library: oracle down")}
	app := testApp(engine, newStubRunRepo())

	_, _, err := executeCmd(app, "discover", "-d", "A thing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generating_library")
}

func TestRuns_ListShowDelete(t *testing.T) {
	runs := newStubRunRepo()
	require.NoError(t, runs.Save(context.Background(), testutil.SampleResult("aaaa1111")))
	require.NoError(t, runs.Save(context.Background(), testutil.SampleResult("bbbb2222")))
	app := testApp(&stubEngine{}, runs)

	stdout, _, err := executeCmd(app, "runs", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "aaaa1111")
	assert.Contains(t, stdout, "bbbb2222")

	// Show resolves a unique prefix.
	stdout, _, err = executeCmd(app, "runs", "show", "aaaa")
	require.NoError(t, err)
	assert.Contains(t, stdout, "BEACHHEAD")

	_, _, err = executeCmd(app, "runs", "delete", "bbbb")
	require.NoError(t, err)
	assert.NotContains(t, runs.saved, "bbbb2222")
}

func TestRuns_AmbiguousPrefix(t *testing.T) {
	runs := newStubRunRepo()
	require.NoError(t, runs.Save(context.Background(), testutil.SampleResult("run-aa")))
	require.NoError(t, runs.Save(context.Background(), testutil.SampleResult("run-ab")))
	app := testApp(&stubEngine{}, runs)

	_, _, err := executeCmd(app, "runs", "show", "run-a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matches 2 runs")
}

func TestRuns_ShowMissing(t *testing.T) {
	app := testApp(&stubEngine{}, newStubRunRepo())
	_, _, err := executeCmd(app, "runs", "show", "nope")
	require.Error(t, err)
}
