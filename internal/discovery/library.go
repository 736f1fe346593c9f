package discovery

import (
	"context"
	"fmt"

	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/resilience"
)

// LibraryGenerator builds the gene library that seeds a discovery run.
type LibraryGenerator interface {
	// Generate produces the 8-dimension allele library for the given
	// business context. Failure here is fatal to the run: an empty or
	// malformed library cannot seed a meaningful population, so no
	// fallback library is substituted.
	Generate(ctx context.Context, dctx domain.DiscoveryContext) (*domain.GeneLibrary, error)
}

type libraryGenerator struct {
	client llm.Client
	guard  resilience.Guard
	cfg    Config
}

// NewLibraryGenerator creates a LibraryGenerator backed by the oracle.
func NewLibraryGenerator(client llm.Client, guard resilience.Guard, cfg Config) LibraryGenerator {
	return &libraryGenerator{client: client, guard: guard, cfg: cfg}
}

// libraryResponse is the JSON structure the oracle outputs for a library.
type libraryResponse struct {
	Dimensions map[string][]string `json:"dimensions"`
}

func (g *libraryGenerator) Generate(ctx context.Context, dctx domain.DiscoveryContext) (*domain.GeneLibrary, error) {
	prompt := buildLibraryPrompt(dctx, g.cfg.AllelesPerDimension)

	validator := func(resp libraryResponse) error {
		lib := domain.GeneLibrary{Mode: dctx.Mode, Dimensions: resp.Dimensions}
		return lib.Validate(g.cfg.MinAlleles)
	}

	resp, err := generateJSON(ctx, g.client, g.guard, llm.GenerateRequest{
		Task:         llm.TaskLibrary,
		SystemPrompt: librarySystemPrompt,
		UserPrompt:   prompt,
	}, validator)
	if err != nil {
		return nil, fmt.Errorf("generating gene library: %w", err)
	}

	return &domain.GeneLibrary{Mode: dctx.Mode, Dimensions: resp.Dimensions}, nil
}
