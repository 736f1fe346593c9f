package discovery

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/beachhead/internal/domain"
	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/resilience"
)

// stubClient scripts oracle responses per task type.
type stubClient struct {
	mu       sync.Mutex
	handlers map[llm.TaskType]func(req llm.GenerateRequest) (string, error)
	calls    map[llm.TaskType]int
	prompts  map[llm.TaskType][]string
}

func newStubClient() *stubClient {
	return &stubClient{
		handlers: make(map[llm.TaskType]func(req llm.GenerateRequest) (string, error)),
		calls:    make(map[llm.TaskType]int),
		prompts:  make(map[llm.TaskType][]string),
	}
}

func (c *stubClient) on(task llm.TaskType, handler func(req llm.GenerateRequest) (string, error)) {
	c.handlers[task] = handler
}

// onText scripts a fixed response for a task.
func (c *stubClient) onText(task llm.TaskType, text string) {
	c.on(task, func(llm.GenerateRequest) (string, error) { return text, nil })
}

func (c *stubClient) callCount(task llm.TaskType) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[task]
}

func (c *stubClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.mu.Lock()
	c.calls[req.Task]++
	c.prompts[req.Task] = append(c.prompts[req.Task], req.UserPrompt)
	handler := c.handlers[req.Task]
	c.mu.Unlock()

	if handler == nil {
		return nil, fmt.Errorf("stub: no handler for task %s", req.Task)
	}
	text, err := handler(req)
	if err != nil {
		return nil, err
	}
	return &llm.GenerateResponse{Text: text, Model: "stub"}, nil
}

func (c *stubClient) Available(context.Context) bool { return true }

// fastGuard is a no-retry guard for unit tests.
func fastGuard() resilience.Guard {
	return resilience.Guard{
		Timeout:    time.Second,
		MaxRetries: 0,
		Backoff:    resilience.ConstantBackoff(0),
	}
}

// retryGuard exercises retry paths without slowing tests down.
func retryGuard(retries int) resilience.Guard {
	return resilience.Guard{
		Timeout:    time.Second,
		MaxRetries: retries,
		Backoff:    resilience.ConstantBackoff(time.Millisecond),
	}
}

func testContext() domain.DiscoveryContext {
	return domain.DiscoveryContext{
		BusinessDescription: "An invoicing tool for freelance designers",
		Offering:            domain.OfferingProduct,
		Stage:               domain.StagePreRev,
		Constraint:          domain.ConstraintBootstrap,
		SalesMotion:         domain.MotionSelfServe,
		Mode:                domain.ModeBusiness,
	}
}

// testLibrary builds a valid 8-dimension library with n alleles each.
func testLibrary(n int) *domain.GeneLibrary {
	lib := &domain.GeneLibrary{Mode: domain.ModeBusiness, Dimensions: map[string][]string{}}
	for _, dim := range domain.DimensionOrder(domain.ModeBusiness) {
		alleles := make([]string, n)
		for i := range alleles {
			alleles[i] = fmt.Sprintf("%s-%d", dim, i+1)
		}
		lib.Dimensions[dim] = alleles
	}
	return lib
}

// testGenome builds a genome with every business dimension set; overrides
// replace individual genes.
func testGenome(id string, overrides map[string]string) *domain.Genome {
	genes := map[string]string{}
	for _, dim := range domain.DimensionOrder(domain.ModeBusiness) {
		genes[dim] = dim + "-base"
	}
	for k, v := range overrides {
		genes[k] = v
	}
	return &domain.Genome{ID: id, Genes: genes}
}

// uniformFitness returns a fitness with every sub-score set to v.
func uniformFitness(v int) domain.Fitness {
	f := domain.Fitness{}
	for _, s := range f.SubScores() {
		*s = v
	}
	f.Total = 8 * v
	return f
}

func noWarn(string, ...any) {}
