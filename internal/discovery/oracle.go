package discovery

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/beachhead/internal/llm"
	"github.com/alexanderramin/beachhead/internal/resilience"
)

// WarnFunc receives non-fatal pipeline warnings (skipped genomes, degraded
// stress-test batches). A nil WarnFunc is safe.
type WarnFunc func(format string, args ...any)

// stderrWarn is the default warning sink.
func stderrWarn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

func (w WarnFunc) printf(format string, args ...any) {
	if w != nil {
		w(format, args...)
	}
}

// generateJSON runs one guarded oracle call and extracts a JSON value of
// type T from the response. Extraction happens inside the guarded function:
// a parse failure fails the attempt, so a fresh generation may parse
// cleanly on retry. Parsing itself is never separately retried.
func generateJSON[T any](ctx context.Context, client llm.Client, guard resilience.Guard, req llm.GenerateRequest, validator llm.SchemaValidator[T]) (T, error) {
	return resilience.Do(ctx, guard, func(ctx context.Context) (T, error) {
		resp, err := client.Generate(ctx, req)
		if err != nil {
			var zero T
			return zero, err
		}
		return llm.ExtractJSON(resp.Text, validator)
	})
}
