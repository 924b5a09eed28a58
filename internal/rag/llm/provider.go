package llm

import "context"

// Provider is the single-shot text completion boundary. Implementations own
// the one extraction rule that turns their SDK's structured result into the
// returned text.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
