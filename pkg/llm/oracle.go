package llm

import "context"

// Oracle sends a prompt to a text-generation model and returns the raw
// response text. Implementations do no retrying and no streaming; a
// transient failure surfaces immediately to the caller.
type Oracle interface {
	Generate(ctx context.Context, prompt string) (responseText string, err error)
}
