package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/courtside/internal/llm"
)

// generate runs one completion and decodes the reply into T.
// Gateway errors pass through untouched so callers can tell a missing key
// from a network failure or a bad reply.
func generate[T any](ctx context.Context, client llm.LLMClient, req llm.GenerateRequest, validate llm.SchemaValidator[T]) (T, error) {
	var zero T
	resp, err := client.Generate(ctx, req)
	if err != nil {
		return zero, err
	}
	return llm.ExtractJSON(resp.Text, validate)
}

func indentJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding prompt context: %w", err)
	}
	return string(data), nil
}
