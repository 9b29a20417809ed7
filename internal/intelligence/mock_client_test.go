package intelligence

import (
	"context"

	"github.com/alexanderramin/courtside/internal/llm"
)

type mockLLMClient struct {
	response string
	err      error
	last     llm.GenerateRequest
	calls    int
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "google/gemini-2.0-flash-001"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }
