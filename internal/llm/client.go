package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// GenerateRequest holds the parameters for one chat completion.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	ExtraText    []string // appended as separate text parts
	Images       []string // data: URLs
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available reports whether a call could be attempted right now
	// (enabled and a key is configured). It does not touch the network.
	Available(ctx context.Context) bool
}

// chatClient implements LLMClient against an OpenAI-compatible
// chat-completions endpoint.
type chatClient struct {
	cfg      LLMConfig
	keys     KeySource
	http     *http.Client
	observer Observer
}

// NewChatClient creates an LLMClient for an OpenAI-compatible endpoint.
func NewChatClient(cfg LLMConfig, keys KeySource, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	if keys == nil {
		keys = StaticKey(cfg.APIKey)
	}
	return &chatClient{
		cfg:  cfg,
		keys: keys,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

func (c *chatClient) buildRequest(req GenerateRequest) chatRequest {
	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	var msgs []chatMessage
	if req.SystemPrompt != "" {
		msgs = append(msgs, chatMessage{
			Role:    "system",
			Content: []contentPart{{Type: "text", Text: req.SystemPrompt}},
		})
	}
	parts := []contentPart{{Type: "text", Text: req.UserPrompt}}
	for _, t := range req.ExtraText {
		parts = append(parts, contentPart{Type: "text", Text: t})
	}
	for _, img := range req.Images {
		parts = append(parts, contentPart{Type: "image_url", ImageURL: &imageURL{URL: img}})
	}
	msgs = append(msgs, chatMessage{Role: "user", Content: parts})

	return chatRequest{
		Model:       c.cfg.Model,
		Messages:    msgs,
		Temperature: temp,
		MaxTokens:   maxTok,
	}
}

func (c *chatClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	key, err := c.resolveKey(ctx)
	if err != nil {
		c.observer.OnCallComplete(ctx, LLMCallEvent{
			Task:      req.Task,
			Model:     c.cfg.Model,
			Success:   false,
			ErrorCode: errorCode(err),
		})
		return nil, err
	}

	timeoutMs := c.cfg.TaskTimeout(req.Task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	body := c.buildRequest(req)

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	made := 0

	for i := 0; i < attempts; i++ {
		made++
		text, model, err := c.doRequest(ctx, key, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(ctx, LLMCallEvent{
				Task:      req.Task,
				Model:     model,
				LatencyMs: latency,
				Attempts:  made,
				Success:   true,
			})
			return &GenerateResponse{
				Text:      text,
				Model:     model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout or a rejected request.
		if ctx.Err() != nil || isClientStatus(err) {
			break
		}
	}

	if ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			lastErr = &NetworkError{Err: ErrTimeout}
		} else {
			lastErr = &NetworkError{Err: ctx.Err()}
		}
	}

	c.observer.OnCallComplete(ctx, LLMCallEvent{
		Task:      req.Task,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  made,
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})
	return nil, lastErr
}

func (c *chatClient) resolveKey(ctx context.Context) (string, error) {
	if !c.cfg.Enabled {
		return "", &ConfigError{Setting: "COURTSIDE_AI_ENABLED", Err: ErrDisabled}
	}
	key, err := c.keys.APIKey(ctx)
	if err != nil {
		return "", &ConfigError{Setting: "openai_api_key", Err: err}
	}
	if key == "" {
		return "", &ConfigError{Setting: "openai_api_key", Err: ErrMissingAPIKey}
	}
	return key, nil
}

func (c *chatClient) doRequest(ctx context.Context, key string, body chatRequest) (string, string, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return "", "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return "", "", &ConfigError{Setting: "COURTSIDE_AI_ENDPOINT", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+key)
	if c.cfg.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		httpReq.Header.Set("X-Title", c.cfg.Title)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if isConnectionError(err) {
			return "", "", &NetworkError{Err: fmt.Errorf("%w: %v", ErrUnavailable, err)}
		}
		return "", "", &NetworkError{Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", "", &NetworkError{StatusCode: httpResp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return "", "", &NetworkError{
			StatusCode: httpResp.StatusCode,
			Body:       string(respBody),
			Err:        ErrHTTPStatus,
		}
	}

	return c.parseEnvelope(respBody)
}

// parseEnvelope pulls the first choice's text out of a chat-completions reply.
func (c *chatClient) parseEnvelope(body []byte) (string, string, error) {
	if !gjson.ValidBytes(body) {
		return "", "", &ParseError{Raw: string(body), Err: fmt.Errorf("%w: reply is not JSON", ErrInvalidOutput)}
	}
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
		return "", "", &NetworkError{Body: msg.String(), Err: fmt.Errorf("%w: %s", ErrHTTPStatus, msg.String())}
	}
	content := gjson.GetBytes(body, "choices.0.message.content")
	if !content.Exists() || content.Type != gjson.String {
		return "", "", &ParseError{Raw: string(body), Err: fmt.Errorf("%w: reply has no message content", ErrInvalidOutput)}
	}
	model := gjson.GetBytes(body, "model").String()
	if model == "" {
		model = c.cfg.Model
	}
	return content.String(), model, nil
}

func (c *chatClient) Available(ctx context.Context) bool {
	_, err := c.resolveKey(ctx)
	return err == nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func isClientStatus(err error) bool {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.StatusCode >= 400 && ne.StatusCode < 500 && ne.StatusCode != http.StatusTooManyRequests
	}
	var ce *ConfigError
	return errors.As(err, &ce)
}

func errorCode(err error) string {
	var ce *ConfigError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ce):
		return "CONFIG"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrHTTPStatus):
		return "HTTP_STATUS"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
