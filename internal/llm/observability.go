package llm

import (
	"context"
	"log/slog"
)

// LLMCallEvent describes one finished Generate call.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer is told about every Generate call, successful or not.
type Observer interface {
	OnCallComplete(ctx context.Context, event LLMCallEvent)
}

// LogObserver logs each call as an "llm_call" record. Failures log at warn
// with status "err:<code>".
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger.With(slog.String("component", "llm"))}
}

func (o *LogObserver) OnCallComplete(ctx context.Context, event LLMCallEvent) {
	level, status := slog.LevelInfo, "ok"
	if !event.Success {
		level, status = slog.LevelWarn, "err:"+event.ErrorCode
	}
	o.logger.LogAttrs(ctx, level, "llm_call",
		slog.String("task", string(event.Task)),
		slog.String("model", event.Model),
		slog.Int64("latency_ms", event.LatencyMs),
		slog.Int("attempts", event.Attempts),
		slog.String("status", status),
	)
}

type NoopObserver struct{}

func (NoopObserver) OnCallComplete(context.Context, LLMCallEvent) {}
