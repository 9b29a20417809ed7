package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogUseCaseObserver_LevelFollowsError(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "food-add", Duration: 3 * time.Millisecond, Fields: map[string]any{"date": "2026-02-26"}})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "food-delete", Err: errors.New("gone")})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=service_use_case use_case=food-add duration_ms=3 success=true date=2026-02-26")
	assert.Contains(t, out, "level=ERROR msg=service_use_case use_case=food-delete")
	assert.Contains(t, out, "error=gone")
}

func TestCombineObservers(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers(nil))
	assert.IsType(t, NoopUseCaseObserver{}, combineObservers([]UseCaseObserver{nil}))

	a, b := &recordingObserver{}, &recordingObserver{}
	assert.Same(t, a, combineObservers([]UseCaseObserver{nil, a}))

	both := combineObservers([]UseCaseObserver{a, nil, b})
	both.ObserveUseCase(context.Background(), UseCaseEvent{Name: "seed"})
	require.Len(t, a.events, 1)
	require.Len(t, b.events, 1)
	assert.Equal(t, "seed", b.events[0].Name)
}
