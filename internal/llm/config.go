package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of AI task being performed.
type TaskType string

const (
	TaskFood     TaskType = "food"
	TaskCoach    TaskType = "coach"
	TaskGoals    TaskType = "goals"
	TaskProgress TaskType = "progress"
	TaskMeal     TaskType = "meal"
	TaskFuel     TaskType = "fuel"
)

// TaskTypes lists every task in a stable order.
func TaskTypes() []TaskType {
	return []TaskType{TaskFood, TaskCoach, TaskGoals, TaskProgress, TaskMeal, TaskFuel}
}

// TaskConfig holds per-task parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the AI gateway.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Model      string
	APIKey     string // fallback when the in-app setting is empty
	Referer    string
	Title      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig pointing at OpenRouter. Calls still
// need an API key before anything leaves the machine.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    true,
		LogCalls:   false,
		Endpoint:   "https://openrouter.ai/api/v1/chat/completions",
		Model:      "google/gemini-2.0-flash-001",
		Referer:    "http://localhost:8080",
		Title:      "Volleyball App",
		TimeoutMs:  30000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskFood:     {Temperature: 0.2, MaxTokens: 512, TimeoutMs: 30000},
			TaskCoach:    {Temperature: 0.5, MaxTokens: 800, TimeoutMs: 20000},
			TaskGoals:    {Temperature: 0.1, MaxTokens: 300, TimeoutMs: 20000},
			TaskProgress: {Temperature: 0.5, MaxTokens: 1200, TimeoutMs: 30000},
			TaskMeal:     {Temperature: 0.4, MaxTokens: 1500, TimeoutMs: 30000},
			TaskFuel:     {Temperature: 0.3, MaxTokens: 400, TimeoutMs: 20000},
		},
	}
}

// LoadConfig reads AI configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("COURTSIDE_AI_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("COURTSIDE_AI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("COURTSIDE_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("COURTSIDE_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("COURTSIDE_AI_API_KEY"); v != "" {
		cfg.APIKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("COURTSIDE_AI_REFERER"); v != "" {
		cfg.Referer = v
	}
	if v := os.Getenv("COURTSIDE_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("COURTSIDE_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	for _, task := range TaskTypes() {
		applyTaskTimeoutEnv(&cfg, task, "COURTSIDE_AI_"+strings.ToUpper(string(task))+"_TIMEOUT_MS")
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
