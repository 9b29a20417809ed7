// Package httpapi serves the planner as a local JSON API.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/courtside/internal/service"
)

// Deps holds the use cases the handlers call.
type Deps struct {
	Plan      service.PlanService
	Overrides service.OverrideService
	Food      service.FoodLogService
	Training  service.TrainingService
	Insights  service.InsightsService
	Meals     service.MealService
	Profile   service.ProfileService
	Settings  service.SettingsService
	Catalog   service.CatalogService
	Search    service.FoodSearch
	Export    service.ExportService
	Logger    *slog.Logger
}

func (d *Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}

// Handler returns the routed API with request logging.
func (d *Deps) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", d.HandleHealth)

	// Plan
	mux.HandleFunc("GET /api/today", d.HandleToday)
	mux.HandleFunc("GET /api/plan/{date}", d.HandleDay)
	mux.HandleFunc("GET /api/plan", d.HandleRange)
	mux.HandleFunc("GET /api/week", d.HandleWeek)
	mux.HandleFunc("GET /api/week/{date}", d.HandleWeek)
	mux.HandleFunc("GET /api/overrides", d.HandleListOverrides)
	mux.HandleFunc("PUT /api/overrides/{date}", d.HandleSetOverride)
	mux.HandleFunc("DELETE /api/overrides/{date}", d.HandleDeleteOverride)

	// Food
	mux.HandleFunc("GET /api/food", d.HandleFoodDay)
	mux.HandleFunc("POST /api/food", d.HandleAddFood)
	mux.HandleFunc("POST /api/food/analyze", d.HandleAnalyzeFood)
	mux.HandleFunc("GET /api/food/{id}", d.HandleGetFood)
	mux.HandleFunc("PUT /api/food/{id}", d.HandleUpdateFood)
	mux.HandleFunc("DELETE /api/food/{id}", d.HandleDeleteFood)
	mux.HandleFunc("GET /api/search", d.HandleSearch)

	// Training
	mux.HandleFunc("GET /api/training", d.HandleListTraining)
	mux.HandleFunc("POST /api/training", d.HandleLogTraining)
	mux.HandleFunc("DELETE /api/training/{id}", d.HandleDeleteTraining)

	// Profile, gamification, habits, shopping
	mux.HandleFunc("GET /api/profile", d.HandleProfile)
	mux.HandleFunc("PUT /api/profile/body", d.HandleSetBody)
	mux.HandleFunc("GET /api/goals", d.HandleGoals)
	mux.HandleFunc("PUT /api/goals", d.HandleSetGoals)
	mux.HandleFunc("POST /api/goals/generate", d.HandleGenerateGoals)
	mux.HandleFunc("POST /api/coach", d.HandleCoach)
	mux.HandleFunc("GET /api/stats", d.HandleStats)
	mux.HandleFunc("GET /api/habits", d.HandleHabits)
	mux.HandleFunc("POST /api/habits/{name}/toggle", d.HandleToggleHabit)
	mux.HandleFunc("GET /api/shopping", d.HandleShopping)
	mux.HandleFunc("POST /api/shopping", d.HandleAddShopping)
	mux.HandleFunc("DELETE /api/shopping", d.HandleClearShopping)
	mux.HandleFunc("DELETE /api/shopping/{item}", d.HandleRemoveShopping)

	// Settings
	mux.HandleFunc("GET /api/settings", d.HandleSettingKeys)
	mux.HandleFunc("GET /api/settings/{key}", d.HandleGetSetting)
	mux.HandleFunc("PUT /api/settings/{key}", d.HandlePutSetting)
	mux.HandleFunc("DELETE /api/settings/{key}", d.HandleDeleteSetting)

	// Insights and meals
	mux.HandleFunc("GET /api/insights", d.HandleSeries)
	mux.HandleFunc("POST /api/insights/analyze", d.HandleAnalyzeProgress)
	mux.HandleFunc("GET /api/pantry", d.HandlePantry)
	mux.HandleFunc("POST /api/suggest", d.HandleSuggest)
	mux.HandleFunc("POST /api/suggest/accept", d.HandleAcceptMeal)

	// Catalog
	mux.HandleFunc("GET /api/recipes", d.HandleRecipes)
	mux.HandleFunc("GET /api/recipes/{id}", d.HandleRecipe)
	mux.HandleFunc("POST /api/recipes", d.HandleSaveRecipe)
	mux.HandleFunc("DELETE /api/recipes/{id}", d.HandleDeleteRecipe)
	mux.HandleFunc("GET /api/exercises", d.HandleExercises)

	// Export
	mux.HandleFunc("GET /api/export/xlsx", d.HandleExportWorkbook)
	mux.HandleFunc("GET /api/export/ics", d.HandleExportCalendar)

	return d.logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (d *Deps) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		d.logger().InfoContext(r.Context(), "http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (d *Deps) HandleHealth(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, map[string]any{"ok": true})
}
