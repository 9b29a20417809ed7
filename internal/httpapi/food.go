package httpapi

import (
	"net/http"
	"strconv"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/intelligence"
	"github.com/alexanderramin/courtside/internal/service"
)

// HandleFoodDay returns the day summary for ?date= (default today).
func (d *Deps) HandleFoodDay(w http.ResponseWriter, r *http.Request) {
	sum, err := d.Food.Summary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, sum)
}

func (d *Deps) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	var log domain.CalorieLog
	if err := decode(w, r, &log); err != nil {
		d.fail(w, r, err)
		return
	}
	res, err := d.Food.AddManual(r.Context(), &log)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonStatus(w, http.StatusCreated, res)
}

type analyzeRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

func (d *Deps) HandleAnalyzeFood(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decode(w, r, &req); err != nil {
		d.fail(w, r, err)
		return
	}
	res, err := d.Food.Analyze(r.Context(), req.Text, req.Image)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonStatus(w, http.StatusCreated, res)
}

func (d *Deps) HandleGetFood(w http.ResponseWriter, r *http.Request) {
	log, err := d.Food.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, log)
}

func (d *Deps) HandleUpdateFood(w http.ResponseWriter, r *http.Request) {
	var log domain.CalorieLog
	if err := decode(w, r, &log); err != nil {
		d.fail(w, r, err)
		return
	}
	log.ID = r.PathValue("id")
	if err := d.Food.Update(r.Context(), &log); err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, log)
}

func (d *Deps) HandleDeleteFood(w http.ResponseWriter, r *http.Request) {
	if err := d.Food.Delete(r.Context(), r.PathValue("id")); err != nil {
		d.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Deps) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	matches, err := d.Search.Search(r.Context(), q.Get("q"), limit)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	if matches == nil {
		matches = []service.FoodMatch{}
	}
	jsonOK(w, matches)
}

func (d *Deps) HandleListTraining(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logs, err := d.Training.List(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	if logs == nil {
		logs = []*domain.TrainingLog{}
	}
	jsonOK(w, logs)
}

func (d *Deps) HandleLogTraining(w http.ResponseWriter, r *http.Request) {
	var log domain.TrainingLog
	if err := decode(w, r, &log); err != nil {
		d.fail(w, r, err)
		return
	}
	res, err := d.Training.Log(r.Context(), &log)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonStatus(w, http.StatusCreated, res)
}

func (d *Deps) HandleDeleteTraining(w http.ResponseWriter, r *http.Request) {
	if err := d.Training.Delete(r.Context(), r.PathValue("id")); err != nil {
		d.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Deps) HandleSeries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s, err := d.Insights.Series(r.Context(),
		domain.Timeframe(q.Get("timeframe")), domain.Metric(q.Get("metric")), q.Get("end"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, s)
}

func (d *Deps) HandleAnalyzeProgress(w http.ResponseWriter, r *http.Request) {
	res, err := d.Insights.Analyze(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, res)
}

func (d *Deps) HandlePantry(w http.ResponseWriter, r *http.Request) {
	pantry, err := d.Meals.Pantry(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, map[string]any{"pantry": pantry, "standard": d.Catalog.StandardPantry()})
}

type suggestRequest struct {
	Date string `json:"date"`
}

func (d *Deps) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if r.ContentLength != 0 {
		if err := decode(w, r, &req); err != nil {
			d.fail(w, r, err)
			return
		}
	}
	plan, err := d.Meals.Suggest(r.Context(), req.Date)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, plan)
}

func (d *Deps) HandleAcceptMeal(w http.ResponseWriter, r *http.Request) {
	var meal intelligence.MealSuggestion
	if err := decode(w, r, &meal); err != nil {
		d.fail(w, r, err)
		return
	}
	res, err := d.Meals.Accept(r.Context(), &meal)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonStatus(w, http.StatusCreated, res)
}
