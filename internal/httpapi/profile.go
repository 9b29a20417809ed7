package httpapi

import (
	"net/http"
	"strconv"

	"github.com/alexanderramin/courtside/internal/domain"
)

func (d *Deps) HandleProfile(w http.ResponseWriter, r *http.Request) {
	p, err := d.Profile.Profile(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	hasKey, err := d.Profile.HasAPIKey(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, map[string]any{"profile": p, "has_api_key": hasKey})
}

type bodyRequest struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

func (d *Deps) HandleSetBody(w http.ResponseWriter, r *http.Request) {
	var req bodyRequest
	if err := decode(w, r, &req); err != nil {
		d.fail(w, r, err)
		return
	}
	if err := d.Profile.SetBodyStats(r.Context(), req.Height, req.Weight); err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, req)
}

func (d *Deps) HandleGoals(w http.ResponseWriter, r *http.Request) {
	g, err := d.Profile.Goals(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, g)
}

func (d *Deps) HandleSetGoals(w http.ResponseWriter, r *http.Request) {
	var g domain.Macros
	if err := decode(w, r, &g); err != nil {
		d.fail(w, r, err)
		return
	}
	if err := d.Profile.SetGoals(r.Context(), g); err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, g)
}

func (d *Deps) HandleGenerateGoals(w http.ResponseWriter, r *http.Request) {
	g, err := d.Profile.GenerateGoals(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, g)
}

func (d *Deps) HandleCoach(w http.ResponseWriter, r *http.Request) {
	fb, err := d.Profile.CoachFeedback(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, fb)
}

func (d *Deps) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, level, err := d.Profile.Stats(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, map[string]any{"stats": stats, "level": level})
}

func (d *Deps) HandleHabits(w http.ResponseWriter, r *http.Request) {
	h, err := d.Profile.Habits(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, h)
}

func (d *Deps) HandleToggleHabit(w http.ResponseWriter, r *http.Request) {
	res, err := d.Profile.ToggleHabit(r.Context(), r.PathValue("name"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, res)
}

func (d *Deps) HandleShopping(w http.ResponseWriter, r *http.Request) {
	list, err := d.Profile.ShoppingList(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, list)
}

type shoppingRequest struct {
	Items []string `json:"items"`
}

func (d *Deps) HandleAddShopping(w http.ResponseWriter, r *http.Request) {
	var req shoppingRequest
	if err := decode(w, r, &req); err != nil {
		d.fail(w, r, err)
		return
	}
	list, err := d.Profile.AddShoppingItems(r.Context(), req.Items...)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, list)
}

func (d *Deps) HandleRemoveShopping(w http.ResponseWriter, r *http.Request) {
	list, err := d.Profile.RemoveShoppingItem(r.Context(), r.PathValue("item"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, list)
}

func (d *Deps) HandleClearShopping(w http.ResponseWriter, r *http.Request) {
	if err := d.Profile.ClearShoppingList(r.Context()); err != nil {
		d.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Deps) HandleSettingKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := d.Settings.Keys(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	if keys == nil {
		keys = []string{}
	}
	jsonOK(w, keys)
}

// HandleGetSetting never returns the API key itself, only whether it is set.
func (d *Deps) HandleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	v, ok, err := d.Settings.Get(r.Context(), key)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	if !ok {
		jsonError(w, "setting "+strconv.Quote(key)+" not found", "not_found", http.StatusNotFound)
		return
	}
	if key == domain.SettingAPIKey {
		s, _ := v.(string)
		jsonOK(w, map[string]any{"key": key, "set": s != ""})
		return
	}
	jsonOK(w, map[string]any{"key": key, "value": v})
}

type settingRequest struct {
	Value any `json:"value"`
}

func (d *Deps) HandlePutSetting(w http.ResponseWriter, r *http.Request) {
	var req settingRequest
	if err := decode(w, r, &req); err != nil {
		d.fail(w, r, err)
		return
	}
	key := r.PathValue("key")
	if err := d.Settings.Set(r.Context(), key, req.Value); err != nil {
		d.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Deps) HandleDeleteSetting(w http.ResponseWriter, r *http.Request) {
	if err := d.Settings.Delete(r.Context(), r.PathValue("key")); err != nil {
		d.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Deps) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := d.Catalog.Recipes(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	if recipes == nil {
		recipes = []*domain.Recipe{}
	}
	jsonOK(w, recipes)
}

func (d *Deps) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	rec, err := d.Catalog.Recipe(r.Context(), id)
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, rec)
}

func (d *Deps) HandleSaveRecipe(w http.ResponseWriter, r *http.Request) {
	var rec domain.Recipe
	if err := decode(w, r, &rec); err != nil {
		d.fail(w, r, err)
		return
	}
	if err := d.Catalog.SaveRecipe(r.Context(), &rec); err != nil {
		d.fail(w, r, err)
		return
	}
	jsonStatus(w, http.StatusCreated, rec)
}

func (d *Deps) HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := d.Catalog.DeleteRecipe(r.Context(), id); err != nil {
		d.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Deps) HandleExercises(w http.ResponseWriter, r *http.Request) {
	ex, err := d.Catalog.Exercises(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	if ex == nil {
		ex = []*domain.Exercise{}
	}
	jsonOK(w, ex)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		jsonError(w, "id must be a positive integer", "invalid", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
