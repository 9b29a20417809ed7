package httpapi

import (
	"bytes"
	"net/http"

	"github.com/alexanderramin/courtside/internal/domain"
)

func (d *Deps) HandleToday(w http.ResponseWriter, r *http.Request) {
	day, err := d.Plan.Today(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, day)
}

func (d *Deps) HandleDay(w http.ResponseWriter, r *http.Request) {
	day, err := d.Plan.Day(r.Context(), r.PathValue("date"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, day)
}

// HandleRange resolves ?from=&to=; both default to today.
func (d *Deps) HandleRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, err := d.Plan.Range(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, days)
}

func (d *Deps) HandleWeek(w http.ResponseWriter, r *http.Request) {
	days, err := d.Plan.Week(r.Context(), r.PathValue("date"))
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, days)
}

func (d *Deps) HandleListOverrides(w http.ResponseWriter, r *http.Request) {
	entries, err := d.Overrides.List(r.Context())
	if err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, entries)
}

// HandleSetOverride upserts the override for {date}. Unlike the service,
// the API rejects activity types the resolver does not know.
func (d *Deps) HandleSetOverride(w http.ResponseWriter, r *http.Request) {
	var plan domain.DayPlan
	if err := decode(w, r, &plan); err != nil {
		d.fail(w, r, err)
		return
	}
	if _, ok := domain.ParseActivityType(string(plan.Type)); !ok {
		jsonError(w, "unknown activity type "+string(plan.Type), "invalid", http.StatusBadRequest)
		return
	}
	entry := domain.OverrideEntry{Date: r.PathValue("date"), DayPlan: plan}
	if err := d.Overrides.Set(r.Context(), entry); err != nil {
		d.fail(w, r, err)
		return
	}
	jsonOK(w, entry)
}

func (d *Deps) HandleDeleteOverride(w http.ResponseWriter, r *http.Request) {
	if err := d.Overrides.Delete(r.Context(), r.PathValue("date")); err != nil {
		d.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (d *Deps) HandleExportWorkbook(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="courtside.xlsx"`)
	d.stream(w, r, func(buf *bytes.Buffer) error {
		return d.Export.WriteWorkbook(r.Context(), buf, q.Get("from"), q.Get("to"))
	})
}

func (d *Deps) HandleExportCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="courtside.ics"`)
	d.stream(w, r, func(buf *bytes.Buffer) error {
		return d.Export.WriteCalendar(r.Context(), buf, q.Get("from"), q.Get("to"))
	})
}

// stream buffers a file export so a failure can still become a JSON error.
func (d *Deps) stream(w http.ResponseWriter, r *http.Request, write func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		w.Header().Del("Content-Disposition")
		d.fail(w, r, err)
		return
	}
	_, _ = w.Write(buf.Bytes())
}
