package web

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/five82/liftbook/internal/program"
	"github.com/five82/liftbook/internal/view"
)

type selectionData struct {
	Summaries []program.Summary
	Failed    int
	Error     string
}

type programData struct {
	ID   string
	Page view.Page
}

var templateFuncs = template.FuncMap{
	"dayURL": func(programID, dayID string) string {
		return "/programs/" + url.PathEscape(programID) + "?day=" + url.QueryEscape(dayID)
	},
	"programURL": func(programID string) string {
		return "/programs/" + url.PathEscape(programID)
	},
	"structure": func(s program.Structure) string {
		var parts []string
		for _, p := range [][2]string{
			{"Warm-up", s.Warmup}, {"Workout", s.Workout}, {"Cardio", s.Cardio}, {"Cool-down", s.Cooldown},
		} {
			if v := strings.TrimSpace(p[1]); v != "" {
				parts = append(parts, p[0]+" "+v)
			}
		}
		return strings.Join(parts, " · ")
	},
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	s.renderSelection(w, r, http.StatusOK, "")
}

func (s *Server) renderSelection(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	snap := s.catalogSnapshot(r.Context())
	s.render(w, r, status, "selection.html", selectionData{
		Summaries: snap.Summaries,
		Failed:    snap.Failed(),
		Error:     errMsg,
	})
}

func (s *Server) handleProgram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !program.ValidID(id) {
		http.NotFound(w, r)
		return
	}

	// Each request drives its own state machine.
	var st view.State
	ticket := st.BeginLoad(id)

	ctx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout)
	doc, err := s.fetcher.FetchProgram(ctx, id)
	cancel()

	if err := st.Complete(ticket, doc, err); err != nil {
		s.log.Warn("program load failed",
			"program", id,
			"error", err,
			"request_id", requestIDFrom(r.Context()),
		)
		s.renderSelection(w, r, http.StatusBadGateway, "Could not load program "+id+".")
		return
	}

	if day := r.URL.Query().Get("day"); day != "" {
		if err := st.SelectDay(day); err != nil {
			// Unknown days fall back to the first day.
			s.log.Info("day selection ignored", "program", id, "day", day, "error", err)
		}
	}

	page, _ := st.Page()
	s.render(w, r, http.StatusOK, "program.html", programData{ID: id, Page: page})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// render executes the named page into a buffer so a template error never
// sends a half-written page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := s.pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.log.Error("render page", "page", name, "error", err, "request_id", requestIDFrom(r.Context()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
