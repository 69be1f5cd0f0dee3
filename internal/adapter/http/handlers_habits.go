package adapthttp

import (
	"net/http"

	"levelup/internal/domain"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	st, err := s.progress.Snapshot(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"today":       s.progress.Today(),
		"habits":      st.Habits,
		"completions": st.Completions,
		"stats":       st.Stats,
	})
}

func (s *Server) handleHabits(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		st, err := s.progress.Snapshot(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		today := s.progress.Today()
		items := make([]map[string]any, 0, len(st.Habits))
		for _, h := range st.Habits {
			items = append(items, map[string]any{"habit": h, "doneToday": st.Completions.Has(today, h.ID)})
		}
		writeJSON(w, http.StatusOK, map[string]any{"today": today, "items": items})

	case http.MethodPost:
		var body struct {
			Name     string          `json:"name"`
			Category domain.Category `json:"category"`
			Icon     string          `json:"icon"`
		}
		if err := parseJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		h, err := s.progress.AddHabit(r.Context(), body.Name, body.Category, body.Icon)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"habit": h})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleHabitToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		ID string `json:"id"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := s.progress.Toggle(r.Context(), body.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if res.Applied {
		ids := make([]string, 0, len(res.Unlocks))
		for _, u := range res.Unlocks {
			ids = append(ids, u.AchievementID)
		}
		s.metrics.RecordToggle(res.Completed, ids)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	stats, err := s.progress.Rename(r.Context(), body.Name)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": stats})
}
