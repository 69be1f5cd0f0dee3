package adapthttp

import "net/http"

func (s *Server) handleNotificationCurrent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	n, ok := s.notes.Current()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"notification": nil, "pending": 0})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notification": n, "pending": s.notes.Pending()})
}

func (s *Server) handleNotificationDismiss(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	dismissed := s.notes.Dismiss()
	writeJSON(w, http.StatusOK, map[string]any{"dismissed": dismissed, "pending": s.notes.Pending()})
}
