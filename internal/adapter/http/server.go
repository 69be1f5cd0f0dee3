package adapthttp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"levelup/internal/app"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	progress *app.ProgressService
	summary  *app.SummaryService
	backups  *app.BackupService
	notes    *app.NotificationQueue
	metrics  *Metrics
	registry *prometheus.Registry
	log      *zap.Logger
	webDir   string
}

// New creates a Server wired to the given application services. An empty
// webDir disables static file serving.
func New(ps *app.ProgressService, ss *app.SummaryService, bs *app.BackupService, nq *app.NotificationQueue, log *zap.Logger, webDir string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	return &Server{
		progress: ps,
		summary:  ss,
		backups:  bs,
		notes:    nq,
		metrics:  NewMetrics(reg),
		registry: reg,
		log:      log,
		webDir:   webDir,
	}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	api.HandleFunc("/state", s.handleState)
	api.HandleFunc("/habits", s.handleHabits)
	api.HandleFunc("/habits/toggle", s.handleHabitToggle)
	api.HandleFunc("/profile", s.handleProfile)

	api.HandleFunc("/dashboard", s.handleDashboard)
	api.HandleFunc("/history", s.handleHistory)
	api.HandleFunc("/achievements", s.handleAchievements)
	api.HandleFunc("/workouts", s.handleWorkouts)

	api.HandleFunc("/notifications/current", s.handleNotificationCurrent)
	api.HandleFunc("/notifications/dismiss", s.handleNotificationDismiss)

	api.HandleFunc("/backup/export", s.handleBackupExport)
	api.HandleFunc("/backup/import", s.handleBackupImport)

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", api))
	root.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	if s.webDir != "" {
		root.Handle("/", spaFromDisk(s.webDir))
	}

	return withNoCache(s.loggingMiddleware(root))
}
