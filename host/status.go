package host

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/plugforge/plughost/json"
)

// ModuleStatus is one loaded module in the status report.
type ModuleStatus struct {
	ID      string         `json:"id"`
	Path    string         `json:"path"`
	Plugins []PluginStatus `json:"plugins"`
}

// PluginStatus is one registered plugin in the status report.
type PluginStatus struct {
	Kind string `json:"kind"`
}

// Routes exposes the registry's status surface for mounting into the
// embedding server's router.
func (r *Registry) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/plugins", r.handleListPlugins)
	return router
}

// Status returns a snapshot of every loaded module and its plugins, in
// load order.
func (r *Registry) Status() []ModuleStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	report := make([]ModuleStatus, 0, len(r.modules))
	for _, m := range r.modules {
		status := ModuleStatus{
			ID:      m.ID.String(),
			Path:    m.Path,
			Plugins: make([]PluginStatus, 0, len(m.records)),
		}
		for _, rec := range m.records {
			status.Plugins = append(status.Plugins, PluginStatus{Kind: rec.Kind.String()})
		}
		report = append(report, status)
	}
	return report
}

func (r *Registry) handleListPlugins(w http.ResponseWriter, _ *http.Request) {
	body, err := json.Marshal(r.Status())
	if err != nil {
		r.logger.Error("encoding status report failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
