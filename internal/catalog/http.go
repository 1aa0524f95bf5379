package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"TTGear/internal/equipment"
	"TTGear/pkg/kit"
)

type Server struct {
	Store     Store
	Log       *zap.Logger
	Metrics   *LookupMetrics
	RateLimit *kit.IPRateLimiter
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Store.Ping(ctx); err != nil {
			s.logger().Warn("readyz failed", zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(cr chi.Router) {
		if s.RateLimit != nil {
			cr.Use(s.RateLimit.Middleware)
		}

		cr.Get("/rubbers", s.listRubbers)
		cr.Get("/rubbers/{id}", s.getRubber)
		cr.Get("/blades", s.listBlades)
		cr.Get("/blades/{id}", s.getBlade)
		cr.Get("/stats", s.stats)
	})

	return r
}

func (s *Server) listRubbers(w http.ResponseWriter, r *http.Request) {
	rubbers, err := s.Store.ListRubbers(r.Context())
	s.Metrics.observe(kindRubbers, err)
	if err != nil {
		s.writeStoreError(w, r, "list rubbers", "", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, rubbers)
}

func (s *Server) getRubber(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	rubber, err := s.Store.GetRubber(r.Context(), id)
	s.Metrics.observe(kindRubber, err)
	if err != nil {
		s.writeStoreError(w, r, "get rubber", id, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, rubber)
}

func (s *Server) listBlades(w http.ResponseWriter, r *http.Request) {
	blades, err := s.Store.ListBlades(r.Context())
	s.Metrics.observe(kindBlades, err)
	if err != nil {
		s.writeStoreError(w, r, "list blades", "", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, blades)
}

func (s *Server) getBlade(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)

	blade, err := s.Store.GetBlade(r.Context(), id)
	s.Metrics.observe(kindBlade, err)
	if err != nil {
		s.writeStoreError(w, r, "get blade", id, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, blade)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	st, err := ComputeStats(r.Context(), s.Store)
	s.Metrics.observe(kindStats, err)
	if err != nil {
		s.writeStoreError(w, r, "stats", "", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, st)
}

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, op, id string, err error) {
	switch {
	case errors.Is(err, equipment.ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
	case r.Context().Err() != nil:
		// client went away, nobody reads the body
		s.logger().Debug(op+" abandoned", zap.Error(err), zap.String("id", id))
	case errors.Is(err, equipment.ErrDataUnavailable):
		s.logger().Warn(op+" failed", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "data unavailable", nil)
	default:
		s.logger().Error(op+" failed", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

// idParam decodes the id segment. chi hands back the escaped form when the
// request path carries escapes.
func idParam(r *http.Request) string {
	id := chi.URLParam(r, "id")
	if v, err := url.PathUnescape(id); err == nil {
		return v
	}
	return id
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
