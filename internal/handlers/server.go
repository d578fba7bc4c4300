package handlers

import (
	"log/slog"
	"net/http"

	"cleanair-backend/internal/cache"
	"cleanair-backend/internal/config"
	"cleanair-backend/internal/middleware"
	"cleanair-backend/internal/upstream"
	"cleanair-backend/internal/validation"
	"cleanair-backend/internal/wizard"
)

type Server struct {
	Cfg      *config.Config
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
	Upstream *upstream.Client
	Sessions *wizard.Store
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}
