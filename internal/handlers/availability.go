package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cleanair-backend/internal/schedule"
	"cleanair-backend/internal/transport"
	"cleanair-backend/internal/upstream"

	"github.com/go-chi/chi/v5"
)

const availabilityCachePrefix = "availability:"

// FetchAvailability drives the one-shot availability fetch for a session.
// The first call transitions the machine to loading and performs the upstream
// round trip; every later call returns whatever outcome stuck, without
// refetching. DELETE on the same route is the explicit re-fetch path.
func (s *Server) FetchAvailability(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	session, ok := s.Sessions.Get(chi.URLParam(r, "id"), time.Now())
	if !ok {
		log.Warn("availability: session not found")
		transport.WriteError(w, http.StatusNotFound, "session not found", nil)
		return
	}

	gen, started := session.BeginFetch(time.Now())
	if !started {
		snap := session.Snapshot()
		log.Info("availability: already resolved",
			slog.String("session_id", snap.ID),
			slog.String("state", string(snap.Availability.State)),
		)
		transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"session": snap})
		return
	}

	if s.Upstream == nil {
		session.FailFetch(gen, "Availability is temporarily unavailable.", time.Now())
		log.Error("availability: upstream not configured")
		transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"session": session.Snapshot()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	days, err := s.loadMergedDays(ctx, log)
	if err != nil {
		msg := fetchErrorMessage(err)
		session.FailFetch(gen, msg, time.Now())
		log.Error("availability: fetch failed", slog.String("error", err.Error()))
		transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"session": session.Snapshot()})
		return
	}

	session.CompleteFetch(gen, days, time.Now())
	snap := session.Snapshot()
	log.Info("availability: ok",
		slog.String("session_id", snap.ID),
		slog.Int("days", len(days)),
	)
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"session": snap})
}

// ResetAvailability returns the fetch machine to idle so the next fetch call
// round-trips upstream again. The cached day grids are dropped along with it;
// a reset that replayed the cache would be pointless. Any chosen slot is
// cleared too, since it would refer to discarded data.
func (s *Server) ResetAvailability(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	session, ok := s.Sessions.Get(chi.URLParam(r, "id"), time.Now())
	if !ok {
		log.Warn("availability reset: session not found")
		transport.WriteError(w, http.StatusNotFound, "session not found", nil)
		return
	}

	session.ResetAvailability(time.Now())
	if s.Cache != nil {
		if err := s.Cache.DeletePrefix(r.Context(), availabilityCachePrefix); err != nil {
			log.Warn("availability reset: cache invalidation failed", slog.String("error", err.Error()))
		}
	}
	snap := session.Snapshot()
	log.Info("availability reset: ok", slog.String("session_id", snap.ID))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"session": snap})
}

// loadMergedDays fetches the raw day grid, merges consecutive units into
// arrival windows and drops unbookable days. The merged result is cached by
// date window since every session in the same period asks the same question.
func (s *Server) loadMergedDays(ctx context.Context, log *slog.Logger) ([]schedule.Day, error) {
	start, end := schedule.BookingWindow(time.Now(), s.Cfg.Timezone, s.Cfg.BookingLeadDays, s.Cfg.BookingHorizonDays)
	cacheKey := availabilityCachePrefix + start + ":" + end

	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(ctx, cacheKey); err == nil && ok {
			var days []schedule.Day
			if err := json.Unmarshal(cached, &days); err == nil {
				log.Info("availability: cache hit", slog.String("window", start+".."+end))
				return days, nil
			}
		}
	}

	raw, err := s.Upstream.FetchAvailability(ctx, upstream.AvailabilityRequest{
		Start:           start,
		End:             end,
		WorkStart:       s.Cfg.WorkDayStart,
		WorkEnd:         s.Cfg.WorkDayEnd,
		SlotStepMinutes: s.Cfg.SlotStepMinutes,
	})
	if err != nil {
		return nil, err
	}

	days := make([]schedule.Day, 0, len(raw))
	for _, d := range raw {
		merged, err := schedule.MergeSlots(d.Slots, s.Cfg.SlotBlocksNeeded)
		if err != nil {
			return nil, fmt.Errorf("merge slots for %s: %w", d.Date, err)
		}
		days = append(days, schedule.Day{Date: d.Date, Slots: merged})
	}
	days = schedule.FilterDays(days, schedule.ExcludedWeekday, s.Cfg.Timezone)

	if payload, err := encodeJSON(days); err == nil && s.Cache != nil {
		_ = s.Cache.Set(ctx, cacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	return days, nil
}

// fetchErrorMessage collapses the failure taxonomy to one display string:
// upstream messages pass through, bare statuses get a generic line with the
// code, transport failures get the fully generic line.
func fetchErrorMessage(err error) string {
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Message != "" {
			return statusErr.Message
		}
		return fmt.Sprintf("Could not load availability (status %d). Please try again later.", statusErr.Status)
	}
	return "Could not load availability. Please check your connection and try again."
}
