package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"cleanair-backend/internal/httpx"
	"cleanair-backend/internal/pricing"
	"cleanair-backend/internal/transport"
	"cleanair-backend/internal/wizard"

	"github.com/go-chi/chi/v5"
)

// ContactRequest carries the step-3 customer data. Fields stay optional here
// so the wizard can save partial progress; completeness is enforced at
// booking time.
type ContactRequest struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email" validate:"omitempty,email"`
	Phone              string `json:"phone" validate:"omitempty,phone"`
	StreetAddress      string `json:"streetAddress"`
	Notes              string `json:"notes"`
	LanguagePreference string `json:"languagePreference"`
	SpecialRequest     string `json:"specialRequest"`
	AgreementChecked   bool   `json:"agreementChecked"`
}

type UpdateSelectionRequest struct {
	Selection SelectionRequest `json:"selection"`
	Contact   ContactRequest   `json:"contact"`
}

type SelectSlotRequest struct {
	Date  string `json:"date" validate:"required,date"`
	Start string `json:"start" validate:"required"`
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	session := s.Sessions.Create(time.Now())
	snap := session.Snapshot()

	log.Info("sessions create: ok", slog.String("session_id", snap.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{"session": snap})
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	session, ok := s.Sessions.Get(chi.URLParam(r, "id"), time.Now())
	if !ok {
		log.Warn("sessions get: not found")
		transport.WriteError(w, http.StatusNotFound, "session not found", nil)
		return
	}

	snap := session.Snapshot()
	payload := map[string]interface{}{"session": snap}
	if q, err := pricing.Compute(snap.Selection); err == nil {
		payload["quote"] = q
	}
	transport.WriteJSON(w, http.StatusOK, payload)
}

// UpdateSelection replaces the session's selection and contact data and
// responds with the freshly computed quote. The quote is recomputed on every
// change; there is no cached total anywhere.
func (s *Server) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	session, ok := s.Sessions.Get(chi.URLParam(r, "id"), time.Now())
	if !ok {
		log.Warn("sessions selection: not found")
		transport.WriteError(w, http.StatusNotFound, "session not found", nil)
		return
	}

	var req UpdateSelectionRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("sessions selection: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := s.Val.Struct(req); err != nil {
		log.Warn("sessions selection: validation error")
		details := httpx.ValidationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	sel := req.Selection.toSelection()
	q, err := pricing.Compute(sel)
	if err != nil {
		log.Warn("sessions selection: unknown package",
			slog.String("category_id", sel.CategoryID),
			slog.String("package_id", sel.PackageID),
		)
		transport.WriteError(w, http.StatusBadRequest, "unknown package", nil)
		return
	}

	snap := session.SetSelection(sel, wizard.Contact{
		FullName:           req.Contact.FullName,
		Email:              req.Contact.Email,
		Phone:              req.Contact.Phone,
		StreetAddress:      req.Contact.StreetAddress,
		Notes:              req.Contact.Notes,
		LanguagePreference: req.Contact.LanguagePreference,
		SpecialRequest:     req.Contact.SpecialRequest,
		AgreementChecked:   req.Contact.AgreementChecked,
	}, time.Now())

	log.Info("sessions selection: ok",
		slog.String("session_id", snap.ID),
		slog.String("package_id", sel.PackageID),
		slog.Int64("total", int64(q.Total)),
	)
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"session": snap,
		"quote":   q,
	})
}

// SelectSlot records the chosen arrival window. The slot must come from the
// loaded availability, which also pins the date to a bookable day.
func (s *Server) SelectSlot(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	session, ok := s.Sessions.Get(chi.URLParam(r, "id"), time.Now())
	if !ok {
		log.Warn("sessions slot: not found")
		transport.WriteError(w, http.StatusNotFound, "session not found", nil)
		return
	}

	var req SelectSlotRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("sessions slot: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("sessions slot: validation error")
		details := httpx.ValidationDetails(s.Val.ValidationErrors(err))
		transport.WriteError(w, http.StatusBadRequest, "validation error", details)
		return
	}

	snap := session.Snapshot()
	if snap.Availability.State != wizard.FetchLoaded {
		log.Warn("sessions slot: availability not loaded", slog.String("session_id", snap.ID))
		transport.WriteError(w, http.StatusConflict, "availability not loaded", nil)
		return
	}

	for _, day := range snap.Availability.Days {
		if day.Date != req.Date {
			continue
		}
		for _, slot := range day.Slots {
			if slot.Start.Format(time.RFC3339) != req.Start {
				continue
			}
			chosen := slot
			updated := session.SetSlot(day.Date, &chosen, time.Now())
			log.Info("sessions slot: ok",
				slog.String("session_id", updated.ID),
				slog.String("date", day.Date),
				slog.String("slot", slot.Label),
			)
			transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"session": updated})
			return
		}
	}

	log.Warn("sessions slot: slot not in availability",
		slog.String("session_id", snap.ID),
		slog.String("date", req.Date),
	)
	transport.WriteError(w, http.StatusBadRequest, "slot not available", nil)
}
