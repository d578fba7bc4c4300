package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cleanair-backend/internal/pricing"
	"cleanair-backend/internal/transport"
	"cleanair-backend/internal/upstream"
	"cleanair-backend/internal/wizard"

	"github.com/go-chi/chi/v5"
)

const slotTakenMessage = "That arrival window was just booked by another customer. Please pick a different time."

// SubmitBooking relays the completed wizard to the dispatch backend. One
// submission at a time per session; a failure leaves everything editable for
// a manual retry, and a success makes the session read-only.
func (s *Server) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	session, ok := s.Sessions.Get(chi.URLParam(r, "id"), time.Now())
	if !ok {
		log.Warn("booking: session not found")
		transport.WriteError(w, http.StatusNotFound, "session not found", nil)
		return
	}

	snap := session.Snapshot()
	if details := bookingGaps(snap); len(details) > 0 {
		log.Warn("booking: incomplete wizard", slog.String("session_id", snap.ID))
		transport.WriteError(w, http.StatusBadRequest, "booking incomplete", details)
		return
	}

	if s.Upstream == nil {
		log.Error("booking: upstream not configured")
		transport.WriteError(w, http.StatusServiceUnavailable, "booking is temporarily unavailable", nil)
		return
	}

	if !session.BeginSubmit(time.Now()) {
		current := session.Snapshot()
		if current.Booking.State == wizard.SubmitDone {
			log.Warn("booking: already booked", slog.String("session_id", current.ID))
			transport.WriteError(w, http.StatusConflict, "booking already confirmed", nil)
			return
		}
		log.Warn("booking: submission in flight", slog.String("session_id", current.ID))
		transport.WriteError(w, http.StatusConflict, "a submission is already in progress", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	result, err := s.Upstream.Book(ctx, upstream.BookingRequest{
		Start:   snap.SelectedSlot.Start,
		End:     snap.SelectedSlot.End,
		Name:    snap.Contact.FullName,
		Phone:   snap.Contact.Phone,
		Email:   snap.Contact.Email,
		Address: snap.Contact.StreetAddress,
		Notes:   bookingNotes(snap),
	})
	if err != nil {
		msg, status := submitFailure(err)
		session.FailSubmit(msg, time.Now())
		log.Warn("booking: failed",
			slog.String("session_id", snap.ID),
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
		transport.WriteError(w, status, msg, nil)
		return
	}

	session.CompleteSubmit(result.HTMLLink, time.Now())
	log.Info("booking: confirmed",
		slog.String("session_id", snap.ID),
		slog.String("date", snap.SelectedDate),
		slog.String("slot", snap.SelectedSlot.Label),
	)
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"session": session.Snapshot(),
	})
}

// bookingGaps checks wizard completeness and names each missing piece.
func bookingGaps(snap wizard.Snapshot) map[string]string {
	details := make(map[string]string)
	if snap.Contact.FullName == "" {
		details["fullName"] = "required"
	}
	if snap.Contact.Email == "" {
		details["email"] = "required"
	}
	if snap.Contact.Phone == "" {
		details["phone"] = "required"
	}
	if snap.Contact.StreetAddress == "" {
		details["streetAddress"] = "required"
	}
	if !snap.Contact.AgreementChecked {
		details["agreementChecked"] = "required"
	}
	if snap.SelectedSlot == nil {
		details["slot"] = "required"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// bookingNotes folds the priced selection and step-3 preferences into the
// free-text notes field the dispatch backend expects.
func bookingNotes(snap wizard.Snapshot) string {
	var b strings.Builder

	if q, err := pricing.Compute(snap.Selection); err == nil {
		for _, item := range q.Items {
			fmt.Fprintf(&b, "%s: $%s\n", item.Label, item.Amount)
		}
		fmt.Fprintf(&b, "Subtotal: $%s\n", q.Subtotal)
		for _, tl := range q.TaxLines {
			fmt.Fprintf(&b, "%s: $%s\n", tl.Label, tl.Amount)
		}
		fmt.Fprintf(&b, "Total: $%s\n", q.Total)
	}

	if snap.Contact.LanguagePreference != "" {
		fmt.Fprintf(&b, "Language: %s\n", snap.Contact.LanguagePreference)
	}
	if snap.Contact.SpecialRequest != "" && snap.Contact.SpecialRequest != "none" {
		fmt.Fprintf(&b, "Special request: %s\n", snap.Contact.SpecialRequest)
	}
	if snap.Contact.Notes != "" {
		fmt.Fprintf(&b, "Customer notes: %s\n", snap.Contact.Notes)
	}
	return strings.TrimRight(b.String(), "\n")
}

// submitFailure maps the upstream failure taxonomy to a display message and
// the status to mirror. The slot conflict keeps its distinct message.
func submitFailure(err error) (string, int) {
	if errors.Is(err, upstream.ErrSlotTaken) {
		return slotTakenMessage, http.StatusConflict
	}

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.Message != "" {
			return fmt.Sprintf("Booking failed: %s", statusErr.Message), statusErr.Status
		}
		return fmt.Sprintf("Booking failed (status %d). Please try again.", statusErr.Status), statusErr.Status
	}
	return "Booking failed. Please check your connection and try again.", http.StatusBadGateway
}
