// Package wizard owns the server-side state of one booking flow: the
// customer's selections, the availability fetch state machine, and the
// submission state machine. All updates go through setters that replace the
// affected sub-object wholesale; nothing is mutated in place by callers.
package wizard

import (
	"sync"
	"time"

	"cleanair-backend/internal/pricing"
	"cleanair-backend/internal/schedule"
)

type FetchState string

const (
	FetchIdle    FetchState = "idle"
	FetchLoading FetchState = "loading"
	FetchLoaded  FetchState = "loaded"
	FetchError   FetchState = "error"
)

type SubmitState string

const (
	SubmitIdle    SubmitState = "idle"
	SubmitLoading SubmitState = "loading"
	SubmitDone    SubmitState = "done"
	SubmitError   SubmitState = "error"
)

// Contact is the step-3 customer data.
type Contact struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	StreetAddress      string `json:"streetAddress"`
	Notes              string `json:"notes"`
	LanguagePreference string `json:"languagePreference"`
	SpecialRequest     string `json:"specialRequest"`
	AgreementChecked   bool   `json:"agreementChecked"`
}

// Availability is the fetch state machine. Loading is entered exactly once
// per generation; a terminal state sticks until an explicit Reset.
type Availability struct {
	State   FetchState     `json:"state"`
	Days    []schedule.Day `json:"days,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Booking is the submission state machine.
type Booking struct {
	State    SubmitState `json:"state"`
	HTMLLink string      `json:"htmlLink,omitempty"`
	Message  string      `json:"message,omitempty"`
}

type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time
	updatedAt time.Time

	selection pricing.Selection
	contact   Contact

	selectedDate string
	selectedSlot *schedule.MergedSlot

	availability Availability
	fetchGen     int

	booking Booking
}

// Snapshot is an immutable copy handed to the HTTP layer.
type Snapshot struct {
	ID           string               `json:"id"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Selection    pricing.Selection    `json:"selection"`
	Contact      Contact              `json:"contact"`
	SelectedDate string               `json:"selectedDate,omitempty"`
	SelectedSlot *schedule.MergedSlot `json:"selectedSlot,omitempty"`
	Availability Availability         `json:"availability"`
	Booking      Booking              `json:"booking"`
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		id:           id,
		createdAt:    now,
		updatedAt:    now,
		availability: Availability{State: FetchIdle},
		booking:      Booking{State: SubmitIdle},
	}
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:           s.id,
		CreatedAt:    s.createdAt,
		UpdatedAt:    s.updatedAt,
		Selection:    s.selection,
		Contact:      s.contact,
		SelectedDate: s.selectedDate,
		Availability: s.availability,
		Booking:      s.booking,
	}
	if s.selectedSlot != nil {
		slot := *s.selectedSlot
		snap.SelectedSlot = &slot
	}
	return snap
}

// SetSelection replaces the pricing selection and contact data wholesale.
// Ignored once a submission has succeeded.
func (s *Session) SetSelection(sel pricing.Selection, contact Contact, now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.booking.State != SubmitDone {
		s.selection = sel
		s.contact = contact
		s.updatedAt = now
	}
	return s.snapshotLocked()
}

// SetSlot records the chosen arrival window. A nil slot clears the choice.
func (s *Session) SetSlot(date string, slot *schedule.MergedSlot, now time.Time) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.booking.State != SubmitDone {
		s.selectedDate = date
		if slot != nil {
			copied := *slot
			s.selectedSlot = &copied
		} else {
			s.selectedSlot = nil
		}
		s.updatedAt = now
	}
	return s.snapshotLocked()
}

// BeginFetch transitions idle -> loading and hands back the generation token
// the completion must present. Any other state refuses the transition, which
// is what makes the fetch one-shot: loaded and error both stick.
func (s *Session) BeginFetch(now time.Time) (gen int, started bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.availability.State != FetchIdle {
		return 0, false
	}
	s.fetchGen++
	s.availability = Availability{State: FetchLoading}
	s.updatedAt = now
	return s.fetchGen, true
}

// CompleteFetch stores the merged days. A response carrying a stale
// generation token is discarded, never merged into current state.
func (s *Session) CompleteFetch(gen int, days []schedule.Day, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.fetchGen || s.availability.State != FetchLoading {
		return false
	}
	s.availability = Availability{State: FetchLoaded, Days: days}
	s.updatedAt = now
	return true
}

// FailFetch records the display message for a failed fetch. Stale results
// are discarded the same way as in CompleteFetch.
func (s *Session) FailFetch(gen int, message string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.fetchGen || s.availability.State != FetchLoading {
		return false
	}
	s.availability = Availability{State: FetchError, Message: message}
	s.updatedAt = now
	return true
}

// ResetAvailability returns the machine to idle and invalidates any in-flight
// fetch by bumping the generation. This is the only re-fetch path.
func (s *Session) ResetAvailability(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchGen++
	s.availability = Availability{State: FetchIdle}
	s.selectedDate = ""
	s.selectedSlot = nil
	s.updatedAt = now
}

// BeginSubmit guards the single-submission ordering rule: no new submission
// while one is in flight or after one has succeeded. A failed submission
// leaves the wizard editable, so idle and error both permit a new attempt.
func (s *Session) BeginSubmit(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.booking.State == SubmitLoading || s.booking.State == SubmitDone {
		return false
	}
	s.booking = Booking{State: SubmitLoading}
	s.updatedAt = now
	return true
}

func (s *Session) CompleteSubmit(htmlLink string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking = Booking{State: SubmitDone, HTMLLink: htmlLink}
	s.updatedAt = now
}

// FailSubmit stores the user-facing message. Collected wizard data is left
// untouched so the customer can fix the problem and resubmit.
func (s *Session) FailSubmit(message string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking = Booking{State: SubmitError, Message: message}
	s.updatedAt = now
}
