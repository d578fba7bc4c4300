package wizard

import (
	"testing"
	"time"

	"cleanair-backend/internal/pricing"
	"cleanair-backend/internal/schedule"
)

func TestFetchIsOneShot(t *testing.T) {
	now := time.Now()
	s := newSession("s1", now)

	gen, started := s.BeginFetch(now)
	if !started {
		t.Fatal("first BeginFetch must start")
	}
	if _, started := s.BeginFetch(now); started {
		t.Fatal("BeginFetch must refuse while loading")
	}

	days := []schedule.Day{{Date: "2026-03-06", Slots: []schedule.MergedSlot{{Label: "8:00 AM"}}}}
	if !s.CompleteFetch(gen, days, now) {
		t.Fatal("CompleteFetch with current generation must apply")
	}
	if snap := s.Snapshot(); snap.Availability.State != FetchLoaded || len(snap.Availability.Days) != 1 {
		t.Fatalf("unexpected availability: %+v", snap.Availability)
	}

	// Loaded sticks: no second fetch without an explicit reset.
	if _, started := s.BeginFetch(now); started {
		t.Fatal("BeginFetch must refuse once loaded")
	}
}

func TestFetchErrorSticks(t *testing.T) {
	now := time.Now()
	s := newSession("s1", now)

	gen, _ := s.BeginFetch(now)
	if !s.FailFetch(gen, "Could not load availability", now) {
		t.Fatal("FailFetch with current generation must apply")
	}
	if snap := s.Snapshot(); snap.Availability.State != FetchError || snap.Availability.Message == "" {
		t.Fatalf("unexpected availability: %+v", snap.Availability)
	}
	if _, started := s.BeginFetch(now); started {
		t.Fatal("BeginFetch must refuse after an error")
	}
}

func TestStaleFetchResultDiscarded(t *testing.T) {
	now := time.Now()
	s := newSession("s1", now)

	gen, _ := s.BeginFetch(now)
	s.ResetAvailability(now)

	days := []schedule.Day{{Date: "2026-03-06"}}
	if s.CompleteFetch(gen, days, now) {
		t.Fatal("stale completion must be discarded")
	}
	if s.FailFetch(gen, "late error", now) {
		t.Fatal("stale failure must be discarded")
	}
	if snap := s.Snapshot(); snap.Availability.State != FetchIdle {
		t.Fatalf("expected idle after reset, got %s", snap.Availability.State)
	}

	// The reset re-arms the machine for a fresh fetch.
	if _, started := s.BeginFetch(now); !started {
		t.Fatal("BeginFetch must start again after reset")
	}
}

func TestResetClearsSelectedSlot(t *testing.T) {
	now := time.Now()
	s := newSession("s1", now)

	slot := &schedule.MergedSlot{Label: "8:00 AM"}
	s.SetSlot("2026-03-06", slot, now)
	if snap := s.Snapshot(); snap.SelectedSlot == nil {
		t.Fatal("slot not recorded")
	}

	s.ResetAvailability(now)
	if snap := s.Snapshot(); snap.SelectedSlot != nil || snap.SelectedDate != "" {
		t.Fatal("reset must clear the chosen slot")
	}
}

func TestSubmitGuards(t *testing.T) {
	now := time.Now()
	s := newSession("s1", now)

	if !s.BeginSubmit(now) {
		t.Fatal("first BeginSubmit must start")
	}
	if s.BeginSubmit(now) {
		t.Fatal("BeginSubmit must refuse while a submission is in flight")
	}

	s.FailSubmit("calendar offline", now)
	if snap := s.Snapshot(); snap.Booking.State != SubmitError {
		t.Fatalf("unexpected booking state: %s", snap.Booking.State)
	}
	if !s.BeginSubmit(now) {
		t.Fatal("a failed submission must allow a retry")
	}

	s.CompleteSubmit("https://calendar.example/evt/1", now)
	if s.BeginSubmit(now) {
		t.Fatal("BeginSubmit must refuse after success")
	}
}

func TestSelectionFrozenAfterSuccess(t *testing.T) {
	now := time.Now()
	s := newSession("s1", now)

	s.SetSelection(pricing.Selection{CategoryID: "central-air", PackageID: "base"}, Contact{FullName: "Ada"}, now)
	s.CompleteSubmit("link", now)

	snap := s.SetSelection(pricing.Selection{CategoryID: "wall-unit"}, Contact{FullName: "Bob"}, now)
	if snap.Selection.CategoryID != "central-air" || snap.Contact.FullName != "Ada" {
		t.Fatalf("selection changed after a confirmed booking: %+v", snap.Selection)
	}

	snap = s.SetSlot("2026-03-07", &schedule.MergedSlot{Label: "9:00 AM"}, now)
	if snap.SelectedSlot != nil {
		t.Fatal("slot changed after a confirmed booking")
	}
}

func TestStoreExpiry(t *testing.T) {
	st := NewStore(time.Hour)
	now := time.Now()

	s := st.Create(now)
	if _, ok := st.Get(s.id, now.Add(30*time.Minute)); !ok {
		t.Fatal("session must survive within the TTL")
	}
	if _, ok := st.Get(s.id, now.Add(2*time.Hour)); ok {
		t.Fatal("session must expire past the TTL")
	}
	if st.Len() != 0 {
		t.Fatalf("expired session still stored: len=%d", st.Len())
	}
}

func TestStoreSweep(t *testing.T) {
	st := NewStore(time.Hour)
	now := time.Now()

	st.Create(now)
	fresh := st.Create(now)
	fresh.SetSelection(pricing.Selection{}, Contact{}, now.Add(90*time.Minute))

	removed := st.Sweep(now.Add(2 * time.Hour))
	if removed != 1 {
		t.Fatalf("Sweep removed %d, want 1", removed)
	}
	if st.Len() != 1 {
		t.Fatalf("len = %d, want 1", st.Len())
	}
}
