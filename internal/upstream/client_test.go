package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClientUnconfigured(t *testing.T) {
	if c := NewClient("", "secret"); c != nil {
		t.Fatal("expected nil client without a base URL")
	}
	if c := NewClient("http://localhost", "  "); c != nil {
		t.Fatal("expected nil client without a secret")
	}
}

func TestFetchAvailabilitySendsSecret(t *testing.T) {
	var gotSecret, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-API-SECRET")
		gotPath = r.URL.Path

		var req AvailabilityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Start != "2026-03-06" {
			t.Errorf("request start = %q", req.Start)
		}

		json.NewEncoder(w).Encode(availabilityResponse{Days: []RawDay{{Date: "2026-03-06"}}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "hunter2")
	days, err := c.FetchAvailability(context.Background(), AvailabilityRequest{
		Start: "2026-03-06", End: "2026-04-15", WorkStart: "08:00", WorkEnd: "17:00", SlotStepMinutes: 60,
	})
	if err != nil {
		t.Fatalf("FetchAvailability error: %v", err)
	}
	if gotSecret != "hunter2" {
		t.Fatalf("secret header = %q", gotSecret)
	}
	if gotPath != "/api/availability" {
		t.Fatalf("path = %q", gotPath)
	}
	if len(days) != 1 || days[0].Date != "2026-03-06" {
		t.Fatalf("unexpected days: %+v", days)
	}
}

func TestFetchAvailabilityMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s")
	days, err := c.FetchAvailability(context.Background(), AvailabilityRequest{})
	if err != nil {
		t.Fatalf("malformed 2xx body must not error, got %v", err)
	}
	if days != nil {
		t.Fatalf("expected no days, got %+v", days)
	}
}

func TestBookSlotTaken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "slot_taken"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s")
	_, err := c.Book(context.Background(), BookingRequest{Start: time.Now(), End: time.Now().Add(2 * time.Hour)})
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestBookUpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": "calendar offline"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s")
	_, err := c.Book(context.Background(), BookingRequest{})

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusBadGateway || se.Message != "calendar offline" {
		t.Fatalf("unexpected StatusError: %+v", se)
	}
}

func TestBookUnstructuredErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s")
	_, err := c.Book(context.Background(), BookingRequest{})

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Status != http.StatusInternalServerError || se.Message != "" {
		t.Fatalf("unexpected StatusError: %+v", se)
	}
}

func TestBookReturnsLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/book" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(BookingResult{HTMLLink: "https://calendar.example/evt/1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "s")
	res, err := c.Book(context.Background(), BookingRequest{})
	if err != nil {
		t.Fatalf("Book error: %v", err)
	}
	if res.HTMLLink != "https://calendar.example/evt/1" {
		t.Fatalf("unexpected link: %q", res.HTMLLink)
	}
}
