package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, baseURL string) Searcher {
	t.Helper()
	t.Setenv("PLACES_BASE_URL", baseURL)
	t.Setenv("PLACES_TIMEOUT_SECONDS", "1")
	return NewClient(newTestLogger(t))
}

func TestSearchDecodesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "yoga,Mumbai" {
			t.Errorf("query: want=%q got=%q", "yoga,Mumbai", got)
		}
		if got := r.URL.Query().Get("limit"); got != "3" {
			t.Errorf("limit: want=3 got=%q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "MentalWellnessApp/2.0" {
			t.Errorf("user agent: got=%q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Lotus Shala"},{"display_name":"Peace Center, MG Road, Bengaluru"}]`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	results, err := client.Search(context.Background(), "yoga", "Mumbai")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results: want=2 got=%d", len(results))
	}
	if results[0].Label() != "Lotus Shala" {
		t.Fatalf("label: got=%q", results[0].Label())
	}
	if results[1].Label() != "Peace Center" {
		t.Fatalf("display_name fallback label: got=%q", results[1].Label())
	}
}

func TestSearchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Search(context.Background(), "gym", "Pune")

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *places.Error, got %T: %v", err, err)
	}
	if perr.Kind != KindStatus {
		t.Fatalf("kind: want=%q got=%q", KindStatus, perr.Kind)
	}
	if perr.Status != http.StatusTooManyRequests {
		t.Fatalf("status: want=429 got=%d", perr.Status)
	}
}

func TestSearchMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Search(context.Background(), "gym", "Pune")

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *places.Error, got %T: %v", err, err)
	}
	if perr.Kind != KindDecode {
		t.Fatalf("kind: want=%q got=%q", KindDecode, perr.Kind)
	}
}

func TestSearchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Search(context.Background(), "gym", "Pune")

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *places.Error, got %T: %v", err, err)
	}
	if perr.Kind != KindTimeoutOrNetwork {
		t.Fatalf("kind: want=%q got=%q", KindTimeoutOrNetwork, perr.Kind)
	}
}

func TestPlaceLabelFallsBackToFirstSegment(t *testing.T) {
	cases := []struct {
		place Place
		want  string
	}{
		{Place{Name: "Iron Temple Gym"}, "Iron Temple Gym"},
		{Place{DisplayName: "City Gym, FC Road, Pune, India"}, "City Gym"},
		{Place{Name: "", DisplayName: "Solo Name"}, "Solo Name"},
		{Place{}, ""},
	}
	for _, tc := range cases {
		if got := tc.place.Label(); got != tc.want {
			t.Fatalf("Label(%+v): want=%q got=%q", tc.place, tc.want, got)
		}
	}
}
