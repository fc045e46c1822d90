package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const searchBody = `{
	"items": [
		{"id": {"videoId": "good1"}},
		{"id": {"videoId": "weak1"}}
	]
}`

const videosBody = `{
	"items": [
		{
			"id": "good1",
			"snippet": {
				"title": "photosynthesis class 9 10 explanation by vedantu",
				"description": "full chapter solved examples",
				"channelTitle": "Vedantu"
			},
			"contentDetails": {"duration": "PT10M"},
			"statistics": {"viewCount": "250000"}
		},
		{
			"id": "weak1",
			"snippet": {
				"title": "random clip",
				"description": "",
				"channelTitle": "Someone"
			},
			"contentDetails": {"duration": "PT1M"},
			"statistics": {"viewCount": "12"}
		}
	]
}`

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL), WithRetryDelay(time.Millisecond))
}

func apiHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want %q", got, "test-key")
		}
		switch r.URL.Path {
		case "/search":
			q := r.URL.Query()
			if q.Get("safeSearch") != "strict" || q.Get("videoDuration") != "medium" {
				t.Errorf("unexpected search params: %v", q)
			}
			fmt.Fprint(w, searchBody)
		case "/videos":
			if !strings.Contains(r.URL.Query().Get("id"), "good1") {
				t.Errorf("videos call missing searched id: %v", r.URL.Query())
			}
			fmt.Fprint(w, videosBody)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}
}

func TestFindBestVideo(t *testing.T) {
	c := newTestServer(t, apiHandler(t))

	best, err := c.FindBestVideo(context.Background(), "photosynthesis", "intermediate", "cbse")
	if err != nil {
		t.Fatalf("FindBestVideo: %v", err)
	}
	if best == nil {
		t.Fatal("expected a candidate")
	}
	if best.ID != "good1" {
		t.Errorf("selected %q, want %q", best.ID, "good1")
	}
	if best.Views != 250000 {
		t.Errorf("Views = %d, want 250000", best.Views)
	}
	if best.Duration != 600 {
		t.Errorf("Duration = %d, want 600", best.Duration)
	}
	if best.Score < 10.0 {
		t.Errorf("Score = %.2f, want at least the selection threshold", best.Score)
	}
	if want := "https://www.youtube.com/watch?v=good1"; best.URL() != want {
		t.Errorf("URL = %q, want %q", best.URL(), want)
	}
}

func TestFindBestVideoNoResults(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"items": []}`)
	})

	best, err := c.FindBestVideo(context.Background(), "photosynthesis", "middle", "cbse")
	if err != nil {
		t.Fatalf("FindBestVideo: %v", err)
	}
	if best != nil {
		t.Errorf("expected no candidate, got %+v", best)
	}
}

func TestFindBestVideoTerminalErrors(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrQuotaExceeded},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			calls := 0
			c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			})

			_, err := c.FindBestVideo(context.Background(), "photosynthesis", "middle", "cbse")
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if calls != 1 {
				t.Errorf("terminal status retried %d times", calls)
			}
		})
	}
}

func TestFindBestVideoRetriesTransientFailures(t *testing.T) {
	calls := 0
	api := apiHandler(t)
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/search" {
			calls++
			if calls < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		api(w, r)
	})

	best, err := c.FindBestVideo(context.Background(), "photosynthesis", "intermediate", "cbse")
	if err != nil {
		t.Fatalf("FindBestVideo: %v", err)
	}
	if best == nil || best.ID != "good1" {
		t.Fatalf("selected %+v, want candidate %q", best, "good1")
	}
	if calls != 3 {
		t.Errorf("search called %d times, want 3", calls)
	}
}

func TestFindBestVideoGivesUpAfterRetries(t *testing.T) {
	calls := 0
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FindBestVideo(context.Background(), "photosynthesis", "middle", "cbse")
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 3 {
		t.Errorf("search called %d times, want 3", calls)
	}
}

func TestFindBestVideoHonorsContext(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	c.retryDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.FindBestVideo(ctx, "photosynthesis", "middle", "cbse")
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("FindBestVideo did not return after cancellation")
	}
}
