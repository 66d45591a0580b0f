package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestUserStats_AggregatesRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/repos" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != "SkillChain-App" {
			t.Fatalf("missing user agent")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"size": 120, "language": "Go"},
			{"size": 80, "language": "TypeScript"},
			{"size": 40, "language": "Go"},
			{"size": 10, "language": null}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	stats, err := c.UserStats(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if stats.Repos != 4 {
		t.Fatalf("expected 4 repos, got %d", stats.Repos)
	}
	if stats.Commits != 250 {
		t.Fatalf("expected commits 250, got %d", stats.Commits)
	}
	if !reflect.DeepEqual(stats.Languages, []string{"Go", "TypeScript"}) {
		t.Fatalf("unexpected languages: %v", stats.Languages)
	}
}

func TestUserStats_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, err := c.UserStats(context.Background(), "octocat"); err == nil {
		t.Fatalf("expected error on non-2xx status")
	}
}

func TestUserStats_EmptyLogin(t *testing.T) {
	c := NewClient("https://api.github.com", nil)
	if _, err := c.UserStats(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty login")
	}
}
