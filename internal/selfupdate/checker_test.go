package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func releaseServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/quizflow/releases/latest" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheckReportsUpdateAvailable(t *testing.T) {
	server := releaseServer(t, http.StatusOK,
		`{"tag_name":"v1.4.0","html_url":"https://example.com/v1.4.0"}`)
	checker := NewChecker(WithBaseURL(server.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.2.3"})
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !result.UpdateAvailable {
		t.Error("expected update to be available")
	}
	if result.LatestVersion != "v1.4.0" {
		t.Errorf("latest = %q, want v1.4.0", result.LatestVersion)
	}
	if result.CurrentVersion != "v1.2.3" {
		t.Errorf("current = %q, want v1.2.3", result.CurrentVersion)
	}
	if result.ReleaseURL != "https://example.com/v1.4.0" {
		t.Errorf("release URL = %q", result.ReleaseURL)
	}
}

func TestCheckAlreadyLatest(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
	}{
		{"same version", "v1.4.0", "v1.4.0"},
		{"ahead of release", "v1.5.0", "v1.4.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, http.StatusOK,
				fmt.Sprintf(`{"tag_name":%q}`, tt.latest))
			checker := NewChecker(WithBaseURL(server.URL))

			result, err := checker.Check(context.Background(), &CheckInput{Version: tt.current})
			if err != nil {
				t.Fatalf("check: %v", err)
			}
			if result.UpdateAvailable {
				t.Error("expected no update")
			}
		})
	}
}

func TestCheckDevBuild(t *testing.T) {
	checker := NewChecker()
	for _, v := range []string{"(devel)", "", "not-a-version"} {
		_, err := checker.Check(context.Background(), &CheckInput{Version: v})
		if !errors.Is(err, ErrDevBuild) {
			t.Errorf("version %q: expected ErrDevBuild, got %v", v, err)
		}
	}
}

func TestCheckNoRelease(t *testing.T) {
	server := releaseServer(t, http.StatusNotFound, `{"message":"Not Found"}`)
	checker := NewChecker(WithBaseURL(server.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	if !errors.Is(err, ErrNoRelease) {
		t.Fatalf("expected ErrNoRelease, got %v", err)
	}
}

func TestCheckDraftRelease(t *testing.T) {
	server := releaseServer(t, http.StatusOK, `{"tag_name":"v2.0.0","draft":true}`)
	checker := NewChecker(WithBaseURL(server.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	if !errors.Is(err, ErrNoRelease) {
		t.Fatalf("expected ErrNoRelease, got %v", err)
	}
}

func TestCheckServerError(t *testing.T) {
	server := releaseServer(t, http.StatusInternalServerError, `boom`)
	checker := NewChecker(WithBaseURL(server.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.2.3", "v1.2.3"},
		{"v1.2.3", "v1.2.3"},
		{"v1.2", "v1.2.0"},
		{"(devel)", ""},
		{"", ""},
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := canonicalVersion(tt.in); got != tt.want {
			t.Errorf("canonicalVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
