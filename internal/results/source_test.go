package results

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsRemote(t *testing.T) {
	cases := map[string]bool{
		"http://example.org/results.js":  true,
		" HTTPS://example.org/r.json ":   true,
		"/tmp/results.js":                false,
		"results.js":                     false,
		"ftp://example.org/results.json": false,
	}
	for in, want := range cases {
		if got := IsRemote(in); got != want {
			t.Fatalf("IsRemote(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFetch_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.js")
	if err := os.WriteFile(path, []byte(`let results = [{"seq_id": "a", "seq": "MKL"}];`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	records, err := NewSource().Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(records) != 1 || records[0].ID != "a" {
		t.Fatalf("records = %#v, want one record with id a", records)
	}
}

func TestFetch_LocalErrors(t *testing.T) {
	dir := t.TempDir()
	src := NewSource()

	if _, err := src.Fetch(context.Background(), filepath.Join(dir, "missing.js")); err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("Fetch missing error = %v, want does not exist", err)
	}
	if _, err := src.Fetch(context.Background(), dir); err == nil || !strings.Contains(err.Error(), "directory") {
		t.Fatalf("Fetch dir error = %v, want directory error", err)
	}
	if _, err := src.Fetch(context.Background(), "  "); err == nil {
		t.Fatalf("Fetch blank returned nil error, want error")
	}
}

func TestFetch_Remote(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Path != "/out/results.js" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`let results = [{"seq_id": "x", "seq": "AAAA"}, {"seq_id": "y", "seq": "CCCC"}];`))
	}))
	defer srv.Close()

	records, err := NewSource().Fetch(context.Background(), srv.URL+"/out/results.js")
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(records) != 2 || records[1].ID != "y" {
		t.Fatalf("records = %#v, want x,y", records)
	}
	if gotUA != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUA, defaultUserAgent)
	}
}

func TestFetch_RemoteStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewSource().Fetch(context.Background(), srv.URL+"/results.js")
	if err == nil || !strings.Contains(err.Error(), "status 500") {
		t.Fatalf("Fetch error = %v, want status 500", err)
	}
}

func TestFetch_RemoteHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewSource().Fetch(ctx, srv.URL); err == nil {
		t.Fatalf("Fetch with cancelled context returned nil error")
	}
}

func TestFetch_NilSource(t *testing.T) {
	var s *Source
	if _, err := s.Fetch(context.Background(), "results.js"); err == nil {
		t.Fatalf("Fetch on nil source returned nil error")
	}
}
