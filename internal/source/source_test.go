package source

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/five82/liftbook/internal/program"
)

const minimalDoc = `{"name":"Plan","days":[{"id":"day1","name":"Day 1","exercises":[]}]}`

func TestParseBaseURL_Normalizes(t *testing.T) {
	u, err := parseBaseURL("example.com/site?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Path != "/site/" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
	if _, err := parseBaseURL("   "); err == nil {
		t.Fatal("parseBaseURL(blank) returned nil error")
	}
}

func TestHTTPSource_FetchesUnderPrefix(t *testing.T) {
	t.Parallel()

	var gotPath, gotAccept, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/site/data/good.json":
			_, _ = w.Write([]byte(minimalDoc))
		case "/site/data/broken.json":
			_, _ = w.Write([]byte(`{"name":`))
		case "/site/data/shapeless.json":
			_, _ = w.Write([]byte(`{"name":"x","days":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	src, err := NewHTTP(server.URL+"/site", time.Second)
	if err != nil {
		t.Fatalf("NewHTTP returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	doc, err := src.FetchProgram(ctx, "good")
	if err != nil {
		t.Fatalf("FetchProgram returned error: %v", err)
	}
	if doc.Name != "Plan" || len(doc.Days) != 1 {
		t.Fatalf("doc = %#v", doc)
	}
	if gotPath != "/site/data/good.json" {
		t.Fatalf("path = %q, want /site/data/good.json", gotPath)
	}
	if gotAccept != "application/json" || gotUserAgent != defaultUserAgent {
		t.Fatalf("headers = %q / %q", gotAccept, gotUserAgent)
	}

	_, err = src.FetchProgram(ctx, "missing")
	if !IsFetch(err) {
		t.Fatalf("missing: err = %v, want fetch failure", err)
	}

	_, err = src.FetchProgram(ctx, "broken")
	if !IsParse(err) {
		t.Fatalf("broken: err = %v, want parse failure", err)
	}

	_, err = src.FetchProgram(ctx, "shapeless")
	if !IsParse(err) || !errors.Is(err, program.ErrInvalid) {
		t.Fatalf("shapeless: err = %v, want parse failure wrapping ErrInvalid", err)
	}
}

func TestHTTPSource_RejectsInvalidIDWithoutRequest(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)

	src, err := NewHTTP(server.URL, 0)
	if err != nil {
		t.Fatalf("NewHTTP returned error: %v", err)
	}
	_, err = src.FetchProgram(context.Background(), "../secret")
	if !IsFetch(err) {
		t.Fatalf("err = %v, want fetch failure", err)
	}
	if called {
		t.Fatal("server should not be contacted for an invalid id")
	}
}

func TestDirSource_JSONThenYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"data/alpha.json": {Data: []byte(minimalDoc)},
		"data/beta.yml":   {Data: []byte("name: Beta\ndays:\n  - id: d1\n    name: One\n")},
		"data/bad.yaml":   {Data: []byte("name: [unclosed\n")},
	}
	src := NewFS(fsys)
	ctx := context.Background()

	doc, err := src.FetchProgram(ctx, "alpha")
	if err != nil || doc.Name != "Plan" {
		t.Fatalf("alpha: doc=%#v err=%v", doc, err)
	}

	doc, err = src.FetchProgram(ctx, "beta")
	if err != nil || doc.Name != "Beta" || doc.Days[0].ID != "d1" {
		t.Fatalf("beta: doc=%#v err=%v", doc, err)
	}

	_, err = src.FetchProgram(ctx, "bad")
	if !IsParse(err) {
		t.Fatalf("bad: err = %v, want parse failure", err)
	}

	_, err = src.FetchProgram(ctx, "gone")
	if !IsFetch(err) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("gone: err = %v, want fetch failure wrapping ErrNotExist", err)
	}
}

func TestDirSource_CancelledContext(t *testing.T) {
	src := NewFS(fstest.MapFS{"data/alpha.json": {Data: []byte(minimalDoc)}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := src.FetchProgram(ctx, "alpha"); !IsFetch(err) {
		t.Fatalf("err = %v, want fetch failure", err)
	}
}

func TestNewDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "data", "plan.json"), []byte(minimalDoc), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	src, err := NewDir(root)
	if err != nil {
		t.Fatalf("NewDir returned error: %v", err)
	}
	if _, err := src.FetchProgram(context.Background(), "plan"); err != nil {
		t.Fatalf("FetchProgram returned error: %v", err)
	}

	if _, err := NewDir(filepath.Join(root, "data", "plan.json")); err == nil {
		t.Fatal("NewDir on a file returned nil error")
	}
	if _, err := NewDir(filepath.Join(root, "nope")); err == nil {
		t.Fatal("NewDir on a missing path returned nil error")
	}
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Kind: KindParse, ProgramID: "x", Err: errors.New("boom")}
	if err.Error() != `parse program "x": boom` {
		t.Fatalf("Error() = %q", err.Error())
	}
	if IsFetch(err) || !IsParse(err) {
		t.Fatal("kind helpers mismatch")
	}
	if IsParse(errors.New("plain")) {
		t.Fatal("IsParse(plain) = true")
	}
}
