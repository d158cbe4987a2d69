package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/SnowS2471/BettaFish/internal/depcheck"
	"github.com/SnowS2471/BettaFish/internal/platform"
)

// ---- test helpers ----

type fakeHandle struct{}

func (fakeHandle) VersionFunc(string) (func() int, error) {
	return func() int { return 15005 }, nil
}
func (fakeHandle) Close() error { return nil }

type fakeLoader struct {
	errs map[string]error
}

func (f *fakeLoader) Load(name string) (depcheck.Handle, error) {
	if err, ok := f.errs[name]; ok {
		return nil, &depcheck.LoadError{Library: name, Err: err}
	}
	return fakeHandle{}, nil
}

func setupServer(t *testing.T, loader depcheck.NativeLoader) *httptest.Server {
	t.Helper()
	chk := &depcheck.Checker{
		Loader:   loader,
		Renderer: func() error { return nil },
		Platform: platform.Linux,
	}
	srv := NewServer(zap.NewNop(), chk)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

type depsResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
	Platform  string `json:"platform"`
	Libraries []struct {
		Name   string `json:"name"`
		Loaded bool   `json:"loaded"`
		Error  string `json:"error"`
	} `json:"libraries"`
}

// ---- tests ----

func TestHealthz(t *testing.T) {
	ts := setupServer(t, &fakeLoader{})
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Fatalf("want ok body, got %q", body)
	}
}

func TestDependencies_AllAvailable(t *testing.T) {
	ts := setupServer(t, &fakeLoader{})
	resp, err := http.Get(ts.URL + "/api/dependencies")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}

	var got depsResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Available || got.Message == "" {
		t.Fatalf("want available with message, got %+v", got)
	}
	if got.Platform != "linux" {
		t.Fatalf("want linux platform, got %q", got.Platform)
	}
	if len(got.Libraries) != 3 {
		t.Fatalf("want 3 libraries, got %+v", got.Libraries)
	}
	for _, l := range got.Libraries {
		if !l.Loaded {
			t.Fatalf("expected every library loaded: %+v", l)
		}
	}
}

func TestDependencies_PangoMissing(t *testing.T) {
	loader := &fakeLoader{errs: map[string]error{
		"libpango-1.0.so.0": errors.New("libpango-1.0.so.0: cannot open shared object file"),
	}}
	ts := setupServer(t, loader)
	resp, err := http.Get(ts.URL + "/api/dependencies")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	var got depsResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Available {
		t.Fatalf("want unavailable, got %+v", got)
	}
	if got.Message == "" {
		t.Fatalf("want remediation message")
	}
	var sawFailure bool
	for _, l := range got.Libraries {
		if l.Name == "libpango-1.0.so.0" {
			if l.Loaded || l.Error == "" {
				t.Fatalf("pango status wrong: %+v", l)
			}
			sawFailure = true
		}
	}
	if !sawFailure {
		t.Fatalf("pango missing from library detail: %+v", got.Libraries)
	}
}
