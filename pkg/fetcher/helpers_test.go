package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
)

type mockPrinter struct {
	lines []string
}

func (mp *mockPrinter) Printf(format string, a ...any) (n int, err error) {
	str := fmt.Sprintf(format, a...)
	mp.lines = append(mp.lines, strings.TrimSuffix(str, "\n"))
	return len(str), nil
}

// mockGetter serves bodies by URL, anything missing fails like a dead host.
type mockGetter struct {
	mu     sync.Mutex
	bodies map[string][]byte
	errs   map[string]error
	calls  []string
}

func newMockGetter() *mockGetter {
	return &mockGetter{bodies: map[string][]byte{}, errs: map[string]error{}}
}

func (g *mockGetter) Get(ctx context.Context, url, dst string) (int64, error) {
	g.mu.Lock()
	g.calls = append(g.calls, url)
	body, ok := g.bodies[url]
	err := g.errs[url]
	g.mu.Unlock()

	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.New("connection refused")
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return 0, err
	}
	return int64(len(body)), nil
}

// blockingGetter waits for the step context to end.
type blockingGetter struct{}

func (blockingGetter) Get(ctx context.Context, _, _ string) (int64, error) {
	<-ctx.Done()
	return 0, ctx.Err()
}

// imageServer answers /<n> with the bytes in bodies and 404 otherwise.
func imageServer(t *testing.T, bodies map[string]string) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		body, ok := bodies[r.URL.Path]
		mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", fmt.Sprint(len(body)))
		if r.Method == http.MethodHead {
			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func readStore(t *testing.T, s *Store, name string) string {
	t.Helper()
	f, err := s.fs.Open(name)
	if err != nil {
		t.Fatalf("open %s: %v", name, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(b)
}
