package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	clienterrors "github.com/CannonJunior/x-uav/client/internal/errors"
	"github.com/CannonJunior/x-uav/client/internal/types"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

func newTransport(t *testing.T, srv *httptest.Server, opts ...func(*Options)) *Transport {
	t.Helper()
	o := Options{HTTPClient: srv.Client(), BaseURL: srv.URL, Logger: zerolog.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	return NewTransport(o)
}

func jsonHandler(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
}

func TestCheckHealth_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/health" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		jsonHandler(http.StatusOK, map[string]string{"status": "healthy", "version": "1.0.0"})(w, r)
	}))
	defer srv.Close()
	got, err := CheckHealth(context.Background(), newTransport(t, srv))
	if err != nil || got == nil || !got.Healthy() || got.Version != "1.0.0" {
		t.Fatalf("CheckHealth unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetStats_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(jsonHandler(http.StatusOK, map[string]any{
		"total":      3,
		"by_country": []map[string]any{{"country_of_origin": "USA", "count": 3}},
	}))
	defer srv.Close()
	got, err := GetStats(context.Background(), newTransport(t, srv))
	if err != nil || got.Total != 3 || len(got.ByCountry) != 1 {
		t.Fatalf("GetStats unexpected: got=%+v err=%v", got, err)
	}
}

func TestListUAVs_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(jsonHandler(http.StatusOK, map[string]any{
		"total": 2,
		"uavs":  []map[string]any{{"designation": "MQ-9"}, {"designation": "RQ-4"}},
	}))
	defer srv.Close()
	got, err := ListUAVs(context.Background(), newTransport(t, srv))
	if err != nil || got.Total != 2 || got.UAVs[1].Designation != "RQ-4" {
		t.Fatalf("ListUAVs unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetUAV_EscapesDesignation(t *testing.T) {
	t.Parallel()
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.EscapedPath()
		jsonHandler(http.StatusOK, map[string]any{"designation": "MQ-1/B Gray", "name": "Gray Eagle"})(w, r)
	}))
	defer srv.Close()
	got, err := GetUAV(context.Background(), newTransport(t, srv), "MQ-1/B Gray")
	if err != nil || got.Name == nil || *got.Name != "Gray Eagle" {
		t.Fatalf("GetUAV unexpected: got=%+v err=%v", got, err)
	}
	if seen != "/uavs/MQ-1%2FB%20Gray" {
		t.Fatalf("designation not path-escaped: %s", seen)
	}
}

func TestGetUAV_NotFound(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(jsonHandler(http.StatusNotFound, map[string]string{"detail": "UAV not found"}))
	defer srv.Close()
	_, err := GetUAV(context.Background(), newTransport(t, srv), "XQ-58")
	var nf *clienterrors.NotFoundError
	if !errors.As(err, &nf) || nf.Key != "XQ-58" || nf.Resource != "uav" {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	var he *clienterrors.HTTPStatusError
	if !errors.As(err, &he) || he.StatusCode != http.StatusNotFound {
		t.Fatalf("NotFoundError should wrap the status error, got %v", err)
	}
}

func TestGetUAV_ServerError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(jsonHandler(http.StatusInternalServerError, map[string]string{"detail": "db down"}))
	defer srv.Close()
	_, err := GetUAV(context.Background(), newTransport(t, srv), "MQ-9")
	var he *clienterrors.HTTPStatusError
	if !errors.As(err, &he) || he.StatusCode != 500 {
		t.Fatalf("expected HTTPStatusError{500}, got %v", err)
	}
	if errors.Is(err, clienterrors.ErrNotFound) {
		t.Fatal("500 must not be reported as not found")
	}
}

func TestCollection404_IsStatusError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	_, err := ListUAVs(context.Background(), newTransport(t, srv))
	var nf *clienterrors.NotFoundError
	if errors.As(err, &nf) {
		t.Fatalf("collection 404 should not be a NotFoundError: %v", err)
	}
	var he *clienterrors.HTTPStatusError
	if !errors.As(err, &he) || he.StatusCode != http.StatusNotFound {
		t.Fatalf("expected HTTPStatusError{404}, got %v", err)
	}
}

func TestTransportError(t *testing.T) {
	t.Parallel()
	tr := NewTransport(Options{HTTPClient: &http.Client{Transport: &errRT{}}, BaseURL: "http://example.invalid", Logger: zerolog.Nop()})
	_, err := CheckHealth(context.Background(), tr)
	var te *clienterrors.TransportError
	if !errors.As(err, &te) || te.Op != "check_health" {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestConnectionRefused(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	tr := NewTransport(Options{BaseURL: url, Logger: zerolog.Nop()})
	_, err := GetStats(context.Background(), tr)
	var te *clienterrors.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := CheckHealth(ctx, newTransport(t, srv))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	var te *clienterrors.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("no request should be sent after cancellation")
	}
}

func TestDecodeError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>oops</html>")
	}))
	defer srv.Close()
	_, err := GetStats(context.Background(), newTransport(t, srv))
	var de *clienterrors.DecodeError
	if !errors.As(err, &de) || de.Op != "get_stats" {
		t.Fatalf("expected DecodeError, got %v", err)
	}
}

func TestSearchUAVs_SendsOnlySetFilters(t *testing.T) {
	t.Parallel()
	var body map[string]any
	var ctype string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/uavs/search" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		ctype = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&body)
		jsonHandler(http.StatusOK, map[string]any{"total": 0, "uavs": []any{}})(w, r)
	}))
	defer srv.Close()
	got, err := SearchUAVs(context.Background(), newTransport(t, srv), types.SearchFilters{Country: "US"})
	if err != nil || got.Total != 0 {
		t.Fatalf("SearchUAVs unexpected: got=%+v err=%v", got, err)
	}
	if len(body) != 1 || body["country"] != "US" {
		t.Fatalf("unexpected body %v", body)
	}
	if ctype == "" {
		t.Fatal("missing content type")
	}
}

func TestCompareUAVs(t *testing.T) {
	t.Parallel()
	var body types.CompareRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		jsonHandler(http.StatusOK, map[string]any{"total": 1, "uavs": []map[string]any{{"designation": "MQ-9"}}})(w, r)
	}))
	defer srv.Close()
	got, err := CompareUAVs(context.Background(), newTransport(t, srv), []string{"MQ-9", "NOPE"})
	if err != nil || got.Total != 1 {
		t.Fatalf("CompareUAVs unexpected: got=%+v err=%v", got, err)
	}
	if len(body.Designations) != 2 || body.Designations[1] != "NOPE" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestValidation_SendsNothing(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()
	tr := newTransport(t, srv)
	ctx := context.Background()
	if _, err := CompareUAVs(ctx, tr, nil); !errors.Is(err, clienterrors.ErrInvalidArgument) {
		t.Fatalf("empty compare: %v", err)
	}
	if _, err := GetUAV(ctx, tr, ""); !errors.Is(err, clienterrors.ErrInvalidArgument) {
		t.Fatalf("empty designation: %v", err)
	}
	if _, err := ListDistinctValues(ctx, tr, types.Dimension("status")); !errors.Is(err, clienterrors.ErrInvalidArgument) {
		t.Fatalf("unknown dimension: %v", err)
	}
	if _, err := ListPlatforms(ctx, tr, -1, 10); !errors.Is(err, clienterrors.ErrInvalidArgument) {
		t.Fatalf("negative skip: %v", err)
	}
	if _, err := GetNeighborhood(ctx, tr, "n1", 4); !errors.Is(err, clienterrors.ErrInvalidArgument) {
		t.Fatalf("depth: %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 0 {
		t.Fatalf("validation failures sent %d requests", n)
	}
}

func TestListDistinctValues(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/filters/countries":
			jsonHandler(http.StatusOK, []string{"China", "USA"})(w, r)
		case "/filters/types":
			_, _ = io.WriteString(w, "null")
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	tr := newTransport(t, srv)
	got, err := ListDistinctValues(context.Background(), tr, types.DimensionCountry)
	if err != nil || len(got) != 2 || got[0] != "China" {
		t.Fatalf("countries unexpected: got=%v err=%v", got, err)
	}
	got, err = ListDistinctValues(context.Background(), tr, types.DimensionType)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("null list should decode to empty: got=%v err=%v", got, err)
	}
}

func TestArmaments(t *testing.T) {
	t.Parallel()
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/armaments":
			jsonHandler(http.StatusOK, map[string]any{"total": 1, "armaments": []map[string]any{{"designation": "AGM-114"}}})(w, r)
		case "/armaments/search":
			query = r.URL.Query()
			jsonHandler(http.StatusOK, map[string]any{"total": 0, "armaments": []any{}})(w, r)
		case "/armaments/AGM-114":
			jsonHandler(http.StatusOK, map[string]any{"designation": "AGM-114", "range_km": 11})(w, r)
		case "/uavs/MQ-9/armaments":
			jsonHandler(http.StatusOK, map[string]any{"uav_designation": "MQ-9", "total": 1, "armaments": []map[string]any{{"designation": "AGM-114"}}})(w, r)
		case "/armaments/AGM-114/uavs":
			jsonHandler(http.StatusOK, map[string]any{"armament_designation": "AGM-114", "total": 1, "uavs": []map[string]any{{"designation": "MQ-9"}}})(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	tr := newTransport(t, srv)
	ctx := context.Background()

	list, err := ListArmaments(ctx, tr)
	if err != nil || list.Total != 1 {
		t.Fatalf("ListArmaments: %+v %v", list, err)
	}
	a, err := GetArmament(ctx, tr, "AGM-114")
	if err != nil || a.Designation != "AGM-114" || a.Extra["range_km"] == nil {
		t.Fatalf("GetArmament: %+v %v", a, err)
	}
	if _, err := SearchArmaments(ctx, tr, types.ArmamentSearch{WeaponType: "Missile"}); err != nil {
		t.Fatalf("SearchArmaments: %v", err)
	}
	if len(query) != 1 || query["weapon_type"][0] != "Missile" {
		t.Fatalf("unexpected query %v", query)
	}
	ua, err := GetUAVArmaments(ctx, tr, "MQ-9")
	if err != nil || ua.UAVDesignation != "MQ-9" || len(ua.Armaments) != 1 {
		t.Fatalf("GetUAVArmaments: %+v %v", ua, err)
	}
	ac, err := GetArmamentUAVs(ctx, tr, "AGM-114")
	if err != nil || ac.UAVs[0].Designation != "MQ-9" {
		t.Fatalf("GetArmamentUAVs: %+v %v", ac, err)
	}
	if _, err := GetArmament(ctx, tr, "missing"); !errors.Is(err, clienterrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()
	var mu sync.Mutex
	queries := map[string]map[string][]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries[r.URL.Path] = r.URL.Query()
		mu.Unlock()
		switch r.URL.Path {
		case "/api/v1/uavs":
			jsonHandler(http.StatusOK, map[string]any{"platforms": []map[string]any{{"id": "p1", "name": "Reaper"}}, "total": 1, "skip": 0, "limit": 100})(w, r)
		case "/api/v1/uavs/p1":
			jsonHandler(http.StatusOK, map[string]any{"id": "p1", "name": "Reaper"})(w, r)
		case "/api/v1/search":
			var q map[string]any
			_ = json.NewDecoder(r.Body).Decode(&q)
			jsonHandler(http.StatusOK, map[string]any{"results": []any{q}, "total": 1})(w, r)
		case "/api/v1/search/suggestions":
			jsonHandler(http.StatusOK, map[string]any{"suggestions": []string{"Reaper"}})(w, r)
		case "/api/v1/graph", "/api/v1/graph/p1/neighborhood":
			jsonHandler(http.StatusOK, map[string]any{"nodes": []map[string]any{{"id": "p1"}}, "edges": []any{}})(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	tr := newTransport(t, srv)
	ctx := context.Background()

	page, err := ListPlatforms(ctx, tr, 0, 0)
	if err != nil || len(page.Platforms) != 1 || page.HasMore() {
		t.Fatalf("ListPlatforms: %+v %v", page, err)
	}
	if q := queries["/api/v1/uavs"]; q["skip"][0] != "0" || q["limit"][0] != "100" {
		t.Fatalf("unexpected paging query %v", q)
	}
	p, err := GetPlatform(ctx, tr, "p1")
	if err != nil || p.Name != "Reaper" {
		t.Fatalf("GetPlatform: %+v %v", p, err)
	}
	if _, err := GetPlatform(ctx, tr, "p2"); !errors.Is(err, clienterrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	res, err := SearchCatalog(ctx, tr, types.SearchQuery{"text": "reaper"})
	if err != nil || res.Total != 1 || string(res.Results[0]) != `{"text":"reaper"}` {
		t.Fatalf("SearchCatalog: %+v %v", res, err)
	}
	s, err := Suggest(ctx, tr, "rea", 5)
	if err != nil || s.Suggestions[0] != "Reaper" {
		t.Fatalf("Suggest: %+v %v", s, err)
	}
	if q := queries["/api/v1/search/suggestions"]; q["query"][0] != "rea" || q["limit"][0] != "5" {
		t.Fatalf("unexpected suggestion query %v", q)
	}
	g, err := GetGraph(ctx, tr)
	if err != nil || len(g.Nodes) != 1 {
		t.Fatalf("GetGraph: %+v %v", g, err)
	}
	if _, err := GetNeighborhood(ctx, tr, "p1", 2); err != nil {
		t.Fatalf("GetNeighborhood: %v", err)
	}
	if q := queries["/api/v1/graph/p1/neighborhood"]; q["depth"][0] != "2" {
		t.Fatalf("unexpected depth query %v", q)
	}
}

func TestRetry_RecoversFromUnavailable(t *testing.T) {
	t.Parallel()
	var hits int32
	var mu sync.Mutex
	ids := map[string]bool{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		ids[r.Header.Get(HeaderRequestID)] = true
		mu.Unlock()
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		jsonHandler(http.StatusOK, map[string]string{"status": "healthy"})(w, r)
	}))
	defer srv.Close()
	var observed int32
	tr := newTransport(t, srv, func(o *Options) {
		o.Attempts = 3
		o.BaseBackoff = time.Millisecond
		o.MaxBackoff = 5 * time.Millisecond
		o.Observe = func(string, time.Duration, error) { atomic.AddInt32(&observed, 1) }
	})
	got, err := CheckHealth(context.Background(), tr)
	if err != nil || !got.Healthy() {
		t.Fatalf("expected recovery, got=%+v err=%v", got, err)
	}
	if atomic.LoadInt32(&hits) != 3 || atomic.LoadInt32(&observed) != 3 {
		t.Fatalf("hits=%d observed=%d", hits, observed)
	}
	if len(ids) != 1 || ids[""] {
		t.Fatalf("retries should share one request id: %v", ids)
	}
}

func TestRetry_StopsOnIrrecoverable(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.NotFound(w, r)
	}))
	defer srv.Close()
	tr := newTransport(t, srv, func(o *Options) { o.Attempts = 5; o.BaseBackoff = time.Millisecond })
	if _, err := GetUAV(context.Background(), tr, "MQ-9"); !errors.Is(err, clienterrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("404 retried %d times", n)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	tr := newTransport(t, srv, func(o *Options) { o.Attempts = 2; o.BaseBackoff = time.Millisecond })
	_, err := GetStats(context.Background(), tr)
	var he *clienterrors.HTTPStatusError
	if !errors.As(err, &he) || he.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected last status error, got %v", err)
	}
	if n := atomic.LoadInt32(&hits); n != 2 {
		t.Fatalf("expected 2 attempts, got %d", n)
	}
}

func TestNoRetryByDefault(t *testing.T) {
	t.Parallel()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	if _, err := GetStats(context.Background(), newTransport(t, srv)); err == nil {
		t.Fatal("expected error")
	}
	if n := atomic.LoadInt32(&hits); n != 1 {
		t.Fatalf("expected exactly one request, got %d", n)
	}
}

func TestDefaultHeaders(t *testing.T) {
	t.Parallel()
	var accept, custom, reqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept, custom, reqID = r.Header.Get("Accept"), r.Header.Get("X-Trace"), r.Header.Get(HeaderRequestID)
		jsonHandler(http.StatusOK, map[string]string{"status": "ok"})(w, r)
	}))
	defer srv.Close()
	tr := newTransport(t, srv, func(o *Options) {
		o.Headers = map[string]string{"Accept": "application/json", "X-Trace": "abc"}
	})
	if _, err := CheckHealth(context.Background(), tr); err != nil {
		t.Fatal(err)
	}
	if accept != "application/json" || custom != "abc" || reqID == "" {
		t.Fatalf("headers accept=%q custom=%q id=%q", accept, custom, reqID)
	}
}
