package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

type stateBody struct {
	Pair       string             `json:"pair"`
	Region     string             `json:"region"`
	Properties map[string]float64 `json:"properties"`
	Error      string             `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestState(t *testing.T) {
	h := New().Handler()

	rec := get(t, h, "/v1/state?pair=PT&a=3&b=300")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode[stateBody](t, rec)
	assert.Equal(t, "pT", body.Pair)
	assert.Equal(t, "region 1", body.Region)
	assert.InDelta(t, 115.331273, body.Properties["h"], 1e-5)
	assert.InDelta(t, 1.00215168e-3, body.Properties["v"], 1e-11)
	assert.Equal(t, 0.0, body.Properties["x"])
}

func TestStateTwoPhaseOmitsUndefined(t *testing.T) {
	h := New().Handler()

	rec := get(t, h, "/v1/state?pair=Tx&a=373.15&b=0.5")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode[stateBody](t, rec)
	assert.Equal(t, "region 4", body.Region)
	assert.Contains(t, body.Properties, "h")
	assert.NotContains(t, body.Properties, "cp")
	assert.NotContains(t, body.Properties, "w")
}

func TestStateErrors(t *testing.T) {
	h := New().Handler()

	tests := []struct {
		name   string
		target string
		code   int
	}{
		{"out of range", "/v1/state?pair=pT&a=200&b=300", http.StatusUnprocessableEntity},
		{"region 5 from ph", "/v1/state?pair=ph&a=10&b=5000", http.StatusUnprocessableEntity},
		{"missing value", "/v1/state?pair=pT&a=3", http.StatusBadRequest},
		{"empty value", "/v1/state?pair=pT&a=3&b=", http.StatusBadRequest},
		{"not a number", "/v1/state?pair=pT&a=abc&b=300", http.StatusBadRequest},
		{"nan", "/v1/state?pair=pT&a=NaN&b=300", http.StatusBadRequest},
		{"unknown pair", "/v1/state?pair=uv&a=1&b=2", http.StatusBadRequest},
		{"unknown parameter", "/v1/state?pair=pT&a=3&b=300&c=1", http.StatusBadRequest},
		{"repeated parameter", "/v1/state?pair=pT&a=3&a=4&b=300", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decode[stateBody](t, rec).Error)
		})
	}
}

func TestRegion(t *testing.T) {
	h := New().Handler()

	type regionBody struct {
		Region string `json:"region"`
		Valid  bool   `json:"valid"`
	}

	tests := []struct {
		target string
		region string
		valid  bool
	}{
		{"/v1/region?pair=pT&a=10&b=1500", "region 5", true},
		{"/v1/region?pair=pT&a=30&b=1500", "out of range", false},
		{"/v1/region?pair=ph&a=3&b=500", "region 1", true},
		{"/v1/region?pair=Tx&a=373.15&b=0.2", "region 4", true},
	}
	for _, tt := range tests {
		rec := get(t, h, tt.target)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode[regionBody](t, rec)
		assert.Equal(t, tt.region, body.Region, tt.target)
		assert.Equal(t, tt.valid, body.Valid, tt.target)
	}
}

func TestSaturation(t *testing.T) {
	h := New().Handler()

	type satBody struct {
		T      float64            `json:"T"`
		P      float64            `json:"p"`
		Liquid map[string]float64 `json:"liquid"`
		Vapour map[string]float64 `json:"vapour"`
	}

	rec := get(t, h, "/v1/saturation?T=373.15")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[satBody](t, rec)
	assert.InDelta(t, 0.101417978, body.P, 1e-8)
	assert.InDelta(t, 419.0991550, body.Liquid["h"], 1e-5)
	assert.InDelta(t, 2675.588056, body.Vapour["h"], 1e-4)
	assert.Equal(t, 1.0, body.Vapour["x"])

	rec = get(t, h, "/v1/saturation?p=0.101417978")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 373.15, decode[satBody](t, rec).T, 1e-5)

	assert.Equal(t, http.StatusBadRequest, get(t, h, "/v1/saturation").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/v1/saturation?T=300&p=1").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, h, "/v1/saturation?T=700").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, get(t, h, "/v1/saturation?p=30").Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := New().Handler()

	rec := get(t, h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())

	get(t, h, "/v1/state?pair=pT&a=3&b=300")

	rec = get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, `gosteam_evaluations_total{endpoint="state",pair="pT",region="region 1"} 1`)
	assert.Contains(t, out, `gosteam_request_duration_seconds_count{code="200",route="/v1/state"} 1`)
}

func TestMemoryCache(t *testing.T) {
	cache := NewMemoryCache()
	h := New(WithCache(cache)).Handler()

	first := get(t, h, "/v1/state?pair=pT&a=3&b=300")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "miss", first.Header().Get("X-Cache"))
	assert.Equal(t, 1, cache.Len())

	second := get(t, h, "/v1/state?pair=pt&a=3.0&b=300")
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "hit", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())

	get(t, h, "/v1/state?pair=pT&a=200&b=300")
	assert.Equal(t, 1, cache.Len())
}

func TestRedisCache(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	cache := NewRedisCacheFromClient(client, WithTTL(time.Minute))
	require.NoError(t, cache.Ping(context.Background()))

	h := New(WithCache(cache)).Handler()
	first := get(t, h, "/v1/region?pair=ph&a=3&b=500")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "miss", first.Header().Get("X-Cache"))
	assert.True(t, mr.Exists("gosteam:region:ph:3:500"))
	assert.Equal(t, time.Minute, mr.TTL("gosteam:region:ph:3:500"))

	second := get(t, h, "/v1/region?pair=ph&a=3&b=500")
	assert.Equal(t, "hit", second.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRedisCacheMissAndFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	cache := NewRedisCacheFromClient(backend.NewClient(&backend.Options{Addr: mr.Addr()}), WithPrefix("test:"))
	_, ok, err := cache.Get(context.Background(), "nothing")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.Close()
	_, _, err = cache.Get(context.Background(), "nothing")
	assert.Error(t, err)

	// a broken cache degrades to direct evaluation
	rec := get(t, New(WithCache(cache)).Handler(), "/v1/state?pair=pT&a=3&b=300")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, cache.Close())
}

func TestRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New().Run(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestDecodeQueryCacheKey(t *testing.T) {
	assert.Equal(t, "state:pT:3:300.5", cacheKey("state", "pT", 3.0, 300.5))

	var q pointQuery
	err := decodeQuery(map[string][]string{"pair": {" ph "}, "a": {"1e1"}, "b": {"2500"}}, &q, "pair", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, pointQuery{Pair: "ph", A: 10, B: 2500}, q)

	err = decodeQuery(map[string][]string{"pair": {"ph"}}, &q, "pair", "a")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, strings.Contains(err.Error(), `"a"`))
}
