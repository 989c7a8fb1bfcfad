package wire

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	app := Wiring(repository.NewMemoryRepository(logger), logger)
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func asObject(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func asArray(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var v []map[string]any
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestMovieLifecycleScenario(t *testing.T) {
	srv := newTestServer(t)

	status, raw := call(t, srv, http.MethodPost, "/movies",
		`{"title":"Dune","director":"Villeneuve","year":2021,"genre":"Sci-Fi","rating":8.5}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := asObject(t, raw)
	assert.Equal(t, map[string]any{
		"id":       float64(1),
		"title":    "Dune",
		"director": "Villeneuve",
		"year":     float64(2021),
		"genre":    "Sci-Fi",
		"rating":   8.5,
	}, created)

	status, raw = call(t, srv, http.MethodGet, "/movies/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created, asObject(t, raw))

	status, raw = call(t, srv, http.MethodDelete, "/movies/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"message": "Фільм видалено"}, asObject(t, raw))

	status, raw = call(t, srv, http.MethodGet, "/movies/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, map[string]any{"error": "Фільм не знайдено"}, asObject(t, raw))

	status, _ = call(t, srv, http.MethodDelete, "/movies/1", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestListStartsEmptyAndStaysOrdered(t *testing.T) {
	srv := newTestServer(t)

	status, raw := call(t, srv, http.MethodGet, "/movies", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(raw))

	for _, title := range []string{"A", "B", "C", "D"} {
		status, _ := call(t, srv, http.MethodPost, "/movies",
			`{"title":"`+title+`","director":"X","year":2000,"rating":5}`)
		require.Equal(t, http.StatusCreated, status)
	}
	status, _ = call(t, srv, http.MethodDelete, "/movies/2", "")
	require.Equal(t, http.StatusOK, status)
	status, _ = call(t, srv, http.MethodPost, "/movies", `{"title":"E","director":"X","year":2000,"rating":5}`)
	require.Equal(t, http.StatusCreated, status)

	status, raw = call(t, srv, http.MethodGet, "/movies", "")
	require.Equal(t, http.StatusOK, status)
	movies := asArray(t, raw)
	require.Len(t, movies, 4)

	var ids []float64
	for _, m := range movies {
		ids = append(ids, m["id"].(float64))
	}
	assert.Equal(t, []float64{1, 3, 4, 5}, ids)
	assert.Nil(t, movies[0]["genre"])
}

func TestPutReplacesAllFields(t *testing.T) {
	srv := newTestServer(t)

	status, _ := call(t, srv, http.MethodPost, "/movies",
		`{"title":"Dune","director":"Villeneuve","year":2021,"genre":"Sci-Fi","rating":8.5}`)
	require.Equal(t, http.StatusCreated, status)

	status, raw := call(t, srv, http.MethodPut, "/movies/1",
		`{"title":"Dune: Part Two","director":"Denis Villeneuve","year":2024,"genre":"","rating":9}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"message": "Фільм оновлено"}, asObject(t, raw))

	status, raw = call(t, srv, http.MethodGet, "/movies/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{
		"id":       float64(1),
		"title":    "Dune: Part Two",
		"director": "Denis Villeneuve",
		"year":     float64(2024),
		"genre":    "",
		"rating":   float64(9),
	}, asObject(t, raw))

	status, _ = call(t, srv, http.MethodPut, "/movies/77",
		`{"title":"X","director":"Y","year":2000,"rating":1}`)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestInvalidPostPersistsNothing(t *testing.T) {
	srv := newTestServer(t)

	bodies := []string{
		`{"title":"","director":"X","year":2000,"rating":5}`,
		`{"title":"T","director":"","year":2000,"rating":5}`,
		`{"title":"T","director":"X","year":1799,"rating":5}`,
		`{"title":"T","director":"X","year":2101,"rating":5}`,
		`{"title":"T","director":"X","year":2000,"rating":-1}`,
		`{"title":"T","director":"X","year":2000,"rating":10.01}`,
	}
	for _, body := range bodies {
		status, raw := call(t, srv, http.MethodPost, "/movies", body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.Contains(t, asObject(t, raw), "error")
	}

	_, raw := call(t, srv, http.MethodGet, "/movies", "")
	assert.JSONEq(t, `[]`, string(raw))
}

func TestNonNumericIDIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	status, _ := call(t, srv, http.MethodGet, "/movies/abc", "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, srv, http.MethodPut, "/movies/abc", `{"title":"T","director":"X","year":2000,"rating":5}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = call(t, srv, http.MethodDelete, "/movies/abc", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMalformedJSONIsRejected(t *testing.T) {
	srv := newTestServer(t)

	status, raw := call(t, srv, http.MethodPost, "/movies", `{"title": "Dune",`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]any{"error": "Некоректний JSON"}, asObject(t, raw))
}

func TestCORSAndRequestID(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/movies", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	req, err = http.NewRequest(http.MethodGet, srv.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "trace-123")
	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "trace-123", resp.Header.Get("X-Request-Id"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
