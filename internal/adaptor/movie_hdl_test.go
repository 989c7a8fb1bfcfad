package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMovieService struct {
	err        error
	lastID     string
	lastCreate *request.MovieRequest
}

func (s *stubMovieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []response.MovieResponse{}, nil
}

func (s *stubMovieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	s.lastID = movieID
	if s.err != nil {
		return nil, s.err
	}
	return &response.MovieResponse{ID: 1, Title: "Dune"}, nil
}

func (s *stubMovieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	s.lastCreate = req
	if s.err != nil {
		return nil, s.err
	}
	return &response.MovieResponse{ID: 1, Title: req.Title, Director: req.Director, Year: req.Year, Genre: req.Genre, Rating: req.Rating}, nil
}

func (s *stubMovieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) error {
	s.lastID = movieID
	return s.err
}

func (s *stubMovieService) DeleteMovie(ctx context.Context, movieID string) error {
	s.lastID = movieID
	return s.err
}

func newTestRouter(svc usecase.MovieService) http.Handler {
	h := NewMovieHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/movies", h.GetMovies)
	r.Post("/movies", h.CreateMovie)
	r.Get("/movies/{id}", h.GetMovieByID)
	r.Put("/movies/{id}", h.UpdateMovie)
	r.Delete("/movies/{id}", h.DeleteMovie)
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validBody = `{"title":"Dune","director":"Villeneuve","year":2021,"genre":"Sci-Fi","rating":8.5}`

func TestMovieHandlerStoreErrorIsGeneric500(t *testing.T) {
	svc := &stubMovieService{err: &usecase.StoreError{Op: "get movies", Err: errors.New("dial tcp 10.0.0.1:5432: secret detail")}}
	router := newTestRouter(svc)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/movies", ""},
		{http.MethodGet, "/movies/1", ""},
		{http.MethodPost, "/movies", validBody},
		{http.MethodPut, "/movies/1", validBody},
		{http.MethodDelete, "/movies/1", ""},
	} {
		rec := doRequest(t, router, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, map[string]any{"error": "Помилка сервера"}, decodeBody(t, rec))
		assert.NotContains(t, rec.Body.String(), "secret")
	}
}

func TestMovieHandlerNotFound(t *testing.T) {
	router := newTestRouter(&stubMovieService{err: usecase.ErrMovieNotFound})

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodGet, "/movies/9", ""},
		{http.MethodPut, "/movies/9", validBody},
		{http.MethodDelete, "/movies/9", ""},
	} {
		rec := doRequest(t, router, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, map[string]any{"error": "Фільм не знайдено"}, decodeBody(t, rec))
	}
}

func TestMovieHandlerCreate(t *testing.T) {
	svc := &stubMovieService{}
	rec := doRequest(t, newTestRouter(svc), http.MethodPost, "/movies", validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.NotNil(t, svc.lastCreate)
	assert.Equal(t, "Villeneuve", svc.lastCreate.Director)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Sci-Fi", body["genre"])
	assert.Equal(t, 8.5, body["rating"])
}

func TestMovieHandlerValidationFailureSkipsService(t *testing.T) {
	svc := &stubMovieService{}
	router := newTestRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/movies", `{"title":"Dune","director":"Villeneuve","year":1700,"rating":8.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": `"year" must be greater than or equal to 1800`}, decodeBody(t, rec))
	assert.Nil(t, svc.lastCreate)

	// PUT validates the body before looking at the id
	rec = doRequest(t, router, http.MethodPut, "/movies/abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": `"title" is required`}, decodeBody(t, rec))
	assert.Empty(t, svc.lastID)
}

func TestMovieHandlerNonJSONBodyIsEmptyObject(t *testing.T) {
	svc := &stubMovieService{}
	req := httptest.NewRequest(http.MethodPost, "/movies", strings.NewReader("title=Dune"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	newTestRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": `"title" is required`}, decodeBody(t, rec))
}

func TestMovieHandlerMalformedJSON(t *testing.T) {
	rec := doRequest(t, newTestRouter(&stubMovieService{}), http.MethodPost, "/movies", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"error": "Некоректний JSON"}, decodeBody(t, rec))
}

func TestMovieHandlerPassesRawIDToService(t *testing.T) {
	svc := &stubMovieService{}
	rec := doRequest(t, newTestRouter(svc), http.MethodDelete, "/movies/12", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "12", svc.lastID)
	assert.Equal(t, map[string]any{"message": "Фільм видалено"}, decodeBody(t, rec))
}
