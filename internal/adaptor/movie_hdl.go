package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, r, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseMovieRequest(r)
	if err != nil {
		h.handleServiceError(w, r, err, "create movie")
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, err, "create movie")
		return
	}

	utils.ResponseCreated(w, movie)
}

// UpdateMovie handles PUT /movies/{id}. The body is validated before the id
// is looked at.
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseMovieRequest(r)
	if err != nil {
		h.handleServiceError(w, r, err, "update movie")
		return
	}

	if err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		h.handleServiceError(w, r, err, "update movie")
		return
	}

	utils.ResponseMessage(w, utils.MsgMovieUpdated)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, r, err, "delete movie")
		return
	}

	utils.ResponseMessage(w, utils.MsgMovieDeleted)
}

var errMalformedBody = errors.New("malformed json body")

// parseMovieRequest decodes the body and runs it through the movie validator.
// A missing body or a non-JSON content type is treated as an empty object.
func (h *MovieHandler) parseMovieRequest(r *http.Request) (*request.MovieRequest, error) {
	var body any = map[string]any{}

	if r.Body != nil && utils.IsJSONContentType(r) {
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()

		var decoded any
		switch err := decoder.Decode(&decoded); {
		case errors.Is(err, io.EOF):
		case err != nil:
			return nil, errMalformedBody
		default:
			body = decoded
		}
	}

	return request.ParseMovieRequest(body)
}

// handleServiceError is the single place that maps error kinds to status codes
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	requestID, _ := utils.GetRequestIDFromContext(r.Context())

	var validationErr *utils.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.log.Debug(operation+" validation failed",
			zap.String("field", validationErr.Field),
			zap.String("reason", validationErr.Message),
			zap.String("request_id", requestID),
		)
		utils.ResponseBadRequest(w, validationErr.Message)

	case errors.Is(err, errMalformedBody):
		utils.ResponseBadRequest(w, utils.MsgInvalidJSON)

	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Debug(operation+" failed - not found",
			zap.String("operation", operation),
			zap.String("request_id", requestID),
		)
		utils.ResponseNotFound(w, utils.MsgMovieNotFound)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("request_id", requestID),
		)
		utils.ResponseInternalError(w)
	}
}
