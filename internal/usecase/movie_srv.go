package usecase

import (
	"context"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) error
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(
	repo *repository.Repository,
	log *zap.Logger,
) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, &StoreError{Op: "get movies", Err: err}
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, ok := utils.ParseID(movieID)
	if !ok {
		s.log.Debug("Non-numeric movie ID", zap.String("movie_id", movieID))
		return nil, ErrMovieNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, &StoreError{Op: "get movie by id", Err: err}
	}

	if movie == nil {
		return nil, ErrMovieNotFound
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	movie := movieFromRequest(req)

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", req.Title),
		)
		return nil, &StoreError{Op: "create movie", Err: err}
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieRequest) error {
	id, ok := utils.ParseID(movieID)
	if !ok {
		return ErrMovieNotFound
	}

	movie := movieFromRequest(req)
	movie.ID = id

	affected, err := s.repo.Movie.Update(ctx, movie)
	if err != nil {
		s.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return &StoreError{Op: "update movie", Err: err}
	}
	if affected == 0 {
		return ErrMovieNotFound
	}

	s.log.Info("Movie updated",
		zap.Int64("movie_id", id),
		zap.String("title", movie.Title),
	)

	return nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, ok := utils.ParseID(movieID)
	if !ok {
		return ErrMovieNotFound
	}

	affected, err := s.repo.Movie.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return &StoreError{Op: "delete movie", Err: err}
	}
	if affected == 0 {
		return ErrMovieNotFound
	}

	s.log.Info("Movie deleted", zap.Int64("movie_id", id))

	return nil
}

func movieFromRequest(req *request.MovieRequest) *entity.Movie {
	return &entity.Movie{
		Title:    req.Title,
		Director: req.Director,
		Year:     req.Year,
		Genre:    req.Genre,
		Rating:   req.Rating,
	}
}
