package repository

import (
	"context"
	"sort"
	"sync"

	"movie-catalog/internal/data/entity"

	"go.uber.org/zap"
)

// movieMemoryRepository keeps movies in-process. Ids are never reused.
type movieMemoryRepository struct {
	mu     sync.RWMutex
	movies map[int64]entity.Movie
	nextID int64
	log    *zap.Logger
}

func NewMovieMemoryRepository(log *zap.Logger) MovieRepository {
	return &movieMemoryRepository{
		movies: make(map[int64]entity.Movie),
		nextID: 1,
		log:    log.With(zap.String("repository", "movie"), zap.String("driver", "memory")),
	}
}

func (r *movieMemoryRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		m := cloneMovie(movie)
		movies = append(movies, &m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (r *movieMemoryRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	m := cloneMovie(movie)
	return &m, nil
}

func (r *movieMemoryRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie.ID = r.nextID
	r.nextID++
	r.movies[movie.ID] = cloneMovie(*movie)

	r.log.Debug("Movie stored", zap.Int64("movie_id", movie.ID))
	return nil
}

func (r *movieMemoryRepository) Update(ctx context.Context, movie *entity.Movie) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.ID]; !ok {
		return 0, nil
	}
	r.movies[movie.ID] = cloneMovie(*movie)
	return 1, nil
}

func (r *movieMemoryRepository) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[id]; !ok {
		return 0, nil
	}
	delete(r.movies, id)
	return 1, nil
}

// cloneMovie copies the genre pointer so callers cannot mutate stored rows
func cloneMovie(movie entity.Movie) entity.Movie {
	if movie.Genre != nil {
		genre := *movie.Genre
		movie.Genre = &genre
	}
	return movie
}
