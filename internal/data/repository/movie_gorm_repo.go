package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/data/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type movieGormRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewMovieGormRepository implements MovieRepository on top of gorm
func NewMovieGormRepository(db *gorm.DB, log *zap.Logger) MovieRepository {
	return &movieGormRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie"), zap.String("driver", "gorm")),
	}
}

func (r *movieGormRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	movies := make([]*entity.Movie, 0)
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&movies).Error; err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}
	return movies, nil
}

func (r *movieGormRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	return &movie, nil
}

func (r *movieGormRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if err := r.db.WithContext(ctx).Create(movie).Error; err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}

func (r *movieGormRepository) Update(ctx context.Context, movie *entity.Movie) (int64, error) {
	// map form so a nil genre is written as NULL
	result := r.db.WithContext(ctx).
		Model(&entity.Movie{}).
		Where("id = ?", movie.ID).
		Updates(map[string]any{
			"title":    movie.Title,
			"director": movie.Director,
			"year":     movie.Year,
			"genre":    movie.Genre,
			"rating":   movie.Rating,
		})
	if result.Error != nil {
		r.log.Error("Failed to update movie",
			zap.Error(result.Error),
			zap.Int64("movie_id", movie.ID),
		)
		return 0, fmt.Errorf("failed to update movie: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *movieGormRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&entity.Movie{}, id)
	if result.Error != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(result.Error),
			zap.Int64("movie_id", id),
		)
		return 0, fmt.Errorf("failed to delete movie: %w", result.Error)
	}
	return result.RowsAffected, nil
}
