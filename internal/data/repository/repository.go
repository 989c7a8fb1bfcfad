package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Repository struct {
	Movie MovieRepository
}

// NewRepository builds the pgx-backed repositories.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieRepository(db, log),
	}
}

func NewGormRepository(db *gorm.DB, log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieGormRepository(db, log),
	}
}

func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie: NewMovieMemoryRepository(log),
	}
}
