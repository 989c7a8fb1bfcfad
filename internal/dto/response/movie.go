package response

import "movie-catalog/internal/data/entity"

type MovieResponse struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Year     int     `json:"year"`
	Genre    *string `json:"genre"`
	Rating   float64 `json:"rating"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Director: movie.Director,
		Year:     movie.Year,
		Genre:    movie.Genre,
		Rating:   movie.Rating,
	}
}

// MoviesToResponse never returns nil so an empty list encodes as []
func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	result := make([]MovieResponse, 0, len(movies))
	for _, movie := range movies {
		result = append(result, MovieToResponse(movie))
	}
	return result
}
