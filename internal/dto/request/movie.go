package request

import (
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"

	"movie-catalog/pkg/utils"
)

// MovieRequest is a validated movie payload used by POST and PUT.
type MovieRequest struct {
	Title    string
	Director string
	Year     int
	Genre    *string
	Rating   float64
}

// movieInput holds the coerced but not yet range-checked body. Year stays a
// float so out-of-range values are reported by the constraint check rather
// than overflowing.
type movieInput struct {
	Title    *string  `json:"title" validate:"required,min=1"`
	Director *string  `json:"director" validate:"required,min=1"`
	Year     *float64 `json:"year" validate:"required,min=1800,max=2100"`
	Genre    *string  `json:"genre"`
	Rating   *float64 `json:"rating" validate:"required,min=0,max=10"`
}

// declaration order, first failure wins
var movieFields = []string{"title", "director", "year", "genre", "rating"}

var errNotANumber = errors.New("not a number")

// ParseMovieRequest validates a decoded JSON body. On failure the returned
// error is a *utils.ValidationError naming the first offending field.
func ParseMovieRequest(body any) (*MovieRequest, error) {
	raw, ok := body.(map[string]any)
	if !ok {
		return nil, utils.NewValidationError("value", "must be of type object")
	}

	var in movieInput
	coerceErrs := make(map[string]*utils.ValidationError)

	var verr *utils.ValidationError
	if in.Title, verr = stringField(raw, "title"); verr != nil {
		coerceErrs["title"] = verr
	}
	if in.Director, verr = stringField(raw, "director"); verr != nil {
		coerceErrs["director"] = verr
	}
	if in.Year, verr = numberField(raw, "year"); verr != nil {
		coerceErrs["year"] = verr
	} else if in.Year != nil && *in.Year != math.Trunc(*in.Year) {
		coerceErrs["year"] = utils.NewValidationError("year", "must be an integer")
	}
	if in.Genre, verr = stringField(raw, "genre"); verr != nil {
		coerceErrs["genre"] = verr
	}
	if in.Rating, verr = numberField(raw, "rating"); verr != nil {
		coerceErrs["rating"] = verr
	}

	constraintErrs := make(map[string]*utils.ValidationError)
	for _, e := range utils.ValidateStruct(&in) {
		if _, seen := constraintErrs[e.Field]; !seen {
			constraintErrs[e.Field] = e
		}
	}

	for _, field := range movieFields {
		if e, ok := coerceErrs[field]; ok {
			return nil, e
		}
		if e, ok := constraintErrs[field]; ok {
			return nil, e
		}
	}

	if unknown := unknownKeys(raw); len(unknown) > 0 {
		return nil, utils.NewValidationError(unknown[0], "is not allowed")
	}

	return &MovieRequest{
		Title:    *in.Title,
		Director: *in.Director,
		Year:     int(*in.Year),
		Genre:    in.Genre,
		Rating:   *in.Rating,
	}, nil
}

func stringField(raw map[string]any, key string) (*string, *utils.ValidationError) {
	value, present := raw[key]
	if !present {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, utils.NewValidationError(key, "must be a string")
	}
	return &s, nil
}

// numberField accepts JSON numbers and numeric strings.
func numberField(raw map[string]any, key string) (*float64, *utils.ValidationError) {
	value, present := raw[key]
	if !present {
		return nil, nil
	}

	var (
		f   float64
		err error
	)
	switch v := value.(type) {
	case json.Number:
		f, err = v.Float64()
	case float64:
		f = v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			err = errNotANumber
		} else {
			f, err = strconv.ParseFloat(trimmed, 64)
		}
	default:
		err = errNotANumber
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, utils.NewValidationError(key, "must be a number")
	}
	return &f, nil
}

func unknownKeys(raw map[string]any) []string {
	var unknown []string
	for key := range raw {
		known := false
		for _, field := range movieFields {
			if key == field {
				known = true
				break
			}
		}
		if !known {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}
