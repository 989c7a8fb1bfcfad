package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// MaxJSONBodyBytes caps request bodies read by JSONBody
const MaxJSONBodyBytes = 100 << 10

// JSONBody rejects malformed JSON before it reaches a handler. Bodies with a
// non-JSON content type pass through untouched.
func JSONBody(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !utils.IsJSONContentType(r) {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxJSONBodyBytes))
			if err != nil {
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					utils.ResponseError(w, http.StatusRequestEntityTooLarge, utils.MsgBodyTooLarge)
					return
				}
				logger.Warn("Failed to read request body",
					zap.Error(err),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseBadRequest(w, utils.MsgInvalidJSON)
				return
			}

			if len(bytes.TrimSpace(body)) > 0 && !json.Valid(body) {
				utils.ResponseBadRequest(w, utils.MsgInvalidJSON)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			next.ServeHTTP(w, r)
		})
	}
}
