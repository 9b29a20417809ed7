package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/alexanderramin/courtside/internal/llm"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/alexanderramin/courtside/internal/service"
)

// maxBodyBytes caps request bodies; photos arrive as base64 data URLs.
const maxBodyBytes = 12 << 20

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func jsonOK(w http.ResponseWriter, data any) {
	jsonStatus(w, http.StatusOK, data)
}

func jsonStatus(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg, kind string, code int) {
	jsonStatus(w, code, errorBody{Error: kind, Message: msg})
}

// classify maps an error to a status code and a short machine-readable kind.
func classify(err error) (int, string) {
	var (
		cfg   *llm.ConfigError
		netw  *llm.NetworkError
		parse *llm.ParseError
	)
	switch {
	case errors.As(err, &cfg):
		return http.StatusPreconditionFailed, "config"
	case errors.As(err, &netw):
		return http.StatusBadGateway, "upstream"
	case errors.As(err, &parse):
		return http.StatusBadGateway, "upstream_output"
	case errors.Is(err, service.ErrInvalid):
		return http.StatusBadRequest, "invalid"
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not_found"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (d *Deps) fail(w http.ResponseWriter, r *http.Request, err error) {
	code, kind := classify(err)
	if code >= http.StatusInternalServerError {
		d.logger().ErrorContext(r.Context(), "request_failed",
			"method", r.Method, "path", r.URL.Path, "status", code, "error", err.Error())
	}
	jsonError(w, err.Error(), kind, code)
}

// decode reads a JSON body into dst. Unknown fields are rejected.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is empty", service.ErrInvalid)
		}
		return fmt.Errorf("%w: decoding request body: %v", service.ErrInvalid, err)
	}
	return nil
}
