package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"ppo-ops/internal/shared/svcerrors"
)

const codeMalformedRequest = "HTP_1000"

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// AppHandlerFunc adapts a plain function to AppHttpHandler so each route
// can be a method instead of its own handler struct.
type AppHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f AppHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) error {
	return f(w, r)
}

func errMalformedRequest(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedRequest, msg, cause)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}

func decodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errMalformedRequest("empty request body", nil)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errMalformedRequest("invalid json body", err)
	}
	return nil
}

// queryInt parses an optional integer query parameter. Absent means zero.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errMalformedRequest(name+" must be an integer", err)
	}
	return v, nil
}

// queryDate parses an optional YYYY-MM-DD query parameter. Absent means
// the zero time.
func queryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errMalformedRequest(name+" must be a date in YYYY-MM-DD format", err)
	}
	return t, nil
}
