package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type errNoData struct{}

func (errNoData) Error() string { return "No data provided" }

// decodeBody reads a JSON object body. An empty body, a non-object, or an
// empty object all count as no data.
func decodeBody(r *http.Request, dst interface{}) error {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return errNoData{}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return errNoData{}
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	return decoder.Decode(dst)
}

func (s *Server) badBody(w http.ResponseWriter, err error) {
	if _, ok := err.(errNoData); ok {
		WriteError(w, http.StatusBadRequest, "No data provided", "")
		return
	}
	WriteError(w, http.StatusBadRequest, "Invalid payload", "")
}

func pathID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
