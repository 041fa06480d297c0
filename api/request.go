package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/news-board-backend/errs"
)

const maxBodyBytes = 1 << 20

// pathID reads a numeric route parameter. Ids are postgres INTs, so anything
// outside int32 cannot match a row and is rejected like a non-number.
func pathID(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, errs.NewInvalidIdentifierError(param, raw)
	}
	return int(id), nil
}

// decodeJSON decodes the request body into dst. Unknown fields are ignored
// and an empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, payloadType string, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errs.NewMalformedPayloadError(payloadType, err)
	}
	return nil
}
