package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Validator is implemented by request DTOs that support validation.
type Validator interface {
	Validate() error
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements Validator, runs Validate(). On failure it writes a 400
// {"message": ...} response and returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			WriteMessage(w, http.StatusBadRequest, "request body is required")
			return false
		}
		WriteMessage(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if err := v.Validate(); err != nil {
			WriteMessage(w, http.StatusBadRequest, err.Error())
			return false
		}
	}
	return true
}
