package gemini

import (
	"errors"
	"net/http"

	"google.golang.org/genai"
)

// apiError extracts the genai API error from err, if any.
func apiError(err error) (genai.APIError, bool) {
	var v genai.APIError
	if errors.As(err, &v) {
		return v, true
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return *p, true
	}
	return genai.APIError{}, false
}

// IsModelUnavailable reports whether err means the requested model does not
// exist or cannot be used with the current credential.
func IsModelUnavailable(err error) bool {
	ae, ok := apiError(err)
	if !ok {
		return false
	}
	switch ae.Code {
	case http.StatusNotFound, http.StatusForbidden:
		return true
	}
	return ae.Status == "NOT_FOUND" || ae.Status == "PERMISSION_DENIED"
}
