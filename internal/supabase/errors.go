package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionMissing is returned by calls that need a signed-in session.
var ErrSessionMissing = errors.New("supabase: auth session missing")

// AuthError is the error object reported by the auth API.
type AuthError struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (e *AuthError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %s (%d %s)", e.Message, e.Status, e.Code)
	}
	return fmt.Sprintf("supabase: %s (%d)", e.Message, e.Status)
}

// IsAuthError reports whether err is an *AuthError with one of the statuses.
// With no statuses any *AuthError matches.
func IsAuthError(err error, statuses ...int) bool {
	var ae *AuthError
	if !errors.As(err, &ae) {
		return false
	}
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if ae.Status == s {
			return true
		}
	}
	return false
}

// The auth API has used several body shapes over time; take whichever is set.
type errorBody struct {
	ErrorCode        string `json:"error_code"`
	Error            string `json:"error"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
}

func decodeError(status int, raw []byte) *AuthError {
	ae := &AuthError{Status: status}

	var b errorBody
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &b)
	}

	ae.Code = firstNonEmpty(b.ErrorCode, b.Error)
	ae.Message = firstNonEmpty(b.Msg, b.Message, b.ErrorDescription, b.Error, http.StatusText(status))
	return ae
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
