// Package acl implements the Anti-Corruption Layer that translates
// between the Commitly backend API's representations and domain types.
// Resource-specific translators live in subpackages (acl/activity,
// acl/circle, acl/signal, acl/dashboard, acl/rival, acl/notification,
// acl/user); shared error mapping lives here.
package acl

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/commitly/web/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorBody is the backend's uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

// TranslateHTTPError maps a backend error response to a
// *domain.BackendError. The backend reports failures as a JSON object
// with a single "error" field holding a user-facing message; the
// message is carried verbatim so callers can display it unchanged. A
// missing or unparsable body yields an empty message, which the domain
// layer replaces with the generic fallback.
func TranslateHTTPError(resp *http.Response) error {
	return &domain.BackendError{
		Message: parseErrorMessage(resp),
		Status:  resp.StatusCode,
	}
}

// parseErrorMessage attempts to read the backend's error message from
// the response body. Returns an empty string if parsing fails.
func parseErrorMessage(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Error
}
