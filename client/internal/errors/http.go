package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// errorBody is the only error convention the backend is known to use.
// Bodies carrying "error" or "detail" instead, or a non-string message, fall
// back to the generic message.
type errorBody struct {
	Message string `json:"message"`
}

// FromResponse builds the normalized error for a failed response. A body that
// is empty, unreadable or not a JSON object is treated as an empty object.
func FromResponse(resp *http.Response) *RequestError {
	var body errorBody
	if data, err := io.ReadAll(resp.Body); err == nil {
		if err := json.Unmarshal(data, &body); err != nil {
			body = errorBody{}
		}
	}
	msg := body.Message
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
	}
	return &RequestError{StatusCode: resp.StatusCode, Message: msg}
}
