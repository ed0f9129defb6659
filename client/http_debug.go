package client

import (
	"net/http"
	"net/http/httputil"
	"os"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport logs every request/response dump at debug level. Each
// exchange gets a request_id so the two log lines can be correlated; the id
// is a log field only and is never sent to the server.
//
// Enable with WithDebugLogging(true) or AIEXAM_DEBUG=true / DEBUG=true.
// Bodies are logged verbatim.
type debugTransport struct{ base http.RoundTripper }

var authHeaderLine = regexp.MustCompile(`(?mi)^(Authorization:[ \t]*)(\S+[ \t]+)?\S+`)

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	id := uuid.NewString()
	logger := log.With().Str("request_id", id).Str("method", req.Method).Str("url", req.URL.String()).Logger()

	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		logger.Debug().Str("request_dump", redactAuthorization(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		logger.Error().Err(err).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		logger.Debug().Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// redactAuthorization keeps the scheme of an Authorization header and hides
// the credential.
func redactAuthorization(dump []byte) string {
	return authHeaderLine.ReplaceAllString(string(dump), "${1}${2}[REDACTED]")
}

// debugLoggingRequested reports whether AIEXAM_DEBUG or DEBUG is "true".
func debugLoggingRequested() bool {
	return os.Getenv("AIEXAM_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
