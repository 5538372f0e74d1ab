package rest

import "github.com/kbukum/resttools/httpclient"

// Error helpers re-exported from httpclient so REST callers need not
// import it for error checks.

// IsServiceError checks if the request failed in the transport.
func IsServiceError(err error) bool { return httpclient.IsServiceError(err) }

// IsStatusCode checks if a GET or upload saw a 3xx-5xx status.
func IsStatusCode(err error) bool { return httpclient.IsStatusCode(err) }

// IsWrongStatusCode checks if a POST saw a non-2xx status.
func IsWrongStatusCode(err error) bool { return httpclient.IsWrongStatusCode(err) }

// IsNoData checks if a successful response had no body.
func IsNoData(err error) bool { return httpclient.IsNoData(err) }

// IsDeserialization checks if a response could not be decoded.
func IsDeserialization(err error) bool { return httpclient.IsDeserialization(err) }

// StatusCodeOf returns the HTTP status carried by err, if any.
func StatusCodeOf(err error) (int, bool) { return httpclient.StatusCodeOf(err) }
