package api

import "net/http"

// Method is the HTTP method an endpoint is dispatched with.
type Method int

const (
	// MethodNone marks an endpoint that must never be dispatched.
	MethodNone Method = iota
	// MethodGet dispatches as GET.
	MethodGet
	// MethodPost dispatches as POST with the input as a JSON body.
	MethodPost
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	case MethodNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// HTTPMethod returns the net/http method name, or "" for MethodNone.
func (m Method) HTTPMethod() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	default:
		return ""
	}
}
