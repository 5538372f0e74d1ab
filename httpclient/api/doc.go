// Package api describes REST endpoints declaratively.
//
// A Definition names an endpoint's path, its HTTP method and the Go types of
// its request and response payloads, plus how to decode a response body.
// Endpoint is the ready-made implementation, usually written as a literal at
// the call site:
//
//	var getIssue = api.Endpoint[api.Empty, Issue]{
//	    Parent:     "rest/api/2",
//	    Components: []string{"issue", "ABC-1"},
//	    Verb:       api.MethodGet,
//	}
//
// Definitions of different concrete types but equal payload types can be
// stored together behind Any, which keeps each one's decode behavior.
package api
