package httpclient

import (
	"net/http"
	"sort"
)

// Header names and values used by the default header sets.
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"

	ContentTypeJSON  = "application/json"
	ContentTypeOctet = "application/octet-stream"
)

// MergeHeaders returns a new map holding base overlaid with override.
// Keys are compared case-sensitively and override wins on collision.
// Neither input is modified.
func MergeHeaders(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		merged[k] = v
	}
	return merged
}

// applyHeaders sets each layer on req in order, so later layers replace
// earlier ones even when keys only differ in case. Keys within a layer are
// set in sorted order, so a layer holding both "Accept" and "accept" always
// sends the lowercase key's value.
func applyHeaders(req *http.Request, layers ...map[string]string) {
	for _, layer := range layers {
		keys := make([]string, 0, len(layer))
		for k := range layer {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			req.Header.Set(k, layer[k])
		}
	}
}
