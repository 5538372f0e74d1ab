package httpclient

import (
	"sort"
	"strings"
)

// CurlCommand renders an equivalent curl invocation for a request. It is
// used only for debug logging. Headers are emitted in key order so the
// output is stable.
func CurlCommand(method, url string, headers map[string]string) string {
	var b strings.Builder
	b.WriteString("curl")
	if method != "" && method != "GET" {
		b.WriteString(" -X " + method)
	}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(` --header "` + k + ": " + headers[k] + `"`)
	}

	b.WriteString(` -L "` + url + `"`)
	return b.String()
}
