// Package httpclient is the low-level request executor behind resttools.
//
// An Executor issues exactly one GET, POST or multipart upload and reduces
// the transport outcome to either the raw response bytes or a typed *Error.
// Executors are cheap and built per request by the rest package; they hold
// the merged header set and optional Basic credentials for that request.
//
// Subpackages provide the convenience layers:
//
//   - rest: base-URL client with JSON defaults and definition dispatch
//   - api: declarative endpoint definitions
//
// # Basic Usage
//
//	exec := httpclient.NewExecutor(
//	    httpclient.BasicAuth("user", "secret"),
//	    map[string]string{"Accept": "application/json"},
//	)
//	body, err := exec.Get(ctx, "https://api.example.com/issues/1")
//	if httpclient.IsStatusCode(err) {
//	    code, _ := httpclient.StatusCodeOf(err)
//	    ...
//	}
//
// # Status policy
//
// GET and upload treat any status in [300,600) as a failure and everything
// else as success when a body is present. POST only succeeds on [200,299].
package httpclient
