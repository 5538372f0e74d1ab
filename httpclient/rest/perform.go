package rest

import (
	"context"
	"fmt"

	"github.com/kbukum/resttools/httpclient"
	"github.com/kbukum/resttools/httpclient/api"
)

// Perform dispatches def through c. GET ignores input; POST sends it as the
// JSON body. Both use api.Path(def) relative to the base URL.
//
// Perform panics if def's method is api.MethodNone (or unknown), or if a
// POST input cannot be encoded.
func Perform[In, Out any](ctx context.Context, c *Client, input In, def api.Definition[In, Out]) ([]byte, error) {
	switch def.Method() {
	case api.MethodGet:
		return c.Get(ctx, api.Path(def))
	case api.MethodPost:
		return c.Post(ctx, api.Path(def), input)
	default:
		panic(undispatchable(def))
	}
}

// PerformAsync is the asynchronous form of Perform. The method check and
// payload encoding happen before it returns.
func PerformAsync[In, Out any](ctx context.Context, c *Client, input In, def api.Definition[In, Out], done httpclient.Completion) {
	switch def.Method() {
	case api.MethodGet:
		c.GetAsync(ctx, api.Path(def), done)
	case api.MethodPost:
		c.PostAsync(ctx, api.Path(def), input, done)
	default:
		panic(undispatchable(def))
	}
}

// PerformDecoded runs Perform and decodes the response with def.Decode.
// Decode failures are reported as deserialization errors.
func PerformDecoded[In, Out any](ctx context.Context, c *Client, input In, def api.Definition[In, Out]) (Out, error) {
	var zero Out
	data, err := Perform(ctx, c, input, def)
	if err != nil {
		return zero, err
	}
	out, err := def.Decode(data)
	if err != nil {
		return zero, httpclient.NewDeserializationError(err)
	}
	return out, nil
}

func undispatchable(r interface {
	api.Route
	Method() api.Method
}) string {
	return fmt.Sprintf("rest: cannot perform %s operation on %q", r.Method(), api.Path(r))
}
