package httpclient

import "net/http"

// Doer is the transport adapter an Executor sends requests through.
// *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is the outcome of one request: the raw response bytes or a
// classified *Error.
type Result struct {
	Data []byte
	Err  error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Completion receives the outcome of an asynchronous request. It is called
// exactly once, on a goroutine owned by the request.
type Completion func(Result)

func resultOf(data []byte, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	return Result{Data: data}
}

// complete runs fn on a new goroutine and hands its outcome to done.
func complete(done Completion, fn func() ([]byte, error)) {
	go func() {
		done(resultOf(fn()))
	}()
}
