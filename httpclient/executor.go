package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/resttools/logger"
)

// Executor issues a single request with a fixed header set and optional
// Basic credentials. Build one per request; it holds no connection state.
type Executor struct {
	auth      *Credential
	defaults  map[string]string
	headers   map[string]string
	transport Doer
	log       *logger.Logger
	tracer    trace.Tracer
	metrics   *Metrics
}

// Option configures an Executor.
type Option func(*Executor)

// WithTransport sets the transport adapter. Defaults to http.DefaultClient.
func WithTransport(d Doer) Option {
	return func(e *Executor) {
		if d != nil {
			e.transport = d
		}
	}
}

// WithDefaultHeaders sets headers applied before the credential and the
// executor's own headers, so either of them replaces a default with the same
// name in any letter case.
func WithDefaultHeaders(h map[string]string) Option {
	return func(e *Executor) {
		e.defaults = h
	}
}

// WithLogger sets the logger used for the debug request echo.
func WithLogger(l *logger.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(e *Executor) {
		if t != nil {
			e.tracer = t
		}
	}
}

// WithMetrics sets the request instruments.
func WithMetrics(m *Metrics) Option {
	return func(e *Executor) {
		if m != nil {
			e.metrics = m
		}
	}
}

// NewExecutor creates an executor. Credentials are applied before headers,
// so a caller-supplied Authorization header replaces the Basic one.
func NewExecutor(auth *Credential, headers map[string]string, opts ...Option) *Executor {
	e := &Executor{
		auth:      auth,
		headers:   headers,
		transport: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.Get("httpclient")
	}
	if e.tracer == nil {
		e.tracer = defaultTracer()
	}
	if e.metrics == nil {
		e.metrics = defaultMetrics()
	}
	return e
}

// outcomeFunc reduces a transport result to the response bytes or an *Error.
type outcomeFunc func(resp *http.Response, err error) ([]byte, error)

// Get issues a GET. A status in [300,600) fails with a status-code error
// whether or not a body came back; otherwise an empty body fails with a
// no-data error.
func (e *Executor) Get(ctx context.Context, url string) ([]byte, error) {
	return e.do(ctx, http.MethodGet, url, nil, "", lenientOutcome)
}

// GetAsync issues a GET and reports the outcome to done.
func (e *Executor) GetAsync(ctx context.Context, url string, done Completion) {
	complete(done, func() ([]byte, error) { return e.Get(ctx, url) })
}

// Post JSON-encodes payload and issues a POST. Only [200,299] succeeds.
//
// Post panics if payload cannot be encoded as JSON.
func (e *Executor) Post(ctx context.Context, url string, payload any) ([]byte, error) {
	return e.postBody(ctx, url, mustEncodeJSON(payload))
}

// PostAsync encodes payload on the calling goroutine, then issues the POST
// and reports the outcome to done.
//
// PostAsync panics if payload cannot be encoded as JSON.
func (e *Executor) PostAsync(ctx context.Context, url string, payload any, done Completion) {
	body := mustEncodeJSON(payload)
	complete(done, func() ([]byte, error) { return e.postBody(ctx, url, body) })
}

func (e *Executor) postBody(ctx context.Context, url string, body []byte) ([]byte, error) {
	return e.do(ctx, http.MethodPost, url, body, "", strictOutcome)
}

// UploadFile posts the file at filePath to destinationURL as a single
// multipart part named "file", using a fresh boundary. The status policy
// matches Get.
func (e *Executor) UploadFile(ctx context.Context, filePath, destinationURL string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, NewFileReadError(filePath, err)
	}
	boundary := NewBoundary()
	body := EncodeMultipartFile(boundary, uploadFileName(filePath), data)
	return e.do(ctx, http.MethodPost, destinationURL, body, MultipartContentType(boundary), lenientOutcome)
}

// UploadFileAsync uploads the file and reports the outcome to done.
func (e *Executor) UploadFileAsync(ctx context.Context, filePath, destinationURL string, done Completion) {
	complete(done, func() ([]byte, error) { return e.UploadFile(ctx, filePath, destinationURL) })
}

// do builds, sends and classifies one request. A non-empty contentType is
// set after the merged headers and cannot be overridden by them.
func (e *Executor) do(ctx context.Context, method, url string, body []byte, contentType string, outcome outcomeFunc) ([]byte, error) {
	ctx, span := e.tracer.Start(ctx, "httpclient."+strings.ToLower(method),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrRequestMethod, method),
			attribute.String(AttrURLFull, url),
		),
	)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		reqErr := NewInvalidRequestError(err)
		endSpan(span, 0, reqErr)
		return nil, reqErr
	}

	var forced map[string]string
	if contentType != "" {
		forced = map[string]string{HeaderContentType: contentType}
	}
	applyHeaders(req, e.defaults, e.auth.headers(), e.headers, forced)
	e.echo(method, url, req.Header)

	start := time.Now()
	resp, err := e.transport.Do(req)
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	data, outErr := outcome(resp, err)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	elapsed := time.Since(start)
	e.metrics.record(ctx, method, outErr, elapsed)
	endSpan(span, statusCode, outErr)

	if outErr != nil && e.log.DebugEnabled() {
		e.log.Debug("request failed", logger.MergeWithDuration(logger.Fields(
			logger.FieldMethod, method,
			logger.FieldURL, url,
			logger.FieldStatus, statusCode,
			logger.FieldError, outErr.Error(),
		), elapsed))
	}
	return data, outErr
}

// echo logs the curl equivalent of the request at debug level, using the
// headers as they will be sent. Credentials are masked.
func (e *Executor) echo(method, url string, wire http.Header) {
	if !e.log.DebugEnabled() {
		return
	}
	headers := make(map[string]string, len(wire))
	for k := range wire {
		headers[k] = wire.Get(k)
	}
	if v, ok := headers[HeaderAuthorization]; ok {
		headers[HeaderAuthorization] = maskCredential(v)
	}
	e.log.Debug("sending request", logger.Fields(
		logger.FieldMethod, method,
		logger.FieldURL, url,
		"curl", CurlCommand(method, url, headers),
	))
}

func maskCredential(v string) string {
	if scheme, _, ok := strings.Cut(v, " "); ok {
		return scheme + " ***"
	}
	return "***"
}

// lenientOutcome is the GET and upload policy.
func lenientOutcome(resp *http.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, NewServiceError(err)
	}
	if resp == nil {
		return nil, NewNoDataError()
	}
	if resp.StatusCode >= 300 && resp.StatusCode < 600 {
		return nil, NewStatusCodeError(resp.StatusCode)
	}
	body, err := readBody(resp)
	if err != nil {
		return nil, NewServiceError(err)
	}
	if len(body) == 0 {
		return nil, NewNoDataError()
	}
	return body, nil
}

// strictOutcome is the POST policy.
func strictOutcome(resp *http.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, NewServiceError(err)
	}
	if resp == nil {
		return nil, NewNoResponseError()
	}
	if resp.StatusCode == 0 {
		return nil, NewFailedResponseParsingError()
	}
	body, err := readBody(resp)
	if err != nil {
		return nil, NewServiceError(err)
	}
	if !utf8.Valid(body) {
		return nil, NewFailedDataParsingError(resp.StatusCode, body)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewWrongStatusCodeError(resp.StatusCode, body)
	}
	if body == nil {
		body = []byte{}
	}
	return body, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// mustEncodeJSON encodes a POST payload. An unencodable payload is a
// programming error.
func mustEncodeJSON(payload any) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(fmt.Errorf("httpclient: encode POST payload: %w", err))
	}
	return data
}
