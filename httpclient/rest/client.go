package rest

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/resttools/httpclient"
	"github.com/kbukum/resttools/logger"
)

// HeaderAtlassianToken disables XSRF checks on Atlassian upload endpoints.
const HeaderAtlassianToken = "X-Atlassian-Token"

// Client is a REST client bound to one base URL.
//
// Headers may be reassigned between calls but must not be modified while
// requests are in flight.
type Client struct {
	// Headers are applied on top of each operation's default headers.
	Headers map[string]string

	baseURL  string
	auth     *httpclient.Credential
	execOpts []httpclient.Option
}

// Option configures a Client.
type Option func(*Client)

// WithAuth sets Basic credentials for every request.
func WithAuth(auth *httpclient.Credential) Option {
	return func(c *Client) { c.auth = auth }
}

// WithHeaders sets the client's custom headers.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) { c.Headers = headers }
}

// WithTransport sets the transport requests are sent through.
func WithTransport(d httpclient.Doer) Option {
	return func(c *Client) { c.execOpts = append(c.execOpts, httpclient.WithTransport(d)) }
}

// WithLogger sets the logger used for debug request echoes.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.execOpts = append(c.execOpts, httpclient.WithLogger(l)) }
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) { c.execOpts = append(c.execOpts, httpclient.WithTracer(t)) }
}

// WithMetrics sets the request instruments.
func WithMetrics(m *httpclient.Metrics) Option {
	return func(c *Client) { c.execOpts = append(c.execOpts, httpclient.WithMetrics(m)) }
}

// New creates a client for baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: baseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the URL relative paths are appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Auth returns the client's credentials, or nil.
func (c *Client) Auth() *httpclient.Credential {
	return c.auth
}

// FullURL appends relativeURL to the base URL.
func (c *Client) FullURL(relativeURL string) string {
	return c.baseURL + relativeURL
}

// Get issues a GET to a URL relative to the base URL.
func (c *Client) Get(ctx context.Context, relativeURL string) ([]byte, error) {
	return c.GetURL(ctx, c.FullURL(relativeURL))
}

// GetURL issues a GET to an absolute URL.
func (c *Client) GetURL(ctx context.Context, fullURL string) ([]byte, error) {
	return c.executor(jsonHeaders()).Get(ctx, fullURL)
}

// GetAsync is the asynchronous form of Get.
func (c *Client) GetAsync(ctx context.Context, relativeURL string, done httpclient.Completion) {
	c.GetURLAsync(ctx, c.FullURL(relativeURL), done)
}

// GetURLAsync is the asynchronous form of GetURL.
func (c *Client) GetURLAsync(ctx context.Context, fullURL string, done httpclient.Completion) {
	c.executor(jsonHeaders()).GetAsync(ctx, fullURL, done)
}

// Post sends payload as JSON to a URL relative to the base URL.
// It panics if payload cannot be encoded.
func (c *Client) Post(ctx context.Context, relativeURL string, payload any) ([]byte, error) {
	return c.PostURL(ctx, c.FullURL(relativeURL), payload)
}

// PostURL sends payload as JSON to an absolute URL.
// It panics if payload cannot be encoded.
func (c *Client) PostURL(ctx context.Context, fullURL string, payload any) ([]byte, error) {
	return c.executor(jsonHeaders()).Post(ctx, fullURL, payload)
}

// PostAsync is the asynchronous form of Post.
func (c *Client) PostAsync(ctx context.Context, relativeURL string, payload any, done httpclient.Completion) {
	c.PostURLAsync(ctx, c.FullURL(relativeURL), payload, done)
}

// PostURLAsync is the asynchronous form of PostURL.
func (c *Client) PostURLAsync(ctx context.Context, fullURL string, payload any, done httpclient.Completion) {
	c.executor(jsonHeaders()).PostAsync(ctx, fullURL, payload, done)
}

// UploadFile uploads the file at filePath to a path relative to the base URL.
func (c *Client) UploadFile(ctx context.Context, filePath, relativeDestination string) ([]byte, error) {
	return c.UploadFileURL(ctx, filePath, c.FullURL(relativeDestination))
}

// UploadFileURL uploads the file at filePath to an absolute URL.
func (c *Client) UploadFileURL(ctx context.Context, filePath, fullDestination string) ([]byte, error) {
	return c.executor(uploadHeaders()).UploadFile(ctx, filePath, fullDestination)
}

// UploadFileAsync is the asynchronous form of UploadFile.
func (c *Client) UploadFileAsync(ctx context.Context, filePath, relativeDestination string, done httpclient.Completion) {
	c.UploadFileURLAsync(ctx, filePath, c.FullURL(relativeDestination), done)
}

// UploadFileURLAsync is the asynchronous form of UploadFileURL.
func (c *Client) UploadFileURLAsync(ctx context.Context, filePath, fullDestination string, done httpclient.Completion) {
	c.executor(uploadHeaders()).UploadFileAsync(ctx, filePath, fullDestination, done)
}

// executor builds the per-call executor. The method defaults go on as their
// own layer so c.Headers replaces them even when names differ in case.
func (c *Client) executor(defaults map[string]string) *httpclient.Executor {
	opts := make([]httpclient.Option, 0, len(c.execOpts)+1)
	opts = append(opts, httpclient.WithDefaultHeaders(defaults))
	opts = append(opts, c.execOpts...)
	return httpclient.NewExecutor(c.auth, c.Headers, opts...)
}

func jsonHeaders() map[string]string {
	return map[string]string{
		httpclient.HeaderContentType: httpclient.ContentTypeJSON,
		httpclient.HeaderAccept:      httpclient.ContentTypeJSON,
	}
}

func uploadHeaders() map[string]string {
	return map[string]string{
		httpclient.HeaderAccept: httpclient.ContentTypeJSON,
		HeaderAtlassianToken:    "nocheck",
	}
}
