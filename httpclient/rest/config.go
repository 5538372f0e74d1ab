package rest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/kbukum/resttools/httpclient"
	"github.com/kbukum/resttools/security"
	"github.com/kbukum/resttools/validation"
)

// Config describes a client in configuration files.
type Config struct {
	// BaseURL is the URL relative paths are appended to. Include the
	// trailing slash if relative paths omit the leading one.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	// Username enables Basic auth when set.
	Username string `yaml:"username" mapstructure:"username" validate:"required_with=Password"`
	// Password is sent with Username.
	Password string `yaml:"password" mapstructure:"password"`
	// Headers are sent with every request.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
	// TLS customizes server verification and client certificates.
	TLS security.TLSConfig `yaml:"tls" mapstructure:"tls" validate:"-"`
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	v := validation.New().
		Merge("rest", validation.Struct(c)).
		Merge("tls", c.TLS.Validate())
	for name, value := range c.Headers {
		v.Custom(strings.TrimSpace(name) != "" && !strings.ContainsAny(name, ": \t\r\n"),
			"headers", "invalid header name "+strings.TrimSpace(name))
		v.Custom(!strings.ContainsAny(value, "\r\n"),
			"headers."+name, "must not contain line breaks")
	}
	return v.Err()
}

// Credential returns the Basic credential, or nil when no username is set.
func (c *Config) Credential() *httpclient.Credential {
	if c.Username == "" {
		return nil
	}
	return httpclient.BasicAuth(c.Username, c.Password)
}

// NewFromConfig validates cfg and creates a client from it. opts are
// applied after the configured values, so WithTransport replaces the
// TLS-configured transport.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := []Option{WithAuth(cfg.Credential())}
	if len(cfg.Headers) > 0 {
		base = append(base, WithHeaders(cfg.Headers))
	}

	tr, err := cfg.TLS.Transport()
	if err != nil {
		return nil, fmt.Errorf("rest: %w", err)
	}
	if tr != nil {
		base = append(base, WithTransport(&http.Client{Transport: tr}))
	}
	return New(cfg.BaseURL, append(base, opts...)...), nil
}
