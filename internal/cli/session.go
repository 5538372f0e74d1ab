package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/resttools/config"
	"github.com/kbukum/resttools/httpclient"
	"github.com/kbukum/resttools/httpclient/rest"
	"github.com/kbukum/resttools/logger"
	"github.com/kbukum/resttools/observability"
	"github.com/kbukum/resttools/version"
)

// Config is the restcall configuration file layout.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	REST                 rest.Config          `yaml:"rest" mapstructure:"rest"`
	Telemetry            observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

const (
	// httpLoggerName is the registry name the executor looks its logger up by.
	httpLoggerName  = "httpclient"
	headerUserAgent = "User-Agent"
)

// session holds what one command invocation needs.
type session struct {
	cfg      Config
	client   *rest.Client
	log      *logger.Logger
	shutdown observability.ShutdownFunc
}

func openSession(ctx context.Context, f *rootFlags) (*session, error) {
	cfg, err := loadConfig(f)
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent(appName)

	shutdown, err := observability.Setup(ctx, cfg.Name, cfg.Environment, cfg.Telemetry)
	if err != nil {
		return nil, usageErrorf("telemetry: %w", err)
	}

	logger.Register(httpLoggerName, logger.WithComponent(httpLoggerName))

	client, err := rest.NewFromConfig(cfg.REST)
	if err != nil {
		_ = shutdown(ctx)
		return nil, usageErrorf("%w", err)
	}
	if !hasHeader(client.Headers, headerUserAgent) {
		client.Headers = httpclient.MergeHeaders(map[string]string{
			headerUserAgent: version.UserAgent(appName),
		}, client.Headers)
	}

	log.Debug("session ready", logger.Fields(
		"base_url", client.BaseURL(),
		"auth", client.Auth() != nil,
		"environment", cfg.Environment,
	))
	return &session{cfg: cfg, client: client, log: log, shutdown: shutdown}, nil
}

// close flushes telemetry. It does not use the command context, which may
// already be cancelled.
func (s *session) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.shutdown(ctx); err != nil {
		s.log.Warn("telemetry shutdown failed", logger.Fields(logger.FieldError, err.Error()))
	}
}

func loadConfig(f *rootFlags) (Config, error) {
	var cfg Config
	var opts []config.LoaderOption
	if f.ConfigFile != "" {
		opts = append(opts, config.WithConfigFile(f.ConfigFile))
	}
	if f.EnvFile != "" {
		opts = append(opts, config.WithEnvFile(f.EnvFile))
	}
	if err := config.LoadConfig(appName, &cfg, opts...); err != nil {
		return cfg, usageErrorf("%w", err)
	}

	headers, err := parseHeaders(f.Headers)
	if err != nil {
		return cfg, err
	}
	applyFlags(&cfg, f, headers)

	if cfg.Name == "" {
		cfg.Name = appName
	}
	if cfg.Telemetry.ServiceVersion == "" {
		cfg.Telemetry.ServiceVersion = version.Get().Short()
	}
	cfg.ApplyDefaults()
	if err := cfg.ServiceConfig.Validate(); err != nil {
		return cfg, usageErrorf("%w", err)
	}
	return cfg, nil
}

func applyFlags(cfg *Config, f *rootFlags, headers map[string]string) {
	if f.BaseURL != "" {
		cfg.REST.BaseURL = f.BaseURL
	}
	if f.User != "" {
		cfg.REST.Username = f.User
	}
	if f.Password != "" {
		cfg.REST.Password = f.Password
	}
	if len(headers) > 0 {
		cfg.REST.Headers = httpclient.MergeHeaders(cfg.REST.Headers, headers)
	}
	if f.Debug {
		cfg.Debug = true
	}
}

// parseHeaders parses "Name: value" flags.
func parseHeaders(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	headers := make(map[string]string, len(raw))
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, usageErrorf("invalid header %q: want \"Name: value\"", h)
		}
		headers[name] = strings.TrimSpace(value)
	}
	return headers, nil
}

func isAbsoluteURL(target string) bool {
	lower := strings.ToLower(target)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}
