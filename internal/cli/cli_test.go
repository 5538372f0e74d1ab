package cli

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/kbukum/resttools/httpclient"
	"github.com/kbukum/resttools/logger"
	"github.com/kbukum/resttools/validation"
)

func fakeJira(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/rest/api/2/myself", func(c *gin.Context) {
		user, _, ok := c.Request.BasicAuth()
		if !ok {
			c.Status(http.StatusUnauthorized)
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": user, "team": c.GetHeader("X-Team"), "agent": c.GetHeader("User-Agent")})
	})
	r.POST("/rest/api/2/issue", func(c *gin.Context) {
		var in map[string]any
		if err := c.ShouldBindJSON(&in); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"key": "ABC-1", "fields": in})
	})
	r.POST("/rest/api/2/issue/:key/attachments", func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusOK, []gin.H{{"filename": fh.Filename}})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// execute runs restcall with an empty config file so the working
// directory's files cannot leak in.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "restcall.yml")
	if err := os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfgPath, "--env-file", filepath.Join(dir, "none.env")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGetCommand(t *testing.T) {
	srv := fakeJira(t)
	out, err := execute(t,
		"--base-url", srv.URL+"/",
		"--user", "bot", "--password", "token",
		"-H", "X-Team: infra",
		"get", "rest/api/2/myself",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"name":"bot"`) || !strings.Contains(out, `"team":"infra"`) {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, `"agent":"restcall/`) {
		t.Errorf("expected restcall user agent, got %q", out)
	}
}

func TestGetCommand_UserAgentOverride(t *testing.T) {
	srv := fakeJira(t)
	out, err := execute(t,
		"--base-url", srv.URL+"/",
		"-u", "bot", "-p", "token",
		"-H", "user-agent: jira-sync/2.0",
		"get", "rest/api/2/myself",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"agent":"jira-sync/2.0"`) {
		t.Errorf("configured user agent should win, got %q", out)
	}
}

func TestSession_RegistersHTTPLogger(t *testing.T) {
	t.Cleanup(func() { logger.Unregister(httpLoggerName) })
	srv := fakeJira(t)

	if _, err := execute(t, "--base-url", srv.URL+"/", "-u", "bot", "-p", "token", "get", "rest/api/2/myself"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unregistered names get a fresh component logger on every lookup.
	if logger.Get(httpLoggerName) != logger.Get(httpLoggerName) {
		t.Error("expected the session to register the httpclient logger")
	}
}

func TestGetCommand_AbsoluteURL(t *testing.T) {
	srv := fakeJira(t)
	out, err := execute(t,
		"--base-url", "https://unused.example.com/",
		"-u", "bot", "-p", "token",
		"get", srv.URL+"/rest/api/2/myself",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"name":"bot"`) {
		t.Errorf("output = %q", out)
	}
}

func TestGetCommand_StatusExitCodes(t *testing.T) {
	srv := fakeJira(t)

	_, err := execute(t, "--base-url", srv.URL+"/", "get", "rest/api/2/myself")
	if ExitCode(err) != exitAuth {
		t.Errorf("unauthenticated: ExitCode(%v) = %d", err, ExitCode(err))
	}

	_, err = execute(t, "--base-url", srv.URL+"/", "get", "rest/api/2/nothing")
	if ExitCode(err) != exitNotFound {
		t.Errorf("missing: ExitCode(%v) = %d", err, ExitCode(err))
	}
}

func TestPostCommand(t *testing.T) {
	srv := fakeJira(t)
	out, err := execute(t,
		"--base-url", srv.URL+"/", "--pretty",
		"post", "rest/api/2/issue", "--data", `{"summary": "flaky build"}`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "{\n  \"fields\": {\n    \"summary\": \"flaky build\"\n  },\n  \"key\": \"ABC-1\"\n}\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestPostCommand_DataFile(t *testing.T) {
	srv := fakeJira(t)
	path := filepath.Join(t.TempDir(), "issue.json")
	if err := os.WriteFile(path, []byte(`{"summary":"from file"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--base-url", srv.URL+"/", "post", "rest/api/2/issue", "-d", "@"+path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "from file") {
		t.Errorf("output = %q", out)
	}
}

func TestPostCommand_InvalidJSON(t *testing.T) {
	_, err := execute(t, "--base-url", "https://jira.example.com/", "post", "issue", "--data", "{nope")
	if ExitCode(err) != exitUsage {
		t.Fatalf("ExitCode(%v) = %d, want usage", err, ExitCode(err))
	}
}

func TestUploadCommand(t *testing.T) {
	srv := fakeJira(t)
	path := filepath.Join(t.TempDir(), "build.log")
	if err := os.WriteFile(path, []byte("ok\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "--base-url", srv.URL+"/", "upload", path, "rest/api/2/issue/ABC-1/attachments")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != `[{"filename":"build.log"}]` {
		t.Errorf("output = %q", out)
	}
}

func TestUploadCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "--base-url", "https://jira.example.com/", "upload", "/nonexistent/file", "attachments")
	if !httpclient.IsFileRead(err) || ExitCode(err) != exitUsage {
		t.Fatalf("expected file read usage error, got %v", err)
	}
}

func TestMissingBaseURL(t *testing.T) {
	_, err := execute(t, "get", "rest/api/2/myself")
	if ExitCode(err) != exitUsage {
		t.Fatalf("ExitCode(%v) = %d, want usage", err, ExitCode(err))
	}
}

func TestWrongArgCount(t *testing.T) {
	_, err := execute(t, "upload", "only-one")
	if ExitCode(err) != exitUsage {
		t.Fatalf("ExitCode(%v) = %d, want usage", err, ExitCode(err))
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "restcall ") {
		t.Errorf("output = %q", out)
	}

	out, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"version"`) {
		t.Errorf("output = %q", out)
	}
}

func TestLoadConfig_FileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restcall.yml")
	yaml := `
environment: staging
rest:
  base_url: https://file.example.com/
  username: file-user
  headers:
    X-Team: infra
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(&rootFlags{
		ConfigFile: path,
		User:       "flag-user",
		Headers:    []string{"X-Trace: on"},
		Debug:      true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != appName || cfg.Environment != "staging" {
		t.Errorf("service config = %+v", cfg.ServiceConfig)
	}
	if cfg.REST.BaseURL != "https://file.example.com/" || cfg.REST.Username != "flag-user" {
		t.Errorf("rest config = %+v", cfg.REST)
	}
	if cfg.REST.Headers["x-team"] != "infra" || cfg.REST.Headers["X-Trace"] != "on" {
		t.Errorf("headers = %v", cfg.REST.Headers)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q", cfg.Logging.Level)
	}
	if cfg.Telemetry.ServiceVersion == "" {
		t.Error("expected telemetry service version")
	}
}

func TestParseHeaders(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    map[string]string
		wantErr bool
	}{
		{"none", nil, nil, false},
		{"trimmed", []string{"Accept:  text/plain "}, map[string]string{"Accept": "text/plain"}, false},
		{"colon in value", []string{"X-When: 10:30"}, map[string]string{"X-When": "10:30"}, false},
		{"empty value", []string{"X-Empty:"}, map[string]string{"X-Empty": ""}, false},
		{"missing colon", []string{"Accept"}, nil, true},
		{"missing name", []string{": v"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHeaders(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHeaders() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseHeaders() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestReadPayload(t *testing.T) {
	got, err := readPayload("-", strings.NewReader(" {\"a\":1}\n"))
	if err != nil || string(got) != `{"a":1}` {
		t.Errorf("stdin payload = %q, %v", got, err)
	}
	if _, err := readPayload("@/nonexistent.json", nil); ExitCode(err) != exitUsage {
		t.Errorf("missing file: %v", err)
	}
}

func TestIsAbsoluteURL(t *testing.T) {
	for target, want := range map[string]bool{
		"https://jira.example.com/x": true,
		"HTTP://jira":                true,
		"rest/api/2/myself":          false,
		"/rest":                      false,
	} {
		if got := isAbsoluteURL(target); got != want {
			t.Errorf("isAbsoluteURL(%q) = %v", target, got)
		}
	}
}

func TestWriteBody(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBody(&buf, []byte("plain"), true); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "plain\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"help", pflag.ErrHelp, exitOK},
		{"usage", usageErrorf("bad flag"), exitUsage},
		{"validation", &validation.Error{Fields: []validation.FieldError{{Field: "base_url", Message: "is required"}}}, exitUsage},
		{"network", httpclient.NewServiceError(errors.New("refused")), exitNetwork},
		{"unauthorized", httpclient.NewStatusCodeError(401), exitAuth},
		{"forbidden post", httpclient.NewWrongStatusCodeError(403, nil), exitAuth},
		{"not found", httpclient.NewStatusCodeError(404), exitNotFound},
		{"server", httpclient.NewWrongStatusCodeError(502, []byte("bad gateway")), exitServer},
		{"conflict", httpclient.NewWrongStatusCodeError(409, nil), exitGeneric},
		{"no data", httpclient.NewNoDataError(), exitGeneric},
		{"other", errors.New("boom"), exitGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
