package cli

import (
	"errors"
	"net/http"

	"github.com/spf13/pflag"

	"github.com/kbukum/resttools/httpclient"
	"github.com/kbukum/resttools/validation"
)

const (
	exitOK       = 0
	exitGeneric  = 1
	exitUsage    = 2
	exitAuth     = 3
	exitNotFound = 4
	exitServer   = 7
	exitNetwork  = 8
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}

	var uerr *usageError
	var verr *validation.Error
	if errors.As(err, &uerr) || errors.As(err, &verr) || httpclient.IsFileRead(err) {
		return exitUsage
	}
	if httpclient.IsServiceError(err) {
		return exitNetwork
	}
	if code, ok := httpclient.StatusCodeOf(err); ok {
		switch {
		case code == http.StatusUnauthorized || code == http.StatusForbidden:
			return exitAuth
		case code == http.StatusNotFound:
			return exitNotFound
		case code >= 500:
			return exitServer
		}
	}
	return exitGeneric
}
