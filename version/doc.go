// Package version reports build information for resttools binaries.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/resttools/version.Version=1.4.0" ./cmd/restcall
//
// Unset values fall back to the VCS stamp in the binary's build info.
package version
