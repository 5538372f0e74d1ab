// Package cli implements the restcall command.
package cli
