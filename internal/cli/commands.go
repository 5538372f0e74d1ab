package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/resttools/httpclient/rest"
	"github.com/kbukum/resttools/observability"
	"github.com/kbukum/resttools/version"
)

type requestFunc func(ctx context.Context, c *rest.Client) ([]byte, error)

func newGetCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path|url>",
		Short: "GET a resource",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			return runRequest(cmd, f, "get", target, func(ctx context.Context, c *rest.Client) ([]byte, error) {
				if isAbsoluteURL(target) {
					return c.GetURL(ctx, target)
				}
				return c.Get(ctx, target)
			})
		},
	}
}

func newPostCmd(f *rootFlags) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "post <path|url>",
		Short: "POST a JSON body",
		Long: `POST a JSON body.

--data takes inline JSON, @file to read a file, or - to read stdin.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(data, cmd.InOrStdin())
			if err != nil {
				return err
			}
			target := args[0]
			return runRequest(cmd, f, "post", target, func(ctx context.Context, c *rest.Client) ([]byte, error) {
				if isAbsoluteURL(target) {
					return c.PostURL(ctx, target, payload)
				}
				return c.Post(ctx, target, payload)
			})
		},
	}
	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON body, @file or - for stdin")
	_ = cmd.MarkFlagRequired("data")
	return cmd
}

func newUploadCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file> <path|url>",
		Short: "Upload a file as multipart form data",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, target := args[0], args[1]
			return runRequest(cmd, f, "upload", target, func(ctx context.Context, c *rest.Client) ([]byte, error) {
				if isAbsoluteURL(target) {
					return c.UploadFileURL(ctx, file, target)
				}
				return c.UploadFile(ctx, file, target)
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			_, err := fmt.Fprintf(out, "%s %s\n", appName, info)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func runRequest(cmd *cobra.Command, f *rootFlags, name, target string, call requestFunc) error {
	ctx := cmd.Context()
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	s, err := openSession(ctx, f)
	if err != nil {
		return err
	}
	defer s.close()

	ctx, op := observability.StartOperation(ctx, appName+"."+name, attribute.String("target", target))
	data, err := call(ctx, s.client)
	op.End(err)
	if err != nil {
		return err
	}
	return writeBody(cmd.OutOrStdout(), data, f.Pretty)
}

// readPayload resolves a --data value to a JSON document.
func readPayload(data string, stdin io.Reader) (json.RawMessage, error) {
	var raw []byte
	switch {
	case data == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = b
	case strings.HasPrefix(data, "@"):
		b, err := os.ReadFile(data[1:])
		if err != nil {
			return nil, usageErrorf("read --data file: %w", err)
		}
		raw = b
	default:
		raw = []byte(data)
	}

	raw = bytes.TrimSpace(raw)
	if !json.Valid(raw) {
		return nil, usageErrorf("--data is not valid JSON")
	}
	return json.RawMessage(raw), nil
}

func writeBody(w io.Writer, data []byte, pretty bool) error {
	if pretty && json.Valid(data) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err == nil {
			data = buf.Bytes()
		}
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
