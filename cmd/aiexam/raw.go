package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyencmc/app-exam-test-online-sub002/client"
)

// newRawCmd exposes one HTTP verb of the SDK pipeline directly:
//
//	aiexam get /courses
//	aiexam post /exams/ielts-r1/attempts --data '{"answers":[]}'
func newRawCmd(opts *rootOptions, verb string) *cobra.Command {
	var (
		data      string
		headers   []string
		noContent bool
	)
	method := strings.ToUpper(verb)
	takesBody := method == http.MethodPost || method == http.MethodPut

	cmd := &cobra.Command{
		Use:   verb + " <endpoint>",
		Short: fmt.Sprintf("Send a raw %s request to the API", method),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if takesBody && data != "" {
				if !json.Valid([]byte(data)) {
					return errors.New("--data is not valid JSON")
				}
				body = json.RawMessage(data)
			}
			reqOpts, err := headerOptions(headers)
			if err != nil {
				return err
			}

			return opts.withClient(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				if noContent {
					_, err := send[client.NoContent](ctx, c, method, args[0], body, reqOpts)
					return err
				}
				out, err := send[json.RawMessage](ctx, c, method, args[0], body, reqOpts)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}

	if takesBody {
		cmd.Flags().StringVar(&data, "data", "", "JSON request body")
	}
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Extra request header as Key=Value (repeatable)")
	cmd.Flags().BoolVar(&noContent, "no-content", false, "Expect an empty response body (e.g. 204)")
	return cmd
}

func send[T any](ctx context.Context, c *client.Client, method, endpoint string, body any, opts []client.RequestOption) (T, error) {
	switch method {
	case http.MethodPost:
		return client.Post[T](ctx, c, endpoint, body, opts...)
	case http.MethodPut:
		return client.Put[T](ctx, c, endpoint, body, opts...)
	case http.MethodDelete:
		return client.Delete[T](ctx, c, endpoint, opts...)
	default:
		return client.Get[T](ctx, c, endpoint, opts...)
	}
}

func headerOptions(kvs []string) ([]client.RequestOption, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	h := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid header %q, want Key=Value", kv)
		}
		h[strings.TrimSpace(k)] = v
	}
	return []client.RequestOption{client.WithHeaders(h)}, nil
}

func printJSON(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
