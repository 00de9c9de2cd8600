package markup

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("+++\ntitle = \"remote\"\n+++\nfrom *afar*"))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL,
		Client: srv.Client(),
		Writer: &out,
	})
	require.NoError(t, err)
	require.Equal(t, "from <strong>afar</strong>", out.String())
}

func TestHTTPRenderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{URL: srv.URL, Writer: &out})
	require.EqualError(t, err, "http render: status 404 Not Found")
	require.Zero(t, out.Len())
}

func TestHTTPRenderValidatesRequest(t *testing.T) {
	var out bytes.Buffer
	require.EqualError(t, HTTPRender(context.Background(), HTTPRenderRequest{Writer: &out}), "http render: URL is required")
	require.EqualError(t, HTTPRender(context.Background(), HTTPRenderRequest{URL: "http://x"}), "http render: Writer is nil")
	require.EqualError(t,
		HTTPRender(context.Background(), HTTPRenderRequest{URL: "ftp://example.com/a.txt", Writer: &out}),
		`http render: unsupported scheme "ftp"`)
}
