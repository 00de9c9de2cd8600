package markup

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
)

func BenchmarkParseSentence(b *testing.B) {
	const in = "The *quick*, ~red~ brown fox jumps over a _*lazy dog*_."
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Parse(in)
	}
}

func BenchmarkScanner(b *testing.B) {
	in := strings.Repeat("a *b* _c_ ~d~ snake_case ", 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewScanner(in)
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkRenderFormats(b *testing.B) {
	data := mustReadSample(b, "testdata/edge_cases.txt")
	data = bytes.Repeat(data, 50)
	for _, name := range Formats() {
		format, _ := ParseFormat(name)
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			reader := bytes.NewReader(data)
			for i := 0; i < b.N; i++ {
				reader.Reset(data)
				_ = Render(RenderRequest{
					Reader: reader,
					Writer: io.Discard,
					Format: format,
					Width:  80,
					Theme:  DefaultTheme(),
				})
			}
		})
	}
}

func BenchmarkParseCrossingDepth(b *testing.B) {
	for _, n := range []int{10, 1000, 10000} {
		in := strings.Repeat("*a _b* ", n)
		b.Run("n"+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Parse(in)
			}
		})
	}
}

func BenchmarkRenderBatch(b *testing.B) {
	data := mustReadSample(b, "testdata/sentence.txt")
	inputs := make([][]byte, 64)
	for i := range inputs {
		inputs[i] = data
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderBatch(context.Background(), BatchRequest{Inputs: inputs, Limit: 8}); err != nil {
			b.Fatalf("render batch: %v", err)
		}
	}
}

func BenchmarkHTTPRender(b *testing.B) {
	data := mustReadSample(b, "testdata/sentence.txt")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := HTTPRender(context.Background(), HTTPRenderRequest{
			URL:    server.URL,
			Writer: io.Discard,
		}); err != nil {
			b.Fatalf("http render: %v", err)
		}
	}
}

func mustReadSample(b *testing.B, path string) []byte {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return data
}
