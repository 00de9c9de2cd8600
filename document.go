package markup

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// Document is a parsed input together with its front matter, if any.
type Document struct {
	FrontMatter *FrontMatter
	Nodes       []Node
}

// ParseDocument validates src, splits off and decodes a leading front matter
// block (unless WithFrontMatter(FrontMatterKeep) is given) and parses the
// rest.
func ParseDocument(src []byte, opts ...Option) (Document, error) {
	return parseDocument(src, newConfig(opts))
}

func parseDocument(src []byte, cfg config) (Document, error) {
	if err := ValidateInput(src); err != nil {
		return Document{}, err
	}
	var doc Document
	body := src
	if cfg.frontMatter == FrontMatterStrip {
		if fm, rest, ok := splitFrontMatter(src); ok {
			if err := fm.decode(); err != nil {
				return Document{}, err
			}
			doc.FrontMatter = &fm
			body = rest
		}
	}
	doc.Nodes = Parse(string(body), WithTrace(cfg.trace))
	return doc, nil
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Format  Format
	Width   int
	Theme   Theme
	Options []Option
}

// Render reads the whole of Reader, renders it in Format and writes the
// result to Writer.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	out, err := renderDocument(src, req.Format, requestOptions(req.Width, req.Theme, req.Options))
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}

// BatchRequest configures RenderBatch.
type BatchRequest struct {
	Inputs [][]byte
	Format Format
	Width  int
	Theme  Theme
	// Limit caps the number of inputs rendered at once. Zero means no limit.
	Limit   int
	Options []Option
}

// RenderBatch renders each input as an independent document, in parallel.
// Outputs are returned in input order. The first failure cancels the
// remaining work and is returned.
func RenderBatch(ctx context.Context, req BatchRequest) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := requestOptions(req.Width, req.Theme, req.Options)
	out := make([]string, len(req.Inputs))
	g, ctx := errgroup.WithContext(ctx)
	if req.Limit > 0 {
		g.SetLimit(req.Limit)
	}
	for i, src := range req.Inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rendered, err := renderDocument(src, req.Format, opts)
			if err != nil {
				return fmt.Errorf("render batch: input %d: %w", i, err)
			}
			out[i] = rendered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func renderDocument(src []byte, format Format, opts []Option) (string, error) {
	doc, err := parseDocument(src, newConfig(opts))
	if err != nil {
		return "", err
	}
	return NewRenderer(format, opts...).RenderNodes(doc.Nodes), nil
}

// requestOptions puts explicit request fields ahead of opts so that opts
// take precedence.
func requestOptions(width int, theme Theme, opts []Option) []Option {
	out := make([]Option, 0, len(opts)+2)
	if width > 0 {
		out = append(out, WithWidth(width))
	}
	if theme != nil {
		out = append(out, WithTheme(theme))
	}
	return append(out, opts...)
}
