package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"pkt.systems/markup"
	"pkt.systems/version"
)

const (
	defaultFormat    = "auto"
	defaultThemeName = "default"
	defaultWidth     = 80
	envPrefix        = "MARKUP"
)

var errColor = color.New(color.FgRed, color.Bold)

func init() {
	version.SetDefaultModule("pkt.systems/markup")
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	color.NoColor = !isTerminal(stderr)

	flags := pflag.NewFlagSet("markup", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringP("format", "f", defaultFormat, "Output format: auto|"+strings.Join(markup.Formats(), "|"))
	flags.StringP("theme", "t", defaultThemeName, "Theme name for ansi output")
	flags.IntP("width", "w", 0, "Wrap width for ansi/text output (0 uses terminal width if available)")
	flags.StringP("output", "o", "", "Output file instead of stdout")
	flags.String("front-matter", "strip", "Front matter handling: strip|keep")
	flags.IntP("jobs", "j", 0, "Max inputs rendered in parallel (0 renders all at once)")
	flags.String("config", "", "Config file (defaults to markup.yaml in . or the user config dir)")
	flags.Bool("list-themes", false, "List available themes")
	flags.Bool("debug", false, "Log scanner and parser decisions to stderr")
	flags.Bool("version", false, "Print version and exit")
	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: markup [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nIf no input is provided, text is read from stdin. Each input is rendered as a")
		fmt.Fprintln(stderr, "separate document. Every flag may also be set as "+envPrefix+"_<FLAG> in the environment.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	v, err := loadConfig(flags)
	if err != nil {
		errorf(stderr, "config: %v", err)
		return 2
	}

	if v.GetBool("version") {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if v.GetBool("list-themes") {
		printThemes(stdout)
		return 0
	}

	logger := newLogger(stderr, v.GetBool("debug"))

	themeName := v.GetString("theme")
	theme, ok := markup.ThemeByName(themeName)
	if !ok {
		errorf(stderr, "unknown theme %q", themeName)
		fmt.Fprintln(stderr)
		printThemes(stderr)
		return 2
	}
	frontMatter, err := resolveFrontMatter(v.GetString("front-matter"))
	if err != nil {
		errorf(stderr, "invalid --front-matter %q: %v", v.GetString("front-matter"), err)
		return 2
	}

	inputs, err := readInputs(ctx, flags.Args(), stdin)
	if err != nil {
		errorf(stderr, "open input: %v", err)
		return 1
	}

	writer, closeOut, err := resolveOutput(v.GetString("output"), stdout)
	if err != nil {
		errorf(stderr, "open output: %v", err)
		return 1
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	format, err := resolveFormat(v.GetString("format"), writer)
	if err != nil {
		errorf(stderr, "invalid --format: %v", err)
		return 2
	}

	logger.Debug().Stringer("format", format).Str("theme", theme.Name()).Int("inputs", len(inputs)).Msg("rendering")
	outs, err := markup.RenderBatch(ctx, markup.BatchRequest{
		Inputs: inputs,
		Format: format,
		Width:  resolveWidth(v.GetInt("width")),
		Theme:  theme,
		Limit:  v.GetInt("jobs"),
		Options: []markup.Option{
			markup.WithTrace(logger),
			markup.WithFrontMatter(frontMatter),
		},
	})
	if err != nil {
		errorf(stderr, "render: %v", err)
		return 1
	}
	for _, out := range outs {
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		if _, err := io.WriteString(writer, out); err != nil {
			errorf(stderr, "write: %v", err)
			return 1
		}
	}
	return 0
}

// loadConfig layers flags over MARKUP_* environment variables over an
// optional config file.
func loadConfig(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	if path, _ := flags.GetString("config"); strings.TrimSpace(path) != "" {
		v.SetConfigFile(normalizePath(path))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
		return v, nil
	}
	v.SetConfigName("markup")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "markup"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}
	return zerolog.New(out).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

func errorf(w io.Writer, format string, args ...any) {
	_, _ = errColor.Fprintf(w, format+"\n", args...)
}

func printThemes(w io.Writer) {
	for _, name := range markup.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveFormat(name string, w io.Writer) (markup.Format, error) {
	if strings.EqualFold(strings.TrimSpace(name), "auto") || strings.TrimSpace(name) == "" {
		if isTerminal(w) {
			return markup.FormatANSI, nil
		}
		return markup.FormatHTML, nil
	}
	return markup.ParseFormat(name)
}

func resolveFrontMatter(mode string) (markup.FrontMatterMode, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "strip":
		return markup.FrontMatterStrip, nil
	case "keep":
		return markup.FrontMatterKeep, nil
	default:
		return markup.FrontMatterStrip, fmt.Errorf("expected strip|keep")
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type inputSource struct {
	name string
	open func(ctx context.Context) (io.ReadCloser, error)
}

// readInputs reads every argument fully. With no arguments stdin is the
// only input.
func readInputs(ctx context.Context, args []string, stdin io.Reader) ([][]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return [][]byte{data}, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	out := make([][]byte, 0, len(sources))
	for _, src := range sources {
		rc, err := src.open(ctx)
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src.name, err)
		}
		out = append(out, data)
	}
	return out, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{name: raw, open: func(ctx context.Context) (io.ReadCloser, error) {
				return openURL(ctx, raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{name: path, open: func(context.Context) (io.ReadCloser, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{name: raw, open: func(context.Context) (io.ReadCloser, error) {
		return openFile(raw)
	}}, nil
}

func openURL(ctx context.Context, raw string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, raw, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(normalizePath(path))
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
