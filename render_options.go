package markup

import "github.com/rs/zerolog"

// Option configures parsing and rendering behavior.
type Option func(*config)

// FrontMatterMode selects how a leading front matter block is handled.
type FrontMatterMode uint8

const (
	// FrontMatterStrip removes a front matter block and decodes it.
	FrontMatterStrip FrontMatterMode = iota
	// FrontMatterKeep treats a front matter block as ordinary text.
	FrontMatterKeep
)

type config struct {
	tags        TagSet
	theme       Theme
	width       int
	trace       zerolog.Logger
	frontMatter FrontMatterMode
}

func newConfig(opts []Option) config {
	cfg := config{
		tags:  DefaultTags(),
		trace: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.theme == nil {
		cfg.theme = DefaultTheme()
	}
	return cfg
}

// WithTags overrides the HTML tags emitted for each span kind.
func WithTags(tags TagSet) Option {
	return func(cfg *config) {
		cfg.tags = tags
	}
}

// WithTheme selects the theme used by the ANSI renderer.
func WithTheme(theme Theme) Option {
	return func(cfg *config) {
		cfg.theme = theme
	}
}

// WithWidth word-wraps ANSI and plain text output. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(cfg *config) {
		if width < 0 {
			width = 0
		}
		cfg.width = width
	}
}

// WithTrace logs every scanner and tree builder decision at debug level.
func WithTrace(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.trace = logger
	}
}

// WithFrontMatter sets the front matter mode used by ParseDocument and Render.
func WithFrontMatter(mode FrontMatterMode) Option {
	return func(cfg *config) {
		cfg.frontMatter = mode
	}
}
