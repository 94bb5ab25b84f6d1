// SPDX-License-Identifier: MIT

package dashboard

// Option configures Build via functional options.
type Option func(*config)

type config struct {
	title      string
	footer     string
	background *Background
}

// WithTitle overrides the generated dashboard title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithFooter sets the footer text; empty means no footer.
func WithFooter(footer string) Option {
	return func(c *config) {
		c.footer = footer
	}
}

// WithBackground attaches decorative art; nil leaves the dashboard plain.
func WithBackground(bg *Background) Option {
	return func(c *config) {
		c.background = bg
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
