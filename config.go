package storyllms

import "strings"

// Defaults for optional configuration fields.
const (
	DefaultBaseURL = "/"
	DefaultTitle   = "Summary"
)

// Ref links a sibling documentation site from the summary's optional
// section.
type Ref struct {
	Title string `yaml:"title" json:"title"`
	URL   string `yaml:"url" json:"url"`
}

// Config holds the configuration for one generation run.
type Config struct {
	// DistPath is the root of the built Storybook static site tree. Output
	// is written back into this tree.
	DistPath string

	// BaseURL prefixes generated links in the summary and sitemap.
	BaseURL string

	// Title is the summary document heading.
	Title string

	// Description is the summary document description.
	Description string

	// Refs links sibling documentation sites from the summary.
	Refs []Ref
}

// Validate returns an error if required configuration is missing.
func (c Config) Validate() error {
	if c.DistPath == "" {
		return Errorf(EINVALID, "dist path required")
	}
	return nil
}

// WithDefaults returns a copy with unset fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	return c
}

// JoinBase joins a site-relative path onto the configured base URL.
func (c Config) JoinBase(rel string) string {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if !strings.HasPrefix(rel, "/") {
		rel = "/" + rel
	}
	return base + rel
}
