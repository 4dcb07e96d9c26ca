package storyllms

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a rendered docs fragment (e.g., from a
	// PageReader). Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
