package storyllms

// Asset is a resolved static file ready to be served to the browser.
type Asset struct {
	Body        []byte
	ContentType string
}

// AssetResolver resolves browser request paths against the static site
// tree. Implementations must refuse paths that escape the site root.
type AssetResolver interface {
	// Resolve returns the file bytes and content type for a request path.
	// Returns ENOTFOUND if the file does not exist or the path escapes
	// the site root, EINTERNAL on read failures.
	Resolve(requestPath string) (*Asset, error)
}
