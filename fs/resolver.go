// Package fs provides filesystem-backed implementations: static asset
// resolution for the browser interception layer and document output into
// the site tree.
package fs

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/storyllms"
)

// indexDocument resolves extensionless request paths.
const indexDocument = "index.html"

// contentTypes maps file extensions to MIME types for intercepted
// responses. Unknown extensions fall back to a generic binary type.
var contentTypes = map[string]string{
	".html":  "text/html",
	".htm":   "text/html",
	".js":    "text/javascript",
	".mjs":   "text/javascript",
	".css":   "text/css",
	".json":  "application/json",
	".map":   "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".webp":  "image/webp",
	".avif":  "image/avif",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".eot":   "application/vnd.ms-fontobject",
	".txt":   "text/plain",
	".md":    "text/plain",
	".mdx":   "text/plain",
	".wasm":  "application/wasm",
	".xml":   "application/xml",
	".pdf":   "application/pdf",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
}

const defaultContentType = "application/octet-stream"

// Ensure Resolver implements storyllms.AssetResolver at compile time.
var _ storyllms.AssetResolver = (*Resolver)(nil)

// Resolver serves files from a static site tree by browser request path.
type Resolver struct {
	root string
}

// NewResolver creates a Resolver rooted at the given site directory.
func NewResolver(root string) *Resolver {
	return &Resolver{root: root}
}

// Resolve returns the bytes and content type for a request path.
// Extensionless paths are treated as directory requests and resolve to
// the directory's index document. Paths that do not exist or escape the
// site root return ENOTFOUND.
func (r *Resolver) Resolve(requestPath string) (*storyllms.Asset, error) {
	p := path.Clean("/" + requestPath)
	if path.Ext(p) == "" {
		p = path.Join(p, indexDocument)
	}

	full := filepath.Join(r.root, filepath.FromSlash(strings.TrimPrefix(p, "/")))

	// Clean collapses traversal segments, but containment is verified
	// before the filesystem is touched.
	rel, err := filepath.Rel(r.root, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, storyllms.Errorf(storyllms.ENOTFOUND, "path %q escapes the site root", requestPath)
	}

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, storyllms.Errorf(storyllms.ENOTFOUND, "no such file %q", requestPath)
	}

	body, err := os.ReadFile(full)
	if err != nil {
		return nil, storyllms.Errorf(storyllms.EINTERNAL, "reading %q: %v", requestPath, err)
	}

	contentType, ok := contentTypes[strings.ToLower(path.Ext(p))]
	if !ok {
		contentType = defaultContentType
	}
	return &storyllms.Asset{Body: body, ContentType: contentType}, nil
}
