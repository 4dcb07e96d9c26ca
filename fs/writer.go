package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/storyllms"
)

// Ensure Writer implements storyllms.DocsWriter at compile time.
var _ storyllms.DocsWriter = (*Writer)(nil)

// Writer persists a generated document set into the site tree:
//
//	llms.txt          summary text
//	llms/index.html   summary index page
//	llms/{id}.txt     per-entry text
//	llms/{id}.html    per-entry page
//	llms/sitemap.xml  sitemap
//
// The per-entry directory is replaced atomically: documents are staged
// under llms.tmp and moved into place with a single rename on success.
type Writer struct {
	distPath string
}

// NewWriter creates a new Writer rooted at the site tree.
func NewWriter(distPath string) *Writer {
	return &Writer{distPath: distPath}
}

func (w *Writer) stagingDir() string {
	return filepath.Join(w.distPath, "llms.tmp")
}

func (w *Writer) finalDir() string {
	return filepath.Join(w.distPath, "llms")
}

// WriteDocs writes the full document set. Per-entry documents, the HTML
// index and the sitemap are staged first and committed together; the
// summary is written last so it can never point at missing files.
func (w *Writer) WriteDocs(ctx context.Context, docs *storyllms.Docs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	staging := w.stagingDir()
	if err := os.RemoveAll(staging); err != nil {
		return err
	}
	if err := os.MkdirAll(staging, 0755); err != nil {
		return err
	}

	if err := w.stage(staging, docs); err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	if err := os.RemoveAll(w.finalDir()); err != nil {
		return err
	}
	if err := os.Rename(staging, w.finalDir()); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(w.distPath, "llms.txt"), []byte(docs.Summary), 0644)
}

// stage writes every document into the staging directory.
func (w *Writer) stage(dir string, docs *storyllms.Docs) error {
	for _, entry := range docs.Entries {
		if entry.ID == "" || strings.ContainsAny(entry.ID, `/\`) {
			return storyllms.Errorf(storyllms.EINVALID, "entry document id %q is not a valid file stem", entry.ID)
		}
		if err := os.WriteFile(filepath.Join(dir, entry.ID+".txt"), []byte(entry.Text), 0644); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, entry.ID+".html"), []byte(entry.HTML), 0644); err != nil {
			return err
		}
	}

	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(docs.SummaryHTML), 0644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sitemap.xml"), []byte(docs.Sitemap), 0644)
}
