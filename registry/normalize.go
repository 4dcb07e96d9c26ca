package registry

import (
	"strings"
	"unicode"

	"github.com/fwojciec/storyllms"
)

// payload is the plain-data projection returned by strategy scripts.
// File-based shapes fill entries; the full-extraction shape fills
// stories.
type payload struct {
	Entries []fileEntry `json:"entries"`
	Stories []flatStory `json:"stories"`
}

// fileEntry mirrors one projected CSF file.
type fileEntry struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	ImportPath string           `json:"importPath"`
	Meta       *componentMeta   `json:"meta"`
	Stories    []projectedStory `json:"stories"`
}

type componentMeta struct {
	Description   string                        `json:"description"`
	Props         map[string]storyllms.PropInfo `json:"props"`
	Subcomponents map[string]*componentMeta     `json:"subcomponents"`
}

type projectedStory struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Parameters storyllms.StoryParams `json:"parameters"`
}

// flatStory mirrors one story from a full-registry extraction. Component
// metadata rides along on every story; grouping recovers it.
type flatStory struct {
	ID          string                        `json:"id"`
	Name        string                        `json:"name"`
	Title       string                        `json:"title"`
	ComponentID string                        `json:"componentId"`
	ImportPath  string                        `json:"importPath"`
	Description string                        `json:"description"`
	Props       map[string]storyllms.PropInfo `json:"props"`
	Parameters  storyllms.StoryParams         `json:"parameters"`
}

// normalize converts a projected payload into the entry collection. The
// third return reports whether the payload carried either shape at all.
func normalize(p payload) ([]*storyllms.Entry, []string, bool) {
	switch {
	case p.Stories != nil:
		entries, skipped := normalizeFlat(p.Stories)
		return entries, skipped, true
	case p.Entries != nil:
		entries, skipped := normalizeFiles(p.Entries)
		return entries, skipped, true
	default:
		return nil, nil, false
	}
}

// normalizeFiles converts projected CSF files into entries, synthesizing
// a prose page variant for story-less MDX files and skipping files that
// have no stories and no prose to show.
func normalizeFiles(files []fileEntry) ([]*storyllms.Entry, []string) {
	entries := make([]*storyllms.Entry, 0, len(files))
	var skipped []string
	seen := make(map[string]bool, len(files))

	for _, f := range files {
		id := entryID(f)
		if id == "" {
			skipped = append(skipped, label(f)+": no usable identifier")
			continue
		}
		if seen[id] {
			skipped = append(skipped, id+": duplicate id")
			continue
		}

		entry := &storyllms.Entry{
			ID:    id,
			Title: f.Title,
			Meta:  toMeta(f.Meta),
		}
		if entry.Title == "" {
			entry.Title = id
		}

		for _, s := range f.Stories {
			entry.Stories = append(entry.Stories, storyllms.Story{ID: s.ID, Name: s.Name, Parameters: s.Parameters})
		}
		if len(entry.Stories) == 0 {
			if !isProseFile(f.ImportPath) {
				skipped = append(skipped, label(f)+": no stories")
				continue
			}
			entry.Stories = []storyllms.Story{{
				ID:         id + "--docs",
				Name:       titleLeaf(entry.Title),
				Parameters: storyllms.StoryParams{DocsOnly: true},
			}}
		}

		if err := entry.Validate(); err != nil {
			skipped = append(skipped, label(f)+": "+storyllms.ErrorMessage(err))
			continue
		}
		seen[id] = true
		entries = append(entries, entry)
	}
	return entries, skipped
}

// normalizeFlat groups a full-registry extraction by component,
// synthesizing a minimal component meta from the first story seen for
// each component.
func normalizeFlat(stories []flatStory) ([]*storyllms.Entry, []string) {
	var entries []*storyllms.Entry
	var skipped []string
	index := make(map[string]*storyllms.Entry)

	for _, s := range stories {
		if s.ID == "" {
			skipped = append(skipped, s.Title+": story without id")
			continue
		}
		key := s.ComponentID
		if key == "" {
			key = componentPrefix(s.ID)
		}

		entry, ok := index[key]
		if !ok {
			entry = &storyllms.Entry{ID: key, Title: s.Title}
			if entry.Title == "" {
				entry.Title = key
			}
			if s.Description != "" || len(s.Props) > 0 {
				entry.Meta = &storyllms.ComponentMeta{Description: s.Description, Props: s.Props}
			}
			index[key] = entry
			entries = append(entries, entry)
		}
		entry.Stories = append(entry.Stories, storyllms.Story{ID: s.ID, Name: s.Name, Parameters: s.Parameters})
	}
	return entries, skipped
}

// entryID picks the entry identifier: the file's own id, the component
// prefix of its first story, or the sanitized title.
func entryID(f fileEntry) string {
	if f.ID != "" {
		return f.ID
	}
	if len(f.Stories) > 0 && f.Stories[0].ID != "" {
		return componentPrefix(f.Stories[0].ID)
	}
	return SanitizeID(f.Title)
}

// toMeta converts projected component metadata, collapsing empty metadata
// to nil so formatting can treat absence uniformly.
func toMeta(m *componentMeta) *storyllms.ComponentMeta {
	if m == nil {
		return nil
	}
	out := &storyllms.ComponentMeta{Description: m.Description, Props: m.Props}
	for name, sub := range m.Subcomponents {
		converted := toMeta(sub)
		if converted == nil {
			continue
		}
		if out.Subcomponents == nil {
			out.Subcomponents = make(map[string]*storyllms.ComponentMeta, len(m.Subcomponents))
		}
		out.Subcomponents[name] = converted
	}
	if out.Description == "" && len(out.Props) == 0 && len(out.Subcomponents) == 0 {
		return nil
	}
	return out
}

// componentPrefix returns the component portion of a story id.
func componentPrefix(storyID string) string {
	if i := strings.LastIndex(storyID, "--"); i >= 0 {
		return storyID[:i]
	}
	return storyID
}

// isProseFile reports whether an import path names a prose page rather
// than a component story file.
func isProseFile(importPath string) bool {
	lower := strings.ToLower(importPath)
	return strings.HasSuffix(lower, ".mdx") || strings.HasSuffix(lower, ".md")
}

// titleLeaf returns the last breadcrumb segment of a title.
func titleLeaf(title string) string {
	if i := strings.LastIndex(title, "/"); i >= 0 {
		return title[i+1:]
	}
	return title
}

// label names a registry item in skip reports.
func label(f fileEntry) string {
	switch {
	case f.ID != "":
		return f.ID
	case f.Title != "":
		return f.Title
	default:
		return f.ImportPath
	}
}

// SanitizeID converts a title to the id form used by the story registry:
// lowercased, with runs of other characters collapsed to single hyphens
// ("Components/Button" becomes "components-button").
func SanitizeID(title string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteRune('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
