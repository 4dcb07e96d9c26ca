package storyllms

import (
	"sort"
	"strings"
)

// Entry represents one documentable unit extracted from the story
// registry: a UI component with its example stories, or a standalone
// prose documentation page.
type Entry struct {
	// ID is the registry identifier, used as the output file stem.
	ID string `json:"id"`

	// Title is the human-readable breadcrumb (e.g. "Components/Button").
	Title string `json:"title"`

	// Meta carries component documentation when the registry has any.
	Meta *ComponentMeta `json:"componentMeta,omitempty"`

	// Stories are the entry's example scenarios, in registry order.
	Stories []Story `json:"stories"`
}

// ComponentMeta describes a component extracted from the story registry.
type ComponentMeta struct {
	Description   string                    `json:"description"`
	Props         map[string]PropInfo       `json:"props"`
	Subcomponents map[string]*ComponentMeta `json:"subcomponents,omitempty"`
}

// PropInfo describes a single component prop.
type PropInfo struct {
	Type         PropType `json:"type"`
	Description  string   `json:"description"`
	DefaultValue string   `json:"defaultValue"`
	Required     bool     `json:"required"`
}

// Story represents one example scenario for a component, or the synthetic
// single variant standing in for a prose page.
type Story struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Parameters StoryParams `json:"parameters"`
}

// StoryParams holds the per-story metadata the generators consume.
type StoryParams struct {
	// DocsOnly marks stories that exist purely as documentation pages.
	DocsOnly bool `json:"docsOnly"`

	// FullSource holds the rendered markdown body of a prose page.
	// Populated during enrichment; empty for component stories.
	FullSource string `json:"fullSource,omitempty"`

	// Description is the story-level doc comment.
	Description string `json:"description"`

	// SourceCode is the story's example source text.
	SourceCode string `json:"sourceCode"`
}

// Validate returns an error if the entry cannot be used as an output unit.
func (e *Entry) Validate() error {
	if e.ID == "" {
		return Errorf(EINVALID, "entry id required")
	}
	if e.Title == "" {
		return Errorf(EINVALID, "entry title required")
	}
	return nil
}

// DocsOnly reports whether the entry is a prose page: it has stories and
// every one of them is documentation-only.
func (e *Entry) DocsOnly() bool {
	if len(e.Stories) == 0 {
		return false
	}
	for _, s := range e.Stories {
		if !s.Parameters.DocsOnly {
			return false
		}
	}
	return true
}

// Lead returns the first line of the entry's component description, used
// as the short blurb in summary listings.
func (e *Entry) Lead() string {
	if e.Meta == nil {
		return ""
	}
	line, _, _ := strings.Cut(e.Meta.Description, "\n")
	return strings.TrimSpace(line)
}

// Examples returns the stories worth an example block: not documentation
// views and carrying a description or example source.
func (e *Entry) Examples() []Story {
	var out []Story
	for _, s := range e.Stories {
		if s.Parameters.DocsOnly {
			continue
		}
		if s.Parameters.Description == "" && s.Parameters.SourceCode == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// DocumentedSubcomponents returns the names of subcomponents that carry
// doc metadata, sorted for deterministic output.
func (m *ComponentMeta) DocumentedSubcomponents() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Subcomponents))
	for name, sub := range m.Subcomponents {
		if sub == nil {
			continue
		}
		if sub.Description == "" && len(sub.Props) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DocsPageID converts a story id to the id of its documentation view by
// replacing the trailing story suffix ("intro--page" becomes
// "intro--docs").
func DocsPageID(storyID string) string {
	if i := strings.LastIndex(storyID, "--"); i >= 0 {
		return storyID[:i] + "--docs"
	}
	return storyID + "--docs"
}
