package storyllms

import (
	"sort"
	"strings"
)

// PropRow is one rendered row of a props table.
type PropRow struct {
	Name        string
	Type        string
	Required    string
	Default     string
	Description string
}

// PropTable flattens a props map into display rows sorted by prop name.
// The children prop is implicit in composition and is skipped.
func PropTable(props map[string]PropInfo) []PropRow {
	names := make([]string, 0, len(props))
	for name := range props {
		if name == "children" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]PropRow, 0, len(names))
	for _, name := range names {
		p := props[name]
		required := "No"
		if p.Required {
			required = "Yes"
		}
		rows = append(rows, PropRow{
			Name:        name,
			Type:        p.Type.String(),
			Required:    required,
			Default:     p.DefaultValue,
			Description: p.Description,
		})
	}
	return rows
}

// FormatEntryText renders the plain-text document for a single entry.
//
// Prose pages emit their rendered markdown bodies joined by blank lines.
// Component entries emit a title heading, the component description, a
// props table, per-subcomponent sections and an Examples section with
// each story's description and source. Sections with nothing to say are
// omitted entirely.
func FormatEntryText(e *Entry) string {
	if e.DocsOnly() {
		return formatProse(e)
	}

	var b strings.Builder
	b.WriteString("# " + e.Title + "\n")

	if e.Meta != nil && e.Meta.Description != "" {
		b.WriteString("\n" + e.Meta.Description + "\n")
	}

	if e.Meta != nil {
		if table := formatPropsTable(e.Meta.Props); table != "" {
			b.WriteString("\n## Props\n\n")
			b.WriteString(table)
		}

		subs := e.Meta.DocumentedSubcomponents()
		if len(subs) > 0 {
			b.WriteString("\n## Subcomponents\n")
			for _, name := range subs {
				sub := e.Meta.Subcomponents[name]
				b.WriteString("\n### " + name + "\n")
				if sub.Description != "" {
					b.WriteString("\n" + sub.Description + "\n")
				}
				if table := formatPropsTable(sub.Props); table != "" {
					b.WriteString("\n" + table)
				}
			}
		}
	}

	if examples := e.Examples(); len(examples) > 0 {
		b.WriteString("\n## Examples\n")
		for _, s := range examples {
			b.WriteString("\n### " + s.Name + "\n")
			if d := s.Parameters.Description; d != "" {
				b.WriteString("\n" + d + "\n")
			}
			if src := s.Parameters.SourceCode; src != "" {
				b.WriteString("\n```tsx\n" + strings.TrimRight(src, "\n") + "\n```\n")
			}
		}
	}

	return b.String()
}

// formatProse joins the non-empty rendered bodies of a prose page's
// variants with blank lines, in variant order.
func formatProse(e *Entry) string {
	parts := make([]string, 0, len(e.Stories))
	for _, s := range e.Stories {
		body := strings.TrimSpace(s.Parameters.FullSource)
		if body == "" {
			continue
		}
		parts = append(parts, body)
	}
	return strings.Join(parts, "\n\n")
}

// formatPropsTable renders a markdown table of props. Returns an empty
// string when no rows remain, so callers can skip the section heading.
func formatPropsTable(props map[string]PropInfo) string {
	rows := PropTable(props)
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("| Name | Type | Required | Default | Description |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, r := range rows {
		b.WriteString("| " + tableCell(r.Name) + " | " + tableCell(r.Type) + " | " + r.Required + " | " + tableCell(r.Default) + " | " + tableCell(r.Description) + " |\n")
	}
	return b.String()
}

// tableCell flattens newlines and escapes pipes so multi-line docgen
// descriptions cannot break table rows.
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.TrimSpace(s)
}
