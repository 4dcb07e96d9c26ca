package storyllms

import "strings"

// summaryNote is the fixed attribution line under the summary title.
const summaryNote = "Documentation index generated from Storybook for consumption by large language models."

// FormatSummary renders the llms.txt summary document: a title, the fixed
// attribution note, the configured description and one link line per
// entry, followed by an Optional section linking configured sibling
// sites. Output is deterministic for a fixed entry order.
func FormatSummary(cfg Config, entries []*Entry) string {
	var b strings.Builder

	b.WriteString("# " + cfg.Title + "\n\n")
	b.WriteString("> " + summaryNote + "\n")
	if cfg.Description != "" {
		b.WriteString("\n" + cfg.Description + "\n")
	}

	if len(entries) > 0 {
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString("- [" + e.Title + "](" + cfg.JoinBase("/llms/"+e.ID+".html") + ")")
			if lead := e.Lead(); lead != "" {
				b.WriteString(": " + lead)
			}
			b.WriteString("\n")
		}
	}

	if len(cfg.Refs) > 0 {
		b.WriteString("\n## Optional\n\n")
		for _, ref := range cfg.Refs {
			b.WriteString("- [" + ref.Title + "](" + strings.TrimSuffix(ref.URL, "/") + "/llms.txt)\n")
		}
	}

	return b.String()
}
