package storyllms

import (
	"html/template"
	"strings"
)

// FormatSummaryHTML renders the llms/index.html document: the summary's
// content as a styled page with a card grid of entry links, followed by
// a references section when sibling sites are configured.
func FormatSummaryHTML(cfg Config, entries []*Entry) (string, error) {
	data := summaryPageData{Title: cfg.Title, Description: cfg.Description}
	for _, e := range entries {
		data.Cards = append(data.Cards, summaryCard{
			Title: e.Title,
			Lead:  e.Lead(),
			URL:   cfg.JoinBase("/llms/" + e.ID + ".html"),
		})
	}
	for _, ref := range cfg.Refs {
		data.Refs = append(data.Refs, refLink{
			Title: ref.Title,
			URL:   strings.TrimSuffix(ref.URL, "/") + "/llms.txt",
		})
	}

	var b strings.Builder
	if err := summaryPage.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FormatEntryHTML renders the llms/{id}.html document for an entry.
//
// A non-empty body is embedded as the whole article; prose pages pass
// their pre-rendered markdown here. Component entries mirror
// FormatEntryText's structure with a title heading, description, props
// table, subcomponent sections and examples. Example source goes through
// the template's escaping before landing in a code block, and every page
// links back to the summary index.
func FormatEntryHTML(cfg Config, e *Entry, body template.HTML) (string, error) {
	data := entryPageData{
		Title:   e.Title,
		BackURL: cfg.JoinBase("/llms/index.html"),
		Prose:   body,
	}
	if !e.DocsOnly() {
		if e.Meta != nil {
			data.Description = e.Meta.Description
			data.Props = PropTable(e.Meta.Props)
			for _, name := range e.Meta.DocumentedSubcomponents() {
				sub := e.Meta.Subcomponents[name]
				data.Subcomponents = append(data.Subcomponents, subcomponentSection{
					Name:        name,
					Description: sub.Description,
					Props:       PropTable(sub.Props),
				})
			}
		}
		for _, s := range e.Examples() {
			data.Examples = append(data.Examples, exampleSection{
				Name:        s.Name,
				Description: s.Parameters.Description,
				Source:      strings.TrimRight(s.Parameters.SourceCode, "\n"),
			})
		}
	}

	var b strings.Builder
	if err := entryPage.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

type summaryPageData struct {
	Title       string
	Description string
	Cards       []summaryCard
	Refs        []refLink
}

type summaryCard struct {
	Title string
	Lead  string
	URL   string
}

type refLink struct {
	Title string
	URL   string
}

type entryPageData struct {
	Title         string
	Description   string
	BackURL       string
	Prose         template.HTML
	Props         []PropRow
	Subcomponents []subcomponentSection
	Examples      []exampleSection
}

type subcomponentSection struct {
	Name        string
	Description string
	Props       []PropRow
}

type exampleSection struct {
	Name        string
	Description string
	Source      string
}

var (
	summaryPage = template.Must(template.New("summary").Parse(summaryHTMLTemplate))
	entryPage   = template.Must(template.New("entry").Parse(entryHTMLTemplate))
)

const pageStyle = `
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 20px; background: #f5f5f5; color: #212529; }
        .container { max-width: 960px; margin: 0 auto; background: white; padding: 32px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { margin-top: 0; }
        .description { color: #666; }
        .card-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(260px, 1fr)); gap: 16px; margin: 24px 0; }
        .card { display: block; background: #f8f9fa; padding: 16px; border-radius: 6px; border: 1px solid #dee2e6; text-decoration: none; color: inherit; }
        .card h2 { margin: 0 0 8px; font-size: 16px; }
        .card p { margin: 0; color: #666; font-size: 14px; }
        .back { display: inline-block; margin-bottom: 16px; color: #007bff; text-decoration: none; }
        table { border-collapse: collapse; width: 100%; margin: 16px 0; }
        th, td { border: 1px solid #dee2e6; padding: 8px 12px; text-align: left; font-size: 14px; }
        th { background: #f8f9fa; }
        pre { background: #f8f9fa; padding: 16px; border-radius: 6px; overflow-x: auto; }
        code { font-family: SFMono-Regular, Consolas, 'Liberation Mono', Menlo, monospace; font-size: 13px; }
        .refs a { color: #007bff; }
`

const summaryHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>` + pageStyle + `    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Title}}</h1>
        {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
        <div class="card-grid">
            {{range .Cards}}
            <a class="card" href="{{.URL}}">
                <h2>{{.Title}}</h2>
                {{if .Lead}}<p>{{.Lead}}</p>{{end}}
            </a>
            {{end}}
        </div>
        {{if .Refs}}
        <h2>References</h2>
        <ul class="refs">
            {{range .Refs}}
            <li><a href="{{.URL}}">{{.Title}}</a></li>
            {{end}}
        </ul>
        {{end}}
    </div>
</body>
</html>
`

const entryHTMLTemplate = `{{define "props"}}
        <table>
            <thead>
                <tr><th>Name</th><th>Type</th><th>Required</th><th>Default</th><th>Description</th></tr>
            </thead>
            <tbody>
                {{range .}}
                <tr><td><code>{{.Name}}</code></td><td>{{.Type}}</td><td>{{.Required}}</td><td>{{.Default}}</td><td>{{.Description}}</td></tr>
                {{end}}
            </tbody>
        </table>
{{end}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>` + pageStyle + `    </style>
</head>
<body>
    <div class="container">
        <a class="back" href="{{.BackURL}}">Back to index</a>
        {{if .Prose}}
        <article class="prose">{{.Prose}}</article>
        {{else}}
        <h1>{{.Title}}</h1>
        {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
        {{if .Props}}
        <h2>Props</h2>
        {{template "props" .Props}}
        {{end}}
        {{if .Subcomponents}}
        <h2>Subcomponents</h2>
        {{range .Subcomponents}}
        <h3>{{.Name}}</h3>
        {{if .Description}}<p>{{.Description}}</p>{{end}}
        {{if .Props}}{{template "props" .Props}}{{end}}
        {{end}}
        {{end}}
        {{if .Examples}}
        <h2>Examples</h2>
        {{range .Examples}}
        <h3>{{.Name}}</h3>
        {{if .Description}}<p>{{.Description}}</p>{{end}}
        {{if .Source}}<pre><code>{{.Source}}</code></pre>{{end}}
        {{end}}
        {{end}}
        {{end}}
    </div>
</body>
</html>
`
