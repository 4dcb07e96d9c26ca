package storyllms_test

import (
	"html/template"
	"testing"

	"github.com/fwojciec/storyllms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSummaryHTML(t *testing.T) {
	t.Parallel()

	t.Run("renders a card per entry", func(t *testing.T) {
		t.Parallel()

		cfg := storyllms.Config{
			DistPath:    "/tmp/dist",
			BaseURL:     "/",
			Title:       "Design System",
			Description: "Components for product teams.",
		}
		entries := []*storyllms.Entry{
			{
				ID:    "components-button",
				Title: "Components/Button",
				Meta:  &storyllms.ComponentMeta{Description: "Triggers an action.\nLong form."},
			},
			{ID: "components-card", Title: "Components/Card"},
		}

		out, err := storyllms.FormatSummaryHTML(cfg, entries)
		require.NoError(t, err)

		assert.Contains(t, out, "<title>Design System</title>")
		assert.Contains(t, out, "<h1>Design System</h1>")
		assert.Contains(t, out, "Components for product teams.")
		assert.Contains(t, out, `href="/llms/components-button.html"`)
		assert.Contains(t, out, "<h2>Components/Button</h2>")
		assert.Contains(t, out, "Triggers an action.")
		assert.NotContains(t, out, "Long form.")
		assert.Contains(t, out, `href="/llms/components-card.html"`)
	})

	t.Run("links configured references to their summaries", func(t *testing.T) {
		t.Parallel()

		cfg := storyllms.Config{
			DistPath: "/tmp/dist",
			BaseURL:  "/",
			Title:    "Summary",
			Refs:     []storyllms.Ref{{Title: "Icons", URL: "https://icons.example.com/"}},
		}

		out, err := storyllms.FormatSummaryHTML(cfg, nil)
		require.NoError(t, err)

		assert.Contains(t, out, "<h2>References</h2>")
		assert.Contains(t, out, `href="https://icons.example.com/llms.txt"`)
		assert.Contains(t, out, ">Icons</a>")
	})

	t.Run("omits the references section without refs", func(t *testing.T) {
		t.Parallel()

		out, err := storyllms.FormatSummaryHTML(storyllms.Config{DistPath: "/tmp/dist", Title: "Summary"}, nil)
		require.NoError(t, err)

		assert.NotContains(t, out, "References")
	})

	t.Run("escapes markup in descriptions", func(t *testing.T) {
		t.Parallel()

		cfg := storyllms.Config{DistPath: "/tmp/dist", Title: "Summary", Description: "<b>bold</b> claims"}

		out, err := storyllms.FormatSummaryHTML(cfg, nil)
		require.NoError(t, err)

		assert.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt; claims")
	})
}

func TestFormatEntryHTML(t *testing.T) {
	t.Parallel()

	cfg := storyllms.Config{DistPath: "/tmp/dist", BaseURL: "/", Title: "Summary"}

	t.Run("renders a component page", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-button",
			Title: "Components/Button",
			Meta: &storyllms.ComponentMeta{
				Description: "Triggers an action.",
				Props: map[string]storyllms.PropInfo{
					"variant": {
						Type:         decodeType(t, `{"name":"enum","value":[{"value":"a"},{"value":"b"}]}`),
						Description:  "Visual style.",
						DefaultValue: "a",
						Required:     true,
					},
				},
			},
			Stories: []storyllms.Story{
				{
					ID:   "components-button--primary",
					Name: "Primary",
					Parameters: storyllms.StoryParams{
						Description: "The default look.",
						SourceCode:  "<Button />\n",
					},
				},
			},
		}

		out, err := storyllms.FormatEntryHTML(cfg, e, "")
		require.NoError(t, err)

		assert.Contains(t, out, "<title>Components/Button</title>")
		assert.Contains(t, out, "<h1>Components/Button</h1>")
		assert.Contains(t, out, "Triggers an action.")
		assert.Contains(t, out, "<h2>Props</h2>")
		assert.Contains(t, out, "<tr><td><code>variant</code></td><td>a b</td><td>Yes</td><td>a</td><td>Visual style.</td></tr>")
		assert.Contains(t, out, "<h2>Examples</h2>")
		assert.Contains(t, out, "<h3>Primary</h3>")
		assert.Contains(t, out, "The default look.")
	})

	t.Run("escapes example source inside the code block", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-button",
			Title: "Components/Button",
			Stories: []storyllms.Story{
				{Name: "Primary", Parameters: storyllms.StoryParams{SourceCode: "<Button />"}},
			},
		}

		out, err := storyllms.FormatEntryHTML(cfg, e, "")
		require.NoError(t, err)

		assert.Contains(t, out, "<pre><code>&lt;Button /&gt;</code></pre>")
		assert.NotContains(t, out, "<Button />")
	})

	t.Run("links back to the summary index", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{ID: "components-card", Title: "Components/Card"}

		out, err := storyllms.FormatEntryHTML(cfg, e, "")
		require.NoError(t, err)

		assert.Contains(t, out, `<a class="back" href="/llms/index.html">Back to index</a>`)
	})

	t.Run("omits empty sections", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{ID: "components-card", Title: "Components/Card"}

		out, err := storyllms.FormatEntryHTML(cfg, e, "")
		require.NoError(t, err)

		assert.Contains(t, out, "<h1>Components/Card</h1>")
		assert.NotContains(t, out, "Props")
		assert.NotContains(t, out, "Subcomponents")
		assert.NotContains(t, out, "Examples")
	})

	t.Run("renders documented subcomponents with their tables", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-card",
			Title: "Components/Card",
			Meta: &storyllms.ComponentMeta{
				Subcomponents: map[string]*storyllms.ComponentMeta{
					"Card.Header": {
						Description: "Top slot.",
						Props: map[string]storyllms.PropInfo{
							"sticky": {Description: "Pins the header."},
						},
					},
				},
			},
		}

		out, err := storyllms.FormatEntryHTML(cfg, e, "")
		require.NoError(t, err)

		assert.Contains(t, out, "<h2>Subcomponents</h2>")
		assert.Contains(t, out, "<h3>Card.Header</h3>")
		assert.Contains(t, out, "Top slot.")
		assert.Contains(t, out, "<td><code>sticky</code></td>")
	})

	t.Run("embeds pre-rendered prose unescaped", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "docs-intro",
			Title: "Docs/Intro",
			Stories: []storyllms.Story{
				{ID: "docs-intro--docs", Name: "Intro", Parameters: storyllms.StoryParams{DocsOnly: true}},
			},
		}

		out, err := storyllms.FormatEntryHTML(cfg, e, template.HTML("<h1>Intro</h1>\n<p>Welcome.</p>"))
		require.NoError(t, err)

		assert.Contains(t, out, `<article class="prose"><h1>Intro</h1>`)
		assert.Contains(t, out, "<p>Welcome.</p>")
		assert.NotContains(t, out, "<h1>Docs/Intro</h1>")
		assert.Contains(t, out, `href="/llms/index.html"`)
	})

	t.Run("falls back to the title for prose pages without content", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "docs-intro",
			Title: "Docs/Intro",
			Stories: []storyllms.Story{
				{ID: "docs-intro--docs", Name: "Intro", Parameters: storyllms.StoryParams{DocsOnly: true}},
			},
		}

		out, err := storyllms.FormatEntryHTML(cfg, e, "")
		require.NoError(t, err)

		assert.Contains(t, out, "<h1>Docs/Intro</h1>")
	})
}
