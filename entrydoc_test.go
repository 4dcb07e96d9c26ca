package storyllms_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/storyllms"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntryText(t *testing.T) {
	t.Parallel()

	t.Run("bare entry is exactly title and description", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-spacer",
			Title: "Components/Spacer",
			Meta:  &storyllms.ComponentMeta{Description: "Adds vertical space."},
		}

		result := storyllms.FormatEntryText(e)

		assert.Equal(t, "# Components/Spacer\n\nAdds vertical space.\n", result)
	})

	t.Run("entry without meta is just the title", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{ID: "components-spacer", Title: "Components/Spacer"}

		result := storyllms.FormatEntryText(e)

		assert.Equal(t, "# Components/Spacer\n", result)
	})

	t.Run("renders a sorted props table", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-button",
			Title: "Components/Button",
			Meta: &storyllms.ComponentMeta{
				Props: map[string]storyllms.PropInfo{
					"variant": {
						Type:         decodeType(t, `{"name":"enum","value":[{"value":"a"},{"value":"b"}]}`),
						Description:  "Visual style.",
						DefaultValue: "a",
						Required:     true,
					},
					"disabled": {Type: decodeType(t, `"boolean"`)},
				},
			},
		}

		result := storyllms.FormatEntryText(e)

		assert.Contains(t, result, "## Props")
		assert.Contains(t, result, "| Name | Type | Required | Default | Description |")
		assert.Contains(t, result, "| variant | a b | Yes | a | Visual style. |")
		assert.Contains(t, result, "| disabled | boolean | No |  |  |")
		assert.Less(t, strings.Index(result, "| disabled"), strings.Index(result, "| variant"))
	})

	t.Run("skips the children prop", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-card",
			Title: "Components/Card",
			Meta: &storyllms.ComponentMeta{
				Props: map[string]storyllms.PropInfo{
					"children": {Description: "Card content."},
				},
			},
		}

		result := storyllms.FormatEntryText(e)

		assert.Equal(t, "# Components/Card\n", result)
	})

	t.Run("renders subcomponent sections", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-menu",
			Title: "Components/Menu",
			Meta: &storyllms.ComponentMeta{
				Subcomponents: map[string]*storyllms.ComponentMeta{
					"Trigger": {
						Description: "Opens the menu.",
						Props: map[string]storyllms.PropInfo{
							"asChild": {Description: "Render as the child element."},
						},
					},
				},
			},
		}

		result := storyllms.FormatEntryText(e)

		assert.Contains(t, result, "## Subcomponents")
		assert.Contains(t, result, "### Trigger")
		assert.Contains(t, result, "Opens the menu.")
		assert.Contains(t, result, "| asChild |  | No |  | Render as the child element. |")
	})

	t.Run("renders examples with fenced source", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-button",
			Title: "Components/Button",
			Stories: []storyllms.Story{
				{
					ID:   "components-button--primary",
					Name: "Primary",
					Parameters: storyllms.StoryParams{
						Description: "The main call to action.",
						SourceCode:  "<Button variant=\"primary\" />",
					},
				},
			},
		}

		result := storyllms.FormatEntryText(e)

		assert.Contains(t, result, "## Examples")
		assert.Contains(t, result, "### Primary")
		assert.Contains(t, result, "The main call to action.")
		assert.Contains(t, result, "```tsx\n<Button variant=\"primary\" />\n```")
	})

	t.Run("prose page joins non-empty bodies with a blank line", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "docs-intro",
			Title: "Docs/Intro",
			Stories: []storyllms.Story{
				{ID: "docs-intro--one", Parameters: storyllms.StoryParams{DocsOnly: true, FullSource: "# Intro\n\nWelcome."}},
				{ID: "docs-intro--two", Parameters: storyllms.StoryParams{DocsOnly: true}},
				{ID: "docs-intro--three", Parameters: storyllms.StoryParams{DocsOnly: true, FullSource: "More."}},
			},
		}

		result := storyllms.FormatEntryText(e)

		assert.Equal(t, "# Intro\n\nWelcome.\n\nMore.", result)
	})

	t.Run("prose page with no content is empty", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "docs-intro",
			Title: "Docs/Intro",
			Stories: []storyllms.Story{
				{ID: "docs-intro--docs", Parameters: storyllms.StoryParams{DocsOnly: true}},
			},
		}

		assert.Empty(t, storyllms.FormatEntryText(e))
	})

	t.Run("escapes pipes and newlines in table cells", func(t *testing.T) {
		t.Parallel()

		e := &storyllms.Entry{
			ID:    "components-input",
			Title: "Components/Input",
			Meta: &storyllms.ComponentMeta{
				Props: map[string]storyllms.PropInfo{
					"size": {Description: "One of:\nsm | lg"},
				},
			},
		}

		result := storyllms.FormatEntryText(e)

		assert.Contains(t, result, "One of: sm \\| lg")
	})
}

func TestPropTable(t *testing.T) {
	t.Parallel()

	t.Run("rows are sorted by name", func(t *testing.T) {
		t.Parallel()

		rows := storyllms.PropTable(map[string]storyllms.PropInfo{
			"zeta":  {},
			"alpha": {},
			"mid":   {},
		})

		assert.Equal(t, "alpha", rows[0].Name)
		assert.Equal(t, "mid", rows[1].Name)
		assert.Equal(t, "zeta", rows[2].Name)
	})

	t.Run("children is excluded", func(t *testing.T) {
		t.Parallel()

		rows := storyllms.PropTable(map[string]storyllms.PropInfo{
			"children": {},
			"label":    {},
		})

		assert.Len(t, rows, 1)
		assert.Equal(t, "label", rows[0].Name)
	})

	t.Run("empty map yields no rows", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, storyllms.PropTable(nil))
	})
}

