package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/storyllms"
	"github.com/fwojciec/storyllms/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements storyllms.Converter at compile time.
var _ storyllms.Converter = (*htmltomarkdown.Converter)(nil)

func convert(t *testing.T, html string) string {
	t.Helper()

	md, err := htmltomarkdown.NewConverter().Convert(html)
	require.NoError(t, err)
	return md
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p>Hello, world!</p>`)

		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`)

		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "### Section")
	})

	t.Run("converts unordered lists", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<ul><li>First</li><li>Second</li></ul>`)

		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<table><thead><tr><th>Name</th><th>Type</th></tr></thead><tbody><tr><td>variant</td><td>string</td></tr></tbody></table>`)

		assert.Contains(t, md, "| Name | Type |")
		assert.Contains(t, md, "| variant | string |")
	})

	t.Run("converts strikethrough", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p><del>removed</del></p>`)

		assert.Contains(t, md, "~~removed~~")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		require.Error(t, err)
		assert.Equal(t, storyllms.EINVALID, storyllms.ErrorCode(err))
	})
}

func TestConverter_CodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("tags the fence with the advertised language", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<pre><code class="language-tsx">&lt;Button /&gt;</code></pre>`)

		assert.Contains(t, md, "```tsx\n<Button />\n```")
	})

	t.Run("finds the language on a nested descendant", func(t *testing.T) {
		t.Parallel()

		html := `<pre><div class="language-tsx"><span>const</span><span> x = 1</span></div></pre>`

		md := convert(t, html)

		assert.Contains(t, md, "```tsx\nconst x = 1\n```")
	})

	t.Run("flattens syntax highlighter markup to plain text", func(t *testing.T) {
		t.Parallel()

		html := `<pre class="prismjs"><div class="token-line"><span class="token keyword">export</span><span> default</span></div></pre>`

		md := convert(t, html)

		assert.Contains(t, md, "```\nexport default\n```")
	})

	t.Run("emits an untagged fence without a language class", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<pre><code>plain text</code></pre>`)

		assert.Contains(t, md, "```\nplain text\n```")
	})

	t.Run("passes through content that is already fenced", func(t *testing.T) {
		t.Parallel()

		md := convert(t, "<pre>```js\nalert(1)\n```</pre>")

		assert.Contains(t, md, "```js\nalert(1)\n```")
		assert.NotContains(t, md, "``````")
	})
}

func TestConverter_Anchors(t *testing.T) {
	t.Parallel()

	t.Run("keeps real links", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p>See <a href="https://example.com/docs">the docs</a>.</p>`)

		assert.Contains(t, md, "[the docs](https://example.com/docs)")
	})

	t.Run("drops same-page fragment anchors", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p>Heading<a href="#top">Back to top</a></p>`)

		assert.NotContains(t, md, "Back to top")
		assert.NotContains(t, md, "#top")
	})

	t.Run("drops anchors without href", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p><a class="anchor" aria-hidden="true"></a>Content</p>`)

		assert.Contains(t, md, "Content")
		assert.NotContains(t, md, "[")
	})

	t.Run("drops hidden and unfocusable anchors", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p><a href="/x" aria-hidden="true">hidden</a><a href="/y" tabindex="-1">skipped</a></p>`)

		assert.NotContains(t, md, "hidden")
		assert.NotContains(t, md, "skipped")
	})
}

func TestConverter_RemovedElements(t *testing.T) {
	t.Parallel()

	t.Run("drops images", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p>Before<img src="/logo.png" alt="logo">After</p>`)

		assert.Contains(t, md, "Before")
		assert.Contains(t, md, "After")
		assert.NotContains(t, md, "logo.png")
		assert.NotContains(t, md, "![")
	})

	t.Run("drops buttons", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<div><button>Copy</button><p>Kept</p></div>`)

		assert.Contains(t, md, "Kept")
		assert.NotContains(t, md, "Copy")
	})

	t.Run("drops style and script elements", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<div><style>.a{color:red}</style><script>alert(1)</script><p>Kept</p></div>`)

		assert.Contains(t, md, "Kept")
		assert.NotContains(t, md, "color:red")
		assert.NotContains(t, md, "alert(1)")
	})
}

func TestConverter_Checkboxes(t *testing.T) {
	t.Parallel()

	t.Run("renders checked and unchecked task markers", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li><input type="checkbox" checked>Done</li><li><input type="checkbox">Open</li></ul>`

		md := convert(t, html)

		assert.Contains(t, md, "[x] Done")
		assert.Contains(t, md, "[ ] Open")
	})
}

func TestConverter_NoEscaping(t *testing.T) {
	t.Parallel()

	t.Run("leaves markdown punctuation untouched", func(t *testing.T) {
		t.Parallel()

		md := convert(t, `<p>Use *stars* and [brackets] freely.</p>`)

		assert.Contains(t, md, "Use *stars* and [brackets] freely.")
	})
}
