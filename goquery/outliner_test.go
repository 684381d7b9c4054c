package goquery_test

import (
	"testing"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutliner_OutlineHTML(t *testing.T) {
	t.Parallel()

	t.Run("headings nest by level", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h1>A</h1><h2>B</h2><h3>C</h3>")

		require.Len(t, root.Children(), 1)
		a := root.Children()[0]
		assert.Equal(t, "A", a.Text)
		require.Len(t, a.Children(), 1)
		b := a.Children()[0]
		assert.Equal(t, "B", b.Text)
		require.Len(t, b.Children(), 1)
		assert.Equal(t, "C", b.Children()[0].Text)
	})

	t.Run("equal levels are siblings not children", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h1>A</h1><h2>B</h2><h2>C</h2><h3>D</h3>")

		require.Len(t, root.Children(), 1)
		a := root.Children()[0]
		require.Len(t, a.Children(), 2)
		b, c := a.Children()[0], a.Children()[1]
		assert.Equal(t, "B", b.Text)
		assert.Equal(t, "C", c.Text)
		// D follows C, so it nests under C, the most recent heading with
		// level < 3.
		assert.Empty(t, b.Children())
		require.Len(t, c.Children(), 1)
		assert.Equal(t, "D", c.Children()[0].Text)
	})

	t.Run("level jump back up pops to the right ancestor", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h1>A</h1><h3>B</h3><h2>C</h2>")

		a := root.Children()[0]
		require.Len(t, a.Children(), 2)
		assert.Equal(t, "B", a.Children()[0].Text)
		assert.Equal(t, "C", a.Children()[1].Text)
	})

	t.Run("list attaches to the nearest heading", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h2>Topics</h2><ul><li>one</li><li>two</li></ul>")

		topics := root.Children()[0]
		require.Len(t, topics.Children(), 1)
		list := topics.Children()[0]
		assert.Equal(t, "List", list.Text)
		require.Len(t, list.Children(), 2)
		assert.Equal(t, "one", list.Children()[0].Text)
		assert.Equal(t, "two", list.Children()[1].Text)
	})

	t.Run("empty list is dropped", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h2>Topics</h2><ul><li>  </li></ul>")

		topics := root.Children()[0]
		assert.Empty(t, topics.Children())
	})

	t.Run("stray paragraphs collect into Unsorted", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<p>first</p><h1>A</h1><p>under heading</p>")

		require.Len(t, root.Children(), 2)
		assert.Equal(t, "A", root.Children()[0].Text)
		unsorted := root.Children()[1]
		assert.Equal(t, "Unsorted", unsorted.Text)
		require.Len(t, unsorted.Children(), 1)
		assert.Equal(t, "first", unsorted.Children()[0].Text)
	})

	t.Run("SkipStrayParagraphs drops the bucket", func(t *testing.T) {
		t.Parallel()

		o := &goquery.Outliner{SkipStrayParagraphs: true}
		root := o.OutlineHTML("<p>first</p>")

		assert.Empty(t, root.Children())
	})

	t.Run("document title becomes the root label", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<html><head><title>Page Title</title></head><body><h1>A</h1></body></html>")

		assert.Equal(t, "Page Title", root.Text)
	})

	t.Run("no title yields the untitled placeholder", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h1>A</h1>")

		assert.Equal(t, navigator.UntitledLabel, root.Text)
	})

	t.Run("no structure yields an empty forest", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<div>just a div</div>")

		assert.Empty(t, root.Children())
	})

	t.Run("malformed markup degrades instead of failing", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h1>A<h2>B</h2><ul><li>x")

		require.NotEmpty(t, root.Children())
		assert.Equal(t, "A", root.Children()[0].Text)
	})

	t.Run("heading text collapses whitespace and markup", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h1>  Hello <em>there</em>\n world </h1>")

		assert.Equal(t, "Hello there world", root.Children()[0].Text)
	})

	t.Run("nested list attaches as its own List node", func(t *testing.T) {
		t.Parallel()

		root := goquery.NewOutliner().OutlineHTML("<h1>A</h1><ul><li>outer<ul><li>inner</li></ul></li></ul>")

		a := root.Children()[0]
		require.Len(t, a.Children(), 2)
		assert.Equal(t, "List", a.Children()[0].Text)
		assert.Equal(t, "List", a.Children()[1].Text)
		assert.Equal(t, "inner", a.Children()[1].Children()[0].Text)
	})
}

func TestEnsureWrapped(t *testing.T) {
	t.Parallel()

	t.Run("wraps fragments", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<html><body><p>x</p></body></html>", goquery.EnsureWrapped("<p>x</p>"))
	})

	t.Run("leaves full documents alone", func(t *testing.T) {
		t.Parallel()

		in := "<HTML><body><p>x</p></body></HTML>"
		assert.Equal(t, in, goquery.EnsureWrapped(in))
	})
}

func TestScanHeadings(t *testing.T) {
	t.Parallel()

	t.Run("extracts only headings", func(t *testing.T) {
		t.Parallel()

		root := goquery.ScanHeadings("<title>T</title><h1>A</h1><p>skip</p><h2>B</h2>")

		assert.Equal(t, "T", root.Text)
		require.Len(t, root.Children(), 1)
		a := root.Children()[0]
		assert.Equal(t, "A", a.Text)
		require.Len(t, a.Children(), 1)
		assert.Equal(t, "B", a.Children()[0].Text)
	})

	t.Run("unterminated heading is skipped", func(t *testing.T) {
		t.Parallel()

		root := goquery.ScanHeadings("<h1>A</h1><h2>dangling")

		require.Len(t, root.Children(), 1)
		assert.Empty(t, root.Children()[0].Children())
	})

	t.Run("equal levels are siblings", func(t *testing.T) {
		t.Parallel()

		root := goquery.ScanHeadings("<h1>A</h1><h1>B</h1>")

		require.Len(t, root.Children(), 2)
	})
}
