// Package projections assembles the public page view models. Every page is
// pre-filled with the launch content so a first paint never renders empty,
// then hydrated from the document store with a concurrent getter fan-out;
// failed reads resolve to zero values upstream and leave the fallback alone.
package projections

import (
	"bytes"
	"html/template"
	"log/slog"
	"sync"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
)

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// renderMarkdown converts editor markdown to HTML for long-form text
// sections. Returns the input escaped when conversion fails.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		slog.Error("markdown_render_failed", "error", err)
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// fanOut runs each fetch function in its own goroutine and waits for all.
// INVARIANT: Each function writes distinct fields of the page struct.
func fanOut(fns ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		go func() {
			defer wg.Done()
			fn()
		}()
	}
	wg.Wait()
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
