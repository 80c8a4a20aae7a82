// Package goquery inspects exported plot HTML files.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/topiclab/topicviz"
)

// Detector identifies self-contained interactive plots in HTML content.
// It checks for the structural markers Plotly and similar exporters leave
// behind: a plot div plus an inline script that drives it.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

var _ topicviz.PlotDetector = (*Detector)(nil)

// Detect analyzes HTML and reports whether it is an interactive plot that
// works when served as a static file. A plot that loads its data or library
// from a relative path would break inside a bundle, so only inline scripts
// count.
func (d *Detector) Detect(html string) topicviz.PlotProbe {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return topicviz.PlotProbe{}
	}

	probe := topicviz.PlotProbe{Title: d.title(doc)}

	// Plotly exports mark the plot container with this class.
	if d.hasSelector(doc, ".plotly-graph-div") {
		probe.Interactive = d.hasInlineScript(doc)
		return probe
	}

	// Other exporters use a bare div plus an inline script that references it.
	if d.hasSelector(doc, "div[id]") && d.hasInlineScript(doc) {
		probe.Interactive = true
	}
	return probe
}

// title returns the document title, or empty when absent.
func (d *Detector) title(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// hasInlineScript checks for a script element with a body and no src
// attribute.
func (d *Detector) hasInlineScript(doc *goquery.Document) bool {
	found := false
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if _, external := s.Attr("src"); external {
			return true
		}
		if strings.TrimSpace(s.Text()) != "" {
			found = true
			return false
		}
		return true
	})
	return found
}
