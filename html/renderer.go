// Package html renders the static pages and assets of a visualization
// bundle from embedded templates.
package html

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	texttemplate "text/template"

	"github.com/topiclab/topicviz"
)

//go:embed assets templates
var content embed.FS

// Renderer implements topicviz.SiteRenderer using templates and static
// assets embedded in the binary.
type Renderer struct {
	index  *template.Template
	graph  *template.Template
	charts *texttemplate.Template
}

var _ topicviz.SiteRenderer = (*Renderer)(nil)

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	index, err := template.ParseFS(content, "templates/index.html.tmpl")
	if err != nil {
		return nil, err
	}
	graph, err := template.ParseFS(content, "templates/topic-graph.html.tmpl")
	if err != nil {
		return nil, err
	}
	charts, err := texttemplate.ParseFS(content, "templates/charts.js.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{index: index, graph: graph, charts: charts}, nil
}

type indexData struct {
	Title      string
	Method     string
	TopicCount int
	HasViolin  bool
	HasUMAP    bool
}

// RenderIndex renders the main index.html page of a bundle.
func (r *Renderer) RenderIndex(b *topicviz.Bundle) ([]byte, error) {
	var buf bytes.Buffer
	err := r.index.Execute(&buf, indexData{
		Title:      b.Source.Title(),
		Method:     b.Source.Method.Upper(),
		TopicCount: b.Source.TopicCount,
		HasViolin:  b.HasViolin,
		HasUMAP:    b.HasUMAP,
	})
	if err != nil {
		return nil, topicviz.Errorf(topicviz.EINTERNAL, "render index: %v", err)
	}
	return buf.Bytes(), nil
}

type graphData struct {
	Method     string
	TopicCount int
	Data       template.JS
}

// RenderTopicGraph renders the temporal-graph page with the table rows
// embedded as a JSON literal.
func (r *Renderer) RenderTopicGraph(b *topicviz.Bundle, table *topicviz.TemporalTable) ([]byte, error) {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return nil, topicviz.Errorf(topicviz.EINTERNAL, "encode temporal table: %v", err)
	}
	var buf bytes.Buffer
	err = r.graph.Execute(&buf, graphData{
		Method:     b.Source.Method.Upper(),
		TopicCount: b.Source.TopicCount,
		Data:       template.JS(data),
	})
	if err != nil {
		return nil, topicviz.Errorf(topicviz.EINTERNAL, "render topic graph: %v", err)
	}
	return buf.Bytes(), nil
}

// Assets returns the static css/js files of a bundle keyed by
// output-relative path. charts.js is rendered per bundle since its color
// palette scales with the topic count.
func (r *Renderer) Assets(b *topicviz.Bundle) (map[string][]byte, error) {
	styles, err := content.ReadFile("assets/styles.css")
	if err != nil {
		return nil, err
	}
	topics, err := content.ReadFile("assets/topics.js")
	if err != nil {
		return nil, err
	}
	app, err := content.ReadFile("assets/app.js")
	if err != nil {
		return nil, err
	}
	palette, err := paletteJSON(b.Source.TopicCount)
	if err != nil {
		return nil, topicviz.Errorf(topicviz.EINTERNAL, "encode palette: %v", err)
	}
	var charts bytes.Buffer
	if err := r.charts.Execute(&charts, struct{ Palette string }{Palette: palette}); err != nil {
		return nil, topicviz.Errorf(topicviz.EINTERNAL, "render charts.js: %v", err)
	}
	return map[string][]byte{
		"css/styles.css": styles,
		"js/topics.js":   topics,
		"js/app.js":      app,
		"js/charts.js":   charts.Bytes(),
	}, nil
}
