package mock

import "github.com/topiclab/topicviz"

var _ topicviz.SiteRenderer = (*SiteRenderer)(nil)

// SiteRenderer is a mock implementation of topicviz.SiteRenderer.
type SiteRenderer struct {
	RenderIndexFn      func(b *topicviz.Bundle) ([]byte, error)
	RenderTopicGraphFn func(b *topicviz.Bundle, table *topicviz.TemporalTable) ([]byte, error)
	AssetsFn           func(b *topicviz.Bundle) (map[string][]byte, error)
}

func (r *SiteRenderer) RenderIndex(b *topicviz.Bundle) ([]byte, error) {
	return r.RenderIndexFn(b)
}

func (r *SiteRenderer) RenderTopicGraph(b *topicviz.Bundle, table *topicviz.TemporalTable) ([]byte, error) {
	return r.RenderTopicGraphFn(b, table)
}

func (r *SiteRenderer) Assets(b *topicviz.Bundle) (map[string][]byte, error) {
	return r.AssetsFn(b)
}

var _ topicviz.PlotDetector = (*PlotDetector)(nil)

// PlotDetector is a mock implementation of topicviz.PlotDetector.
type PlotDetector struct {
	DetectFn func(html string) topicviz.PlotProbe
}

func (d *PlotDetector) Detect(html string) topicviz.PlotProbe {
	return d.DetectFn(html)
}

var _ topicviz.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of topicviz.SitemapWriter.
type SitemapWriter struct {
	BuildFn func(pages []string) ([]byte, error)
}

func (w *SitemapWriter) Build(pages []string) ([]byte, error) {
	return w.BuildFn(pages)
}
