package html_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topiclab/topicviz"
	"github.com/topiclab/topicviz/html"
)

func testBundle(tb testing.TB) *topicviz.Bundle {
	tb.Helper()
	src, err := topicviz.ParseSourceName("heart_failure_with_pagerank_nmtf_bpe_34")
	require.NoError(tb, err)
	return &topicviz.Bundle{Source: src}
}

func TestRenderer_RenderIndex(t *testing.T) {
	t.Parallel()

	r, err := html.NewRenderer()
	require.NoError(t, err)

	t.Run("Minimal", func(t *testing.T) {
		t.Parallel()
		out, err := r.RenderIndex(testBundle(t))
		require.NoError(t, err)
		page := string(out)
		assert.Contains(t, page, "<title>Heart Failure Topic Analysis - NMTF</title>")
		assert.Contains(t, page, "NMTF-based Topic Modeling Results (34 Topics)")
		assert.Contains(t, page, `<div class="stat-value" id="total-topics">34</div>`)
		assert.NotContains(t, page, `data-section="violin"`)
		assert.NotContains(t, page, "images/umap.png")
	})

	t.Run("WithViolinAndUMAP", func(t *testing.T) {
		t.Parallel()
		b := testBundle(t)
		b.HasViolin = true
		b.HasUMAP = true
		out, err := r.RenderIndex(b)
		require.NoError(t, err)
		page := string(out)
		assert.Contains(t, page, `data-section="violin"`)
		assert.Contains(t, page, `<iframe src="violin-plot.html"`)
		assert.Contains(t, page, "images/umap.png")
	})
}

func TestRenderer_RenderTopicGraph(t *testing.T) {
	t.Parallel()

	r, err := html.NewRenderer()
	require.NoError(t, err)

	table := &topicviz.TemporalTable{
		Columns: []string{"period", "Topic 2", "Topic 10"},
		Rows: []map[string]string{
			{"period": "2020-Q1", "Topic 2": "0.5", "Topic 10": "0.1"},
		},
	}
	out, err := r.RenderTopicGraph(testBundle(t), table)
	require.NoError(t, err)
	page := string(out)
	assert.Contains(t, page, "<title>Topic Temporal Graph - NMTF</title>")
	assert.Contains(t, page, "NMTF Analysis - 34 Topics")
	assert.Contains(t, page, "const csvData = [")
	assert.Contains(t, page, `"period": "2020-Q1"`)

	// Client code derives topic order from object key order.
	idx2 := strings.Index(page, `"Topic 2"`)
	idx10 := strings.Index(page, `"Topic 10"`)
	require.True(t, idx2 >= 0 && idx10 >= 0)
	assert.Less(t, idx2, idx10)
}

func TestRenderer_Assets(t *testing.T) {
	t.Parallel()

	r, err := html.NewRenderer()
	require.NoError(t, err)

	assets, err := r.Assets(testBundle(t))
	require.NoError(t, err)
	require.Len(t, assets, 4)
	assert.Contains(t, string(assets["css/styles.css"]), ".nav-tabs")
	assert.Contains(t, string(assets["js/topics.js"]), "window.TopicData")
	assert.Contains(t, string(assets["js/app.js"]), "function init()")

	charts := string(assets["js/charts.js"])
	assert.Contains(t, charts, `colors: ["#2563eb"`)
	assert.Equal(t, 34, strings.Count(charts, `"#`))
}

func TestRenderer_Assets_MinimumPalette(t *testing.T) {
	t.Parallel()

	r, err := html.NewRenderer()
	require.NoError(t, err)

	src, err := topicviz.ParseSourceName("sepsis_with_pagerank_pnmf_bpe_5")
	require.NoError(t, err)
	assets, err := r.Assets(&topicviz.Bundle{Source: src})
	require.NoError(t, err)

	// Small models still get the full 25-color minimum.
	charts := string(assets["js/charts.js"])
	assert.Equal(t, 25, strings.Count(charts, `"#`))
}
