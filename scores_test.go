package topicviz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topiclab/topicviz"
)

func TestParseScoreDocument(t *testing.T) {
	t.Parallel()

	t.Run("relevance shape", func(t *testing.T) {
		t.Parallel()

		doc, err := topicviz.ParseScoreDocument([]byte(`{
			"relevance": {
				"topic_01": {"heart": 0.9, "failure": 0.8},
				"topic_02": {"kidney": 0.7},
				"topic_03": {"lung": 0.6}
			}
		}`))

		require.NoError(t, err)
		assert.Equal(t, topicviz.ShapeRelevance, doc.Shape)
		assert.Equal(t, 3, doc.TopicCount())
	})

	t.Run("coherence shape", func(t *testing.T) {
		t.Parallel()

		doc, err := topicviz.ParseScoreDocument([]byte(`{
			"gensim": {
				"c_v_per_topic": {"Topic 1": 0.61, "Topic 2": 0.72},
				"c_v_average": 0.665
			}
		}`))

		require.NoError(t, err)
		assert.Equal(t, topicviz.ShapeCoherence, doc.Shape)
		assert.Equal(t, 2, doc.TopicCount())
		assert.InDelta(t, 0.665, doc.AverageCoherence(), 1e-9)
	})

	t.Run("relevance wins when both shapes present", func(t *testing.T) {
		t.Parallel()

		doc, err := topicviz.ParseScoreDocument([]byte(`{
			"relevance": {"topic_01": {"a": 1}},
			"gensim": {"c_v_per_topic": {"Topic 1": 0.5, "Topic 2": 0.5}}
		}`))

		require.NoError(t, err)
		assert.Equal(t, topicviz.ShapeRelevance, doc.Shape)
		assert.Equal(t, 1, doc.TopicCount())
	})

	t.Run("presence of empty relevance still resolves relevance shape", func(t *testing.T) {
		t.Parallel()

		doc, err := topicviz.ParseScoreDocument([]byte(`{
			"relevance": {},
			"gensim": {"c_v_per_topic": {"Topic 1": 0.5}}
		}`))

		require.NoError(t, err)
		assert.Equal(t, topicviz.ShapeRelevance, doc.Shape)
		assert.Equal(t, 0, doc.TopicCount())
	})

	t.Run("neither key resolves unknown with zero count", func(t *testing.T) {
		t.Parallel()

		doc, err := topicviz.ParseScoreDocument([]byte(`{"something_else": true}`))

		require.NoError(t, err)
		assert.Equal(t, topicviz.ShapeUnknown, doc.Shape)
		assert.Equal(t, 0, doc.TopicCount())
		assert.Zero(t, doc.AverageCoherence())
	})

	t.Run("gensim without c_v_per_topic is unknown", func(t *testing.T) {
		t.Parallel()

		doc, err := topicviz.ParseScoreDocument([]byte(`{"gensim": {"c_v_average": 0.7}}`))

		require.NoError(t, err)
		assert.Equal(t, topicviz.ShapeUnknown, doc.Shape)
		assert.Equal(t, 0, doc.TopicCount())
	})

	t.Run("invalid JSON returns ENODATA", func(t *testing.T) {
		t.Parallel()

		_, err := topicviz.ParseScoreDocument([]byte(`{not json`))

		require.Error(t, err)
		assert.Equal(t, topicviz.ENODATA, topicviz.ErrorCode(err))
	})
}
