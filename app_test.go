package topicviz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topiclab/topicviz"
)

func TestApp_Validate(t *testing.T) {
	t.Parallel()

	valid := func() *topicviz.App {
		return &topicviz.App{
			Slug:       "heart-failure-nmtf-34",
			Dataset:    "heart_failure",
			Method:     topicviz.MethodNMTF,
			TopicCount: 34,
		}
	}

	t.Run("valid app", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, valid().Validate())
	})

	t.Run("missing slug", func(t *testing.T) {
		t.Parallel()

		app := valid()
		app.Slug = ""

		err := app.Validate()
		require.Error(t, err)
		assert.Equal(t, topicviz.EINVALID, topicviz.ErrorCode(err))
	})

	t.Run("missing dataset", func(t *testing.T) {
		t.Parallel()

		app := valid()
		app.Dataset = ""

		assert.Equal(t, topicviz.EINVALID, topicviz.ErrorCode(app.Validate()))
	})

	t.Run("unknown method", func(t *testing.T) {
		t.Parallel()

		app := valid()
		app.Method = "lda"

		assert.Equal(t, topicviz.EINVALID, topicviz.ErrorCode(app.Validate()))
	})

	t.Run("zero topic count", func(t *testing.T) {
		t.Parallel()

		app := valid()
		app.TopicCount = 0

		assert.Equal(t, topicviz.EINVALID, topicviz.ErrorCode(app.Validate()))
	})
}
