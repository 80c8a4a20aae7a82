package topicviz_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/topiclab/topicviz"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := topicviz.Errorf(topicviz.ENOTFOUND, "app %q not found", "test")

	assert.Equal(t, topicviz.ENOTFOUND, topicviz.ErrorCode(err))
	assert.Equal(t, "app \"test\" not found", topicviz.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, topicviz.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, topicviz.EINTERNAL, topicviz.ErrorCode(errors.New("disk on fire")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, topicviz.ErrorMessage(nil))
}
