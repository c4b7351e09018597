package notification

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventJSON(t *testing.T) {
	e := NewBookCreated(9007199254740993, 12, "Dune")

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "book.created", got["kind"])
	assert.Equal(t, "9007199254740993", got["authorId"], "ID按字符串输出")
	assert.Equal(t, "12", got["bookId"])
	assert.Equal(t, "Dune", got["title"])
}

func TestNewChapterPublished(t *testing.T) {
	e := NewChapterPublished(3, "Chapter 1")

	assert.Equal(t, KindChapterPublished, e.Kind)
	assert.Equal(t, int64(3), e.BookID)
	assert.Zero(t, e.AuthorID)
	assert.False(t, e.OccurredAt.IsZero())
}
