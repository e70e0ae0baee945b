package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchResult(t *testing.T) {
	res := NewSearchResult(SeedStories(), "redux")
	assert.Equal(t, "redux", res.Search)
	require.Len(t, res.Stories, 1)
	assert.Equal(t, 1, res.Stories[0].ObjectID)

	empty := NewSearchResult(SeedStories(), "xyz")
	assert.NotNil(t, empty.Stories)
	assert.Empty(t, empty.Stories)
}

func TestSearchResultMsgPack(t *testing.T) {
	res := NewSearchResult(SeedStories(), "e")

	b, err := res.EncodeMsgPack()
	require.NoError(t, err)
	require.NotEmpty(t, b)

	decoded, err := DecodeSearchResult(b)
	require.NoError(t, err)
	assert.Equal(t, res, decoded)
}

func TestDecodeSearchResultErrors(t *testing.T) {
	_, err := DecodeSearchResult(nil)
	assert.Error(t, err)

	_, err = DecodeSearchResult([]byte{0xc1}) // never-used msgpack code
	assert.Error(t, err)
}
