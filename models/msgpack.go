package models

import (
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackContentType is sent when a client asks for msgpack via X-Body-Encoding
const MsgPackContentType = "application/msgpack"

// SearchResult is the payload of the stories endpoints: the search text
// that produced the view and the view itself.
type SearchResult struct {
	Search  string  `json:"search" msgpack:"search"`
	Stories []Story `json:"stories" msgpack:"stories"`
}

// NewSearchResult derives the filtered view of stories for term
func NewSearchResult(stories []Story, term string) SearchResult {
	return SearchResult{
		Search:  term,
		Stories: SearchStories(stories, term),
	}
}

// EncodeMsgPack encodes the result to msgpack bytes.
// Embedded StoryFields are inlined, so the wire shape matches the JSON one.
func (r SearchResult) EncodeMsgPack() ([]byte, error) {
	b, err := msgpack.Marshal(r)
	if err != nil {
		return nil, serr.Wrap(err, "failed to msgpack encode search result")
	}
	return b, nil
}

// DecodeSearchResult is the inverse of EncodeMsgPack
func DecodeSearchResult(b []byte) (SearchResult, error) {
	var r SearchResult
	if len(b) == 0 {
		return r, serr.New("empty msgpack payload")
	}
	if err := msgpack.Unmarshal(b, &r); err != nil {
		return r, serr.Wrap(err, "failed to unmarshal msgpack search result")
	}
	return r, nil
}
