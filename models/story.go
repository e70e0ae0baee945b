package models

import "strings"

// StoryFields holds everything a story row needs to render.
// The key (ObjectID) is deliberately not part of it - rows don't need it.
type StoryFields struct {
	Title       string `json:"title" msgpack:"title"`
	URL         string `json:"url" msgpack:"url"`
	Author      string `json:"author" msgpack:"author"`
	NumComments int    `json:"num_comments" msgpack:"num_comments"`
	Points      int    `json:"points" msgpack:"points"`
}

// Story is one entry of the list. Stories are created once at startup
// and never modified afterwards.
type Story struct {
	StoryFields
	ObjectID int `json:"objectID" msgpack:"objectID"`
}

// Split separates the identity key from the rest of the fields
func (s Story) Split() (objectID int, fields StoryFields) {
	return s.ObjectID, s.StoryFields
}

// SeedStories returns the fixed story list.
// A fresh slice is returned on every call so callers can't mutate a shared copy.
func SeedStories() []Story {
	return []Story{
		{
			StoryFields: StoryFields{
				Title:       "React",
				URL:         "https://reactjs.org/",
				Author:      "Jordan Walke",
				NumComments: 3,
				Points:      4,
			},
			ObjectID: 0,
		},
		{
			StoryFields: StoryFields{
				Title:       "Redux",
				URL:         "https://redux.js.org/",
				Author:      "Dan Abramov, Andrew Clark",
				NumComments: 2,
				Points:      5,
			},
			ObjectID: 1,
		},
	}
}

// SearchStories returns, in their original order, the stories whose title
// contains term, ignoring case. An empty term matches every story.
// The result is always a new slice (never nil), so the source is never exposed for writes.
func SearchStories(stories []Story, term string) []Story {
	needle := strings.ToLower(term)

	out := make([]Story, 0, len(stories))
	for _, story := range stories {
		if strings.Contains(strings.ToLower(story.Title), needle) {
			out = append(out, story)
		}
	}
	return out
}
