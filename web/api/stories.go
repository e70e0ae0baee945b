package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"hackerstories/models"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SearchInput is the body of PUT /api/v1/search
type SearchInput struct {
	Search *string `json:"search"`
}

// writeSuccess sends a successful JSON response with data.
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

// writeError sends an error JSON response.
func writeError(ctx rweb.Context, status int, message string) error {
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

// Stories serves the story API. Each browser session has its own search text in States.
type Stories struct {
	Records []models.Story
	States  *models.SearchStates
}

// SessionState returns the search state of the request's session
func (s Stories) SessionState(ctx rweb.Context) *models.SearchState {
	sessionID, _ := ctx.Get("session_id").(string)
	return s.States.For(sessionID)
}

// ListStories handles GET /api/v1/stories
// Returns the filtered view for the session's search text.
//
// Query parameters:
//   - search: applied as a search change first (an empty value is a valid search)
//
// Clients sending X-Body-Encoding: msgpack get the payload as msgpack bytes.
func (s Stories) ListStories(ctx rweb.Context) error {
	state := s.SessionState(ctx)
	if term, ok := SearchParam(ctx); ok {
		state.Set(term)
	}

	result := models.NewSearchResult(s.Records, state.Term())
	if WantsMsgPack(ctx.Request().Header("X-Body-Encoding")) {
		return writeMsgPack(ctx, result)
	}
	return writeSuccess(ctx, http.StatusOK, result)
}

// GetSearch handles GET /api/v1/search
func (s Stories) GetSearch(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, map[string]string{
		"search": s.SessionState(ctx).Term(),
	})
}

// UpdateSearch handles PUT /api/v1/search
// Replaces the session's search text and returns the new filtered view.
func (s Stories) UpdateSearch(ctx rweb.Context) error {
	term, err := DecodeSearchInput(ctx.Request().Body())
	if err != nil {
		logger.LogErr(err, "invalid search input")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	state := s.SessionState(ctx)
	state.Set(term)

	return writeSuccess(ctx, http.StatusOK, models.NewSearchResult(s.Records, state.Term()))
}

// Health handles GET /health
func Health(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, map[string]string{"status": "ok"})
}

// DecodeSearchInput reads the new search text from a PUT body.
// The "search" field is required but may be empty.
func DecodeSearchInput(body []byte) (string, error) {
	var input SearchInput
	if err := json.Unmarshal(body, &input); err != nil {
		return "", serr.Wrap(err, "failed to decode request body")
	}
	if input.Search == nil {
		return "", serr.New("search is required")
	}
	return *input.Search, nil
}

// SearchParam reports the "search" query parameter and whether it was present at all,
// so that ?search= (match everything) differs from no parameter.
func SearchParam(ctx rweb.Context) (string, bool) {
	return searchFromQuery(ctx.Request().Query())
}

func searchFromQuery(rawQuery string) (string, bool) {
	if rawQuery == "" {
		return "", false
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to parse query"), "bad query string")
		return "", false
	}
	terms, ok := values["search"]
	if !ok || len(terms) == 0 {
		return "", false
	}
	return terms[0], true
}

// WantsMsgPack reports whether the X-Body-Encoding header asks for msgpack
func WantsMsgPack(encoding string) bool {
	return strings.EqualFold(strings.TrimSpace(encoding), "msgpack")
}

func writeMsgPack(ctx rweb.Context, result models.SearchResult) error {
	b, err := result.EncodeMsgPack()
	if err != nil {
		logger.LogErr(err, "msgpack encoding failed")
		return writeError(ctx, http.StatusInternalServerError, "encoding failed")
	}
	ctx.Response().SetHeader("Content-Type", models.MsgPackContentType)
	return ctx.Bytes(b)
}
