package dto

// VideoUpdateRequest represents PUT /api/videos/:videoId. A nil field is
// filled from the current provider value.
type VideoUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

// CommentListQuery accepts both camelCase and snake_case max results.
type CommentListQuery struct {
	MaxResults      int64 `form:"maxResults"`
	MaxResultsSnake int64 `form:"max_results"`
}

func (q CommentListQuery) Limit() int64 {
	if q.MaxResults > 0 {
		return q.MaxResults
	}
	return q.MaxResultsSnake
}

// CountResponse is what list operations record in the audit log instead of
// the full payload.
type CountResponse struct {
	Count int `json:"count"`
}
