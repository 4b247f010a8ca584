package dto

// EventLogQuery represents GET /api/events. Dates are RFC3339 or YYYY-MM-DD.
type EventLogQuery struct {
	EventType string `form:"eventType"`
	VideoID   string `form:"videoId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Limit     int    `form:"limit"`
}
