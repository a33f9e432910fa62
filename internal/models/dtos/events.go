package dtos

// Event mirrors the upstream event serializer.
type Event struct {
	ID            FlexID `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	Location      string `json:"location,omitempty"`
	Format        string `json:"format,omitempty"`
	Image         string `json:"image,omitempty"`
	Speakers      string `json:"speakers,omitempty"`
	WhatToExpect  string `json:"what_to_expect,omitempty"`
	Community     FlexID `json:"community"`
	CommunityName string `json:"community_name"`
	CommunityLogo string `json:"community_logo,omitempty"`
	CreatedBy     FlexID `json:"created_by,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// EventStats mirrors GET /events/stats/
type EventStats struct {
	TotalEvents    int `json:"total_events"`
	UpcomingEvents int `json:"upcoming_events"`
}

// EventRegistration is one row on the registration page.
type EventRegistration struct {
	ID           FlexID `json:"id"`
	Event        FlexID `json:"event"`
	User         FlexID `json:"user"`
	Username     string `json:"username,omitempty"`
	RegisteredAt string `json:"registered_at,omitempty"`
}
