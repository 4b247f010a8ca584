package model

import "time"

// Session is the persisted OAuth credential pair of the single operator.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Scope        string
	Expiry       time.Time
	ChannelID    string
}

func (s *Session) Authenticated() bool {
	return s != nil && (s.AccessToken != "" || s.RefreshToken != "")
}

type UserInfo struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Email     string `json:"email"`
	ChannelID string `json:"channelId"`
}
