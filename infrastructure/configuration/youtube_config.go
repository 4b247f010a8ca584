package configuration

import (
	"fmt"
)

const defaultTokenPath = "google_oauth_tokens.json"

// DefaultScopes are requested at login: comment moderation plus the basic
// profile used by /api/userinfo.
var DefaultScopes = []string{
	"https://www.googleapis.com/auth/youtube.force-ssl",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
}

func initYouTube(C *Config) {
	scheme := "http"
	if C.App.TLSEnabled {
		scheme = "https"
	}
	defaultRedirect := fmt.Sprintf("%s://localhost:%d/auth/google/callback", scheme, C.App.Port)

	C.YouTube.ClientID = getConfigValue(C.YouTube.ClientID, "GOOGLE_CLIENT_ID", "")
	C.YouTube.ClientSecret = getConfigValue(C.YouTube.ClientSecret, "GOOGLE_CLIENT_SECRET", "")
	C.YouTube.RedirectURI = getConfigValue(C.YouTube.RedirectURI, "GOOGLE_REDIRECT_URI", defaultRedirect)
	C.YouTube.APIKey = getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", "")
	C.YouTube.ChannelID = getConfigValue(C.YouTube.ChannelID, "YOUTUBE_CHANNEL_ID", "")
	C.YouTube.TokenPath = getConfigValue(C.YouTube.TokenPath, "TOKEN_PATH", defaultTokenPath)
	if len(C.YouTube.Scopes) == 0 {
		C.YouTube.Scopes = DefaultScopes
	}
}
