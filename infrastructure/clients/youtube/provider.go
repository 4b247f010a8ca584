package youtube

import (
	"context"
	"fmt"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/configuration"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Config represents YouTube API configuration
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
	ChannelID    string
	APIKey       string
}

func ConfigFrom(cfg configuration.YouTube) Config {
	return Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       cfg.Scopes,
		ChannelID:    cfg.ChannelID,
		APIKey:       cfg.APIKey,
	}
}

// OAuthConfig is shared by the login flow and the refreshing token source.
func (c Config) OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       c.Scopes,
		Endpoint:     google.Endpoint,
	}
}

// Provider builds per-session clients. Refreshed tokens are written back to
// the token store.
type Provider struct {
	config      Config
	oauthConfig *oauth2.Config
	store       repository.ITokenStore
	// endpoint overrides the API base URL; empty uses the public endpoint.
	endpoint string
}

func NewProvider(config Config, store repository.ITokenStore) *Provider {
	return &Provider{config: config, oauthConfig: config.OAuthConfig(), store: store}
}

var _ repository.IYouTubeProvider = (*Provider)(nil)

// ForSession uses the session's OAuth credential when present, otherwise
// the read-only API key.
func (p *Provider) ForSession(ctx context.Context, session *model.Session) (repository.IYouTube, error) {
	channelID := p.config.ChannelID
	if session.Authenticated() && session.ChannelID != "" {
		channelID = session.ChannelID
	}

	if !session.Authenticated() {
		if p.config.APIKey == "" {
			return nil, model.NewUnauthenticatedError("YouTube API credentials not configured; login required")
		}
		service, err := youtube.NewService(ctx, p.options(option.WithAPIKey(p.config.APIKey))...)
		if err != nil {
			return nil, fmt.Errorf("failed to create YouTube service with API key: %w", err)
		}
		return newClient(service, nil, channelID), nil
	}

	ts := newPersistingTokenSource(p.oauthConfig.TokenSource(ctx, tokenFromSession(session)), p.store, *session)
	httpClient := oauth2.NewClient(ctx, ts)
	service, err := youtube.NewService(ctx, p.options(option.WithHTTPClient(httpClient))...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	userinfo, err := oauth2api.NewService(ctx, p.options(option.WithHTTPClient(httpClient))...)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo service: %w", err)
	}
	return newClient(service, userinfo, channelID), nil
}

func (p *Provider) options(opts ...option.ClientOption) []option.ClientOption {
	if p.endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.endpoint))
	}
	return opts
}
