package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/audit"
	youtubeclient "youtube-companion/infrastructure/clients/youtube"
	"youtube-companion/infrastructure/logger"
	"youtube-companion/infrastructure/utils"
)

const (
	stateTTL    = 10 * time.Minute
	userInfoTTL = 5 * time.Minute
	notLoggedIn = "Not logged in"
)

type IAuthUsecase interface {
	// AuthURL returns the consent URL with a freshly signed state.
	AuthURL() (string, error)
	Complete(ctx context.Context, state, code string) (*model.Session, error)
	Logout(ctx context.Context) error
	UserInfo(ctx context.Context, session *model.Session) (*model.UserInfo, error)
}

type AuthUsecase struct {
	oauthConfig *oauth2.Config
	secretKey   string
	store       repository.ITokenStore
	provider    repository.IYouTubeProvider
	cache       repository.IUserInfoCache
	events      audit.IEventLogger
}

func NewAuthUsecase(
	oauthConfig *oauth2.Config,
	secretKey string,
	store repository.ITokenStore,
	provider repository.IYouTubeProvider,
	cache repository.IUserInfoCache,
	events audit.IEventLogger,
) IAuthUsecase {
	return &AuthUsecase{
		oauthConfig: oauthConfig,
		secretKey:   secretKey,
		store:       store,
		provider:    provider,
		cache:       cache,
		events:      events,
	}
}

func (u *AuthUsecase) AuthURL() (string, error) {
	state, err := utils.GenerateState(u.secretKey, stateTTL)
	if err != nil {
		return "", fmt.Errorf("sign state: %w", err)
	}
	return u.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent")), nil
}

// Complete exchanges the authorization code and persists the session.
func (u *AuthUsecase) Complete(ctx context.Context, state, code string) (*model.Session, error) {
	if strings.TrimSpace(code) == "" {
		return nil, model.NewValidationError("Authorization code missing")
	}
	if err := utils.VerifyState(u.secretKey, state); err != nil {
		logger.WithContext(ctx).WithField("error", err).Warn("Rejected OAuth callback")
		return nil, model.NewValidationError("Invalid state")
	}

	tok, err := u.oauthConfig.Exchange(ctx, code)
	if err != nil {
		u.record(ctx, "login", nil, err)
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	session := youtubeclient.SessionFromToken(tok, u.store.Load())
	session.ChannelID = u.resolveChannel(ctx, &session)

	if err := u.store.Save(&session); err != nil {
		u.record(ctx, "login", nil, err)
		return nil, fmt.Errorf("save session: %w", err)
	}
	u.record(ctx, "login", map[string]any{"channelId": session.ChannelID, "scope": session.Scope}, nil)
	return &session, nil
}

// resolveChannel is best-effort; a failure keeps whatever id was known.
func (u *AuthUsecase) resolveChannel(ctx context.Context, session *model.Session) string {
	yt, err := u.provider.ForSession(ctx, session)
	if err == nil {
		var id string
		if id, err = yt.MyChannelID(ctx); err == nil && id != "" {
			return id
		}
	}
	if err != nil {
		logger.WithContext(ctx).WithField("error", err).Warn("Could not resolve channel id")
	}
	return session.ChannelID
}

func (u *AuthUsecase) Logout(ctx context.Context) error {
	current := u.store.Load()
	if err := u.store.Clear(); err != nil {
		u.record(ctx, "logout", nil, err)
		return fmt.Errorf("clear session: %w", err)
	}
	if current != nil {
		if err := u.cache.Delete(ctx, current.AccessToken); err != nil {
			logger.WithContext(ctx).WithField("error", err).Warn("Error while evicting user info cache")
		}
	}
	u.record(ctx, "logout", map[string]bool{"success": true}, nil)
	return nil
}

func (u *AuthUsecase) UserInfo(ctx context.Context, session *model.Session) (*model.UserInfo, error) {
	if !session.Authenticated() {
		return nil, model.NewUnauthenticatedError(notLoggedIn)
	}
	cached, err := u.cache.Get(ctx, session.AccessToken)
	if err != nil {
		logger.WithContext(ctx).WithField("error", err).Warn("Error while reading user info cache")
	}
	if cached != nil {
		return cached, nil
	}

	yt, err := u.provider.ForSession(ctx, session)
	if err != nil {
		return nil, err
	}
	info, err := yt.UserInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	if err := u.cache.Set(ctx, session.AccessToken, info, userInfoTTL); err != nil {
		logger.WithContext(ctx).WithField("error", err).Warn("Error while writing user info cache")
	}
	return info, nil
}

func (u *AuthUsecase) record(ctx context.Context, action string, response any, err error) {
	_ = u.events.Log(ctx, audit.Entry{Type: model.EventTypeAuth, Action: action, Response: response, Err: err})
}
