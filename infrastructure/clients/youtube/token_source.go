package youtube

import (
	"sync"
	"time"

	"youtube-companion/domain/model"
	"youtube-companion/domain/repository"
	"youtube-companion/infrastructure/logger"

	"golang.org/x/oauth2"
)

// persistingTokenSource saves every newly minted access token to the store.
// A refresh response without a refresh token keeps the previous one.
type persistingTokenSource struct {
	mu    sync.Mutex
	base  oauth2.TokenSource
	store repository.ITokenStore
	last  model.Session
}

func newPersistingTokenSource(base oauth2.TokenSource, store repository.ITokenStore, session model.Session) *persistingTokenSource {
	return &persistingTokenSource{base: base, store: store, last: session}
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken == s.last.AccessToken {
		return tok, nil
	}

	next := sessionFromToken(tok, s.last)
	if s.store != nil {
		if err := s.store.Save(&next); err != nil {
			logger.GetLogger().WithField("error", err).Warn("failed persisting refreshed token")
		} else {
			logger.GetLogger().WithField("expiry", next.Expiry).Info("Token refreshed and persisted")
		}
	}
	s.last = next
	return tok, nil
}

func tokenFromSession(s *model.Session) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		Expiry:       s.Expiry,
	}
	// Without a known expiry the access token is treated as stale so the
	// first call refreshes it.
	if tok.Expiry.IsZero() && tok.RefreshToken != "" {
		tok.Expiry = time.Now().Add(-time.Minute)
	}
	return tok
}

// SessionFromToken builds a session from a token returned by the OAuth
// exchange, keeping fields from previous that the token does not carry.
func SessionFromToken(tok *oauth2.Token, previous *model.Session) model.Session {
	var prev model.Session
	if previous != nil {
		prev = *previous
	}
	return sessionFromToken(tok, prev)
}

func sessionFromToken(tok *oauth2.Token, prev model.Session) model.Session {
	next := model.Session{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
		Scope:        prev.Scope,
		ChannelID:    prev.ChannelID,
	}
	if next.RefreshToken == "" {
		next.RefreshToken = prev.RefreshToken
	}
	if scope, ok := tok.Extra("scope").(string); ok && scope != "" {
		next.Scope = scope
	}
	return next
}
