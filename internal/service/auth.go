package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/hash"
	"github.com/Skotchmaster/shop_catalog/internal/logging"
	"github.com/Skotchmaster/shop_catalog/internal/models"
	"github.com/Skotchmaster/shop_catalog/internal/mykafka"
	"github.com/Skotchmaster/shop_catalog/internal/repo"
	"github.com/Skotchmaster/shop_catalog/internal/tokens"
)

type AuthService struct {
	Repo   *repo.GormRepo
	Secret []byte
	TTL    time.Duration
	Events Publisher
	Now    func() time.Time
}

type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := tokens.Issue(user.ID, s.Secret, s.now(), s.TTL)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) Register(ctx context.Context, email, password, userName string) (*AuthResult, error) {
	l := logging.With(ctx, "svc", "auth.register")

	email = strings.TrimSpace(email)
	userName = strings.TrimSpace(userName)
	switch {
	case email == "":
		return nil, apperr.Validation("email is required")
	case password == "":
		return nil, apperr.Validation("password is required")
	case userName == "":
		return nil, apperr.Validation("userName is required")
	}

	pwHash, err := hash.HashPassword(password)
	if errors.Is(err, hash.ErrPasswordTooLong) {
		return nil, apperr.Wrap(apperr.KindValidation,
			fmt.Sprintf("password must be at most %d bytes", hash.MaxPasswordBytes), err)
	}
	if err != nil {
		l.Error().Int("status", 500).Str("reason", "cannot hash the password").Err(err).Msg("register_error")
		return nil, apperr.Internal(err)
	}

	user := &models.User{Email: email, Password: pwHash, UserName: userName}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			l.Warn().Int("status", 409).Str("reason", "email taken").Msg("register_error")
			return nil, apperr.Wrap(apperr.KindConflict, MsgEmailTaken, err)
		}
		l.Error().Int("status", 500).Err(err).Msg("register_error")
		return nil, internal(err)
	}

	ev := mykafka.NewEvent("user_registered")
	ev.UserID = user.ID
	publish(ctx, s.Events, mykafka.TopicUserEvents, strconv.FormatUint(uint64(user.ID), 10), ev)

	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.With(ctx, "svc", "auth.login")

	user, err := s.Repo.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if notFound(err) {
			l.Warn().Int("status", 401).Str("reason", "unknown email").Msg("login_failed")
			return nil, apperr.Unauthorized(MsgInvalidCredentials)
		}
		l.Error().Int("status", 500).Err(err).Msg("login_failed")
		return nil, internal(err)
	}
	if !hash.CheckPassword(user.Password, password) {
		l.Warn().Int("status", 401).Str("reason", "wrong password").Uint("user_id", user.ID).Msg("login_failed")
		return nil, apperr.Unauthorized(MsgInvalidCredentials)
	}

	ev := mykafka.NewEvent("user_logged_in")
	ev.UserID = user.ID
	publish(ctx, s.Events, mykafka.TopicUserEvents, strconv.FormatUint(uint64(user.ID), 10), ev)

	return s.issue(user)
}

// Resolve verifies token and loads the user it names.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.User, error) {
	claims, err := tokens.Parse(token, s.Secret)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnauthorized, MsgInvalidToken, err)
	}
	user, err := s.Repo.UserByID(ctx, claims.UserID)
	if err != nil {
		if notFound(err) {
			return nil, apperr.Wrap(apperr.KindUnauthorized, MsgInvalidToken, err)
		}
		return nil, internal(err)
	}
	return user, nil
}
