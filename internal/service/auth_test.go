package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_catalog/internal/apperr"
	"github.com/Skotchmaster/shop_catalog/internal/testutil"
)

func TestAuth_RegisterLoginValidate(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	reg, err := s.Auth.Register(ctx, "new@example.com", "pw", "newbie")
	require.NoError(t, err)
	require.NotEmpty(t, reg.Token)
	require.NotZero(t, reg.User.ID)

	login, err := s.Auth.Login(ctx, "new@example.com", "pw")
	require.NoError(t, err)

	u, err := s.Auth.Resolve(ctx, login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, u.ID)

	u, err = s.Auth.Resolve(ctx, "Bearer "+reg.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, u.ID)

	assert.Equal(t, []string{"user_registered", "user_logged_in"}, s.Events.types())
}

func TestAuth_PasswordNeverSerialized(t *testing.T) {
	t.Parallel()
	s := newServices(t)

	res, err := s.Auth.Login(context.Background(), s.F.Users[0].Email, testutil.Password)
	require.NoError(t, err)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), res.User.Password)
}

func TestAuth_Register_Errors(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	tests := []struct {
		name                      string
		email, password, userName string
		kind                      apperr.Kind
	}{
		{name: "missing email", password: "pw", userName: "x", kind: apperr.KindValidation},
		{name: "missing password", email: "a@b.c", userName: "x", kind: apperr.KindValidation},
		{name: "missing userName", email: "a@b.c", password: "pw", kind: apperr.KindValidation},
		{name: "duplicate email", email: s.F.Users[0].Email, password: "pw", userName: "x", kind: apperr.KindConflict},
		{name: "password over bcrypt limit", email: "long@b.c", password: strings.Repeat("p", 80), userName: "x", kind: apperr.KindValidation},
	}

	for _, tt := range tests {
		_, err := s.Auth.Register(ctx, tt.email, tt.password, tt.userName)
		requireKind(t, err, tt.kind)
	}
}

func TestAuth_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	_, errUnknown := s.Auth.Login(ctx, "nobody@example.com", "pw")
	_, errWrong := s.Auth.Login(ctx, s.F.Users[0].Email, "wrong")

	requireKind(t, errUnknown, apperr.KindUnauthorized)
	requireKind(t, errWrong, apperr.KindUnauthorized)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
	assert.Equal(t, MsgInvalidCredentials, errWrong.Error())
}

func TestAuth_Resolve_Rejects(t *testing.T) {
	t.Parallel()
	s := newServices(t)
	ctx := context.Background()

	_, err := s.Auth.Resolve(ctx, "")
	requireKind(t, err, apperr.KindUnauthorized)

	_, err = s.Auth.Resolve(ctx, "garbage")
	requireKind(t, err, apperr.KindUnauthorized)

	other := &AuthService{Repo: s.Auth.Repo, Secret: []byte("another")}
	res, err := other.Login(ctx, s.F.Users[0].Email, testutil.Password)
	require.NoError(t, err)
	_, err = s.Auth.Resolve(ctx, res.Token)
	requireKind(t, err, apperr.KindUnauthorized)

	require.NoError(t, s.Auth.Repo.DB.Delete(&s.F.Users[1]).Error)
	ghost, err := s.Auth.issue(&s.F.Users[1])
	require.NoError(t, err)
	_, err = s.Auth.Resolve(ctx, ghost.Token)
	requireKind(t, err, apperr.KindUnauthorized)
}
