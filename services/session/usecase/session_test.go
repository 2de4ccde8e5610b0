package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/pkg/storage"
	"github.com/fastbuka/rider/services/session"
	"github.com/fastbuka/rider/services/session/mocks"
	"github.com/fastbuka/rider/services/session/usecase"
	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	return &models.User{
		Email:   "john@x.com",
		Profile: models.Profile{FirstName: "John", LastName: "Doe", Username: "johnd"},
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("server-key"))
	require.NoError(t, err)
	return token
}

func setup(t *testing.T) (*usecase.SessionUC, *mocks.MockSessionRepo, *mocks.MockSessionGW) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSessionRepo(ctrl)
	gw := mocks.NewMockSessionGW(ctrl)
	return usecase.NewSessionUC(repo, gw), repo, gw
}

func TestRestore(t *testing.T) {
	t.Run("token and user present", func(t *testing.T) {
		uc, repo, _ := setup(t)
		repo.EXPECT().Load(gomock.Any()).Return("T1", testUser(), nil)

		s := uc.Restore(context.Background())

		assert.True(t, s.Authenticated)
		assert.Equal(t, "John", s.User.Profile.FirstName)
		assert.Equal(t, "Doe", s.User.Profile.LastName)
		assert.Equal(t, "johnd", s.User.Profile.Username)
		assert.Equal(t, "john@x.com", s.User.Email)
		assert.True(t, uc.Authenticated())
		assert.Equal(t, "T1", uc.Token())
	})

	t.Run("nothing stored", func(t *testing.T) {
		uc, repo, _ := setup(t)
		repo.EXPECT().Load(gomock.Any()).Return("", nil, storage.ErrNotFound)

		s := uc.Restore(context.Background())

		assert.False(t, s.Authenticated)
		assert.Empty(t, uc.Token())
	})

	t.Run("storage failure degrades to signed out", func(t *testing.T) {
		uc, repo, _ := setup(t)
		repo.EXPECT().Load(gomock.Any()).Return("", nil, errors.New("failed to decode stored user"))

		s := uc.Restore(context.Background())

		assert.False(t, s.Authenticated)
	})

	t.Run("expired jwt is cleared", func(t *testing.T) {
		uc, repo, _ := setup(t)
		repo.EXPECT().Load(gomock.Any()).Return(signedToken(t, time.Now().Add(-time.Hour)), testUser(), nil)
		repo.EXPECT().Clear(gomock.Any()).Return(nil)

		s := uc.Restore(context.Background())

		assert.False(t, s.Authenticated)
		assert.Empty(t, uc.Token())
	})

	t.Run("unexpired jwt is kept", func(t *testing.T) {
		uc, repo, _ := setup(t)
		token := signedToken(t, time.Now().Add(time.Hour))
		repo.EXPECT().Load(gomock.Any()).Return(token, testUser(), nil)

		s := uc.Restore(context.Background())

		assert.True(t, s.Authenticated)
		assert.Equal(t, token, uc.Token())
	})
}

func TestSignIn(t *testing.T) {
	t.Run("success persists and authenticates", func(t *testing.T) {
		uc, repo, gw := setup(t)
		gw.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "john@x.com", Password: "validpass123"}).
			Return(&models.AuthResponse{Token: "T1", User: *testUser()}, nil)
		repo.EXPECT().Save(gomock.Any(), "T1", *testUser()).Return(nil)

		err := uc.SignIn(context.Background(), " john@x.com ", "validpass123")

		require.NoError(t, err)
		assert.True(t, uc.Authenticated())
		assert.Equal(t, "T1", uc.Token())
		assert.Equal(t, "John", uc.Current().User.Profile.FirstName)
	})

	t.Run("remote rejection", func(t *testing.T) {
		uc, _, gw := setup(t)
		gw.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, errors.New("api error: 200 Invalid credentials"))

		err := uc.SignIn(context.Background(), "john@x.com", "wrongpass1")

		assert.ErrorIs(t, err, session.ErrSignInFailed)
		assert.False(t, uc.Authenticated())
		assert.Empty(t, uc.Token())
	})

	t.Run("persist failure keeps the in-memory session", func(t *testing.T) {
		uc, repo, gw := setup(t)
		gw.EXPECT().Login(gomock.Any(), gomock.Any()).Return(&models.AuthResponse{Token: "T1", User: *testUser()}, nil)
		repo.EXPECT().Save(gomock.Any(), "T1", gomock.Any()).Return(errors.New("disk full"))

		require.NoError(t, uc.SignIn(context.Background(), "john@x.com", "validpass123"))
		assert.True(t, uc.Authenticated())
	})

	invalid := []struct {
		name     string
		email    string
		password string
		field    string
	}{
		{name: "bad email", email: "john", password: "validpass123", field: "email"},
		{name: "empty password", email: "john@x.com", password: "", field: "password"},
		{name: "short password", email: "john@x.com", password: "short", field: "password"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			// No gateway expectations: the call must never reach the network
			uc, _, _ := setup(t)

			err := uc.SignIn(context.Background(), tt.email, tt.password)

			var inputErr *session.InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
			assert.False(t, uc.Authenticated())
		})
	}
}

func TestSignOut(t *testing.T) {
	signedIn := func(t *testing.T) (*usecase.SessionUC, *mocks.MockSessionRepo, *mocks.MockSessionGW) {
		uc, repo, gw := setup(t)
		repo.EXPECT().Load(gomock.Any()).Return("T1", testUser(), nil)
		uc.Restore(context.Background())
		return uc, repo, gw
	}

	t.Run("clears state and runs reset hooks", func(t *testing.T) {
		uc, repo, gw := signedIn(t)
		gw.EXPECT().Logout(gomock.Any()).Return(nil)
		repo.EXPECT().Clear(gomock.Any()).Return(nil)

		resets := 0
		uc.OnReset(func() { resets++ })

		uc.SignOut(context.Background())

		assert.False(t, uc.Authenticated())
		assert.Empty(t, uc.Token())
		assert.Equal(t, 1, resets)
	})

	t.Run("remote failure still clears local state", func(t *testing.T) {
		uc, repo, gw := signedIn(t)
		gw.EXPECT().Logout(gomock.Any()).Return(errors.New("request failed: connection refused"))
		repo.EXPECT().Clear(gomock.Any()).Return(nil)

		uc.SignOut(context.Background())

		assert.False(t, uc.Authenticated())
	})

	t.Run("signed out skips the remote call", func(t *testing.T) {
		uc, repo, _ := setup(t)
		repo.EXPECT().Clear(gomock.Any()).Return(nil)

		uc.SignOut(context.Background())

		assert.False(t, uc.Authenticated())
	})
}

func TestSubscribe(t *testing.T) {
	uc, repo, _ := setup(t)

	ch, cancel := uc.Subscribe()
	defer cancel()

	initial := <-ch
	assert.False(t, initial.Authenticated)

	repo.EXPECT().Load(gomock.Any()).Return("T1", testUser(), nil)
	uc.Restore(context.Background())

	select {
	case s := <-ch:
		assert.True(t, s.Authenticated)
	case <-time.After(time.Second):
		t.Fatal("no session update")
	}
}
