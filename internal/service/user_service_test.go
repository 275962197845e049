package service

import (
	"Catalog/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// newUserService — свежий мок на каждый подтест.
func newUserService() (*mockUserRepo, *UserService) {
	m := new(mockUserRepo)
	return m, NewUserService(m)
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("ok when username and email free", func(t *testing.T) {
		m, svc := newUserService()
		m.On("GetUserByUsername", mock.Anything, "john").Return(nil, gorm.ErrRecordNotFound).Once()
		m.On("GetUserByEmail", mock.Anything, "john@example.com").Return(nil, gorm.ErrRecordNotFound).Once()
		created := &model.User{ID: 10, Username: "john", Email: "john@example.com"}
		m.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "john" && u.Email == "john@example.com" &&
				u.Password != "p@ssword" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("p@ssword")) == nil
		})).Return(created, nil).Once()

		user, err := svc.Register(ctx, " john ", "John@Example.com", "p@ssword")
		assert.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("conflict when username taken", func(t *testing.T) {
		m, svc := newUserService()
		m.On("GetUserByUsername", mock.Anything, "john").Return(&model.User{ID: 1, Username: "john"}, nil).Once()

		user, err := svc.Register(ctx, "john", "other@example.com", "p@ssword")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUsernameTaken)
		m.AssertExpectations(t)
	})

	t.Run("conflict when email taken", func(t *testing.T) {
		m, svc := newUserService()
		m.On("GetUserByUsername", mock.Anything, "kate").Return(nil, gorm.ErrRecordNotFound).Once()
		m.On("GetUserByEmail", mock.Anything, "john@example.com").Return(&model.User{ID: 1}, nil).Once()

		_, err := svc.Register(ctx, "kate", "john@example.com", "p@ssword")
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		m, svc := newUserService()
		var verr *ValidationError

		_, err := svc.Register(ctx, "jo", "jo@example.com", "p@ssword")
		assert.ErrorAs(t, err, &verr)
		_, err = svc.Register(ctx, "john", "not-an-email", "p@ssword")
		assert.ErrorAs(t, err, &verr)
		_, err = svc.Register(ctx, "john", "john@example.com", "123")
		assert.ErrorAs(t, err, &verr)

		m.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	// готовим хеш для пароля "secret"
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)

	t.Run("ok with valid credentials", func(t *testing.T) {
		m, svc := newUserService()
		m.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(&model.User{ID: 2, Username: "alice", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "Alice@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		m.AssertExpectations(t)
	})

	t.Run("invalid password", func(t *testing.T) {
		m, svc := newUserService()
		m.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(&model.User{ID: 2, Username: "alice", Password: string(hash)}, nil).Once()

		user, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		m.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		m, svc := newUserService()
		m.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Login(ctx, "ghost@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps own username", func(t *testing.T) {
		m, svc := newUserService()
		m.On("GetUserByUsername", mock.Anything, "alice").Return(&model.User{ID: 2, Username: "alice"}, nil).Once()
		m.On("UpdateUser", mock.Anything, int64(2), map[string]any{"username": "alice", "profile_photo": "me.png"}).
			Return(&model.User{ID: 2, Username: "alice", ProfilePhoto: "me.png"}, nil).Once()

		u, err := svc.UpdateProfile(ctx, 2, ProfileUpdate{Username: ptrStr("alice"), ProfilePhoto: ptrStr("me.png")})
		assert.NoError(t, err)
		assert.Equal(t, "me.png", u.ProfilePhoto)
		m.AssertExpectations(t)
	})

	t.Run("email of someone else", func(t *testing.T) {
		m, svc := newUserService()
		m.On("GetUserByEmail", mock.Anything, "bob@example.com").Return(&model.User{ID: 3}, nil).Once()

		_, err := svc.UpdateProfile(ctx, 2, ProfileUpdate{Email: ptrStr("bob@example.com")})
		assert.ErrorIs(t, err, ErrEmailTaken)
		m.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("password is rehashed", func(t *testing.T) {
		m, svc := newUserService()
		m.On("UpdateUser", mock.Anything, int64(2), mock.MatchedBy(func(u map[string]any) bool {
			h, ok := u["password"].(string)
			return ok && len(u) == 1 && bcrypt.CompareHashAndPassword([]byte(h), []byte("newsecret")) == nil
		})).Return(&model.User{ID: 2}, nil).Once()

		_, err := svc.UpdateProfile(ctx, 2, ProfileUpdate{Password: ptrStr("newsecret")})
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("deleted user", func(t *testing.T) {
		m, svc := newUserService()
		m.On("UpdateUser", mock.Anything, int64(9), map[string]any{"profile_photo": model.DefaultProfilePhoto}).
			Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.UpdateProfile(ctx, 9, ProfileUpdate{ProfilePhoto: ptrStr("  ")})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	m := new(mockUserRepo)
	svc := NewUserService(m)

	m.On("DeleteUser", mock.Anything, int64(2)).Return(nil).Once()
	m.On("DeleteUser", mock.Anything, int64(3)).Return(gorm.ErrRecordNotFound).Once()

	assert.NoError(t, svc.DeleteAccount(ctx, 2))
	assert.ErrorIs(t, svc.DeleteAccount(ctx, 3), ErrUserNotFound)
	m.AssertExpectations(t)
}
