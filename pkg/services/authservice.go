package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"webmart-io/store/internal/validators"
	"webmart-io/store/pkg/kv"
	"webmart-io/store/pkg/models"
	"webmart-io/store/pkg/util"
)

// AuthServiceImpl implements the demo AuthService: any well-formed email
// with a password of at least 8 characters signs in.
type AuthServiceImpl struct {
	store kv.Store
	obs   observers[*models.User]
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(store kv.Store) AuthService {
	return &AuthServiceImpl{store: store}
}

func (as *AuthServiceImpl) Login(ctx context.Context, email, password string) (*models.User, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if err := validators.Validate.Var(e, "required,email"); err != nil {
		return nil, ErrBadCredentials
	}
	if len(password) < MIN_PASSWORD_LENGTH {
		return nil, ErrBadCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           util.NewID("u"),
		Email:        e,
		Name:         displayName(e),
		PasswordHash: string(hash),
		Verified:     true,
	}
	if err := as.store.Set(ctx, AUTH_KEY, models.AuthState{User: user}); err != nil {
		return nil, err
	}
	as.obs.emit(user)
	return user, nil
}

// Signup requires a name of at least 2 characters, then behaves as Login.
func (as *AuthServiceImpl) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if len(strings.TrimSpace(name)) < 2 {
		return nil, ErrBadCredentials
	}
	return as.Login(ctx, email, password)
}

func (as *AuthServiceImpl) Logout(ctx context.Context) {
	if err := as.store.Set(ctx, AUTH_KEY, models.AuthState{}); err != nil {
		util.LogError("failed to persist logout", err)
	}
	as.obs.emit(nil)
}

// Current returns the signed-in user, nil when signed out.
func (as *AuthServiceImpl) Current(ctx context.Context) *models.User {
	var state models.AuthState
	if !as.store.Get(ctx, AUTH_KEY, &state) {
		return nil
	}
	return state.User
}

func (as *AuthServiceImpl) Subscribe(fn func(*models.User)) {
	as.obs.subscribe(fn)
}

// displayName derives "maya.chen" -> "Maya Chen" from the email local part.
func displayName(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	words := strings.FieldsFunc(local, func(r rune) bool { return r == '.' || r == '_' || r == '-' })
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
