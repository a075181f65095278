package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := *user
	r.users[user.ID] = &u
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}

// fakePasswordService prefixes passwords instead of hashing them.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashed, password string) error {
	if hashed != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	mu      sync.Mutex
	issued  map[string]adapter.TokenClaims
	revoked map[string]bool
	seq     int
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{issued: make(map[string]adapter.TokenClaims), revoked: make(map[string]bool)}
}

func (s *fakeTokenService) IssueTokenPair(_ context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	refresh := "refresh-" + userID.String() + "-" + strings.Repeat("x", s.seq)
	s.issued[refresh] = adapter.TokenClaims{UserID: userID, Email: email}
	return &adapter.TokenPair{AccessToken: "access-" + userID.String(), RefreshToken: refresh, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *fakeTokenService) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used")
}

func (s *fakeTokenService) ValidateRefreshToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	claims, ok := s.issued[token]
	if !ok || s.revoked[token] {
		return nil, domainerror.ErrInvalidToken
	}
	return &claims, nil
}

func (s *fakeTokenService) RevokeRefreshToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[token] = true
	return nil
}

func (s *fakeTokenService) RevokeAllForUser(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, claims := range s.issued {
		if claims.UserID == userID {
			s.revoked[token] = true
		}
	}
	return nil
}

type fakeResetService struct {
	tokens map[string]*adapter.PasswordResetToken
	used   map[string]bool
}

func newFakeResetService() *fakeResetService {
	return &fakeResetService{tokens: make(map[string]*adapter.PasswordResetToken), used: make(map[string]bool)}
}

func (s *fakeResetService) GenerateResetToken(_ context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	t := &adapter.PasswordResetToken{Token: uuid.NewString(), UserID: userID, Email: email, ExpiresAt: time.Now().Add(time.Hour)}
	s.tokens[t.Token] = t
	return t, nil
}

func (s *fakeResetService) ValidateResetToken(_ context.Context, token string) (*adapter.PasswordResetToken, error) {
	t, ok := s.tokens[token]
	if !ok || s.used[token] {
		return nil, domainerror.ErrInvalidResetToken
	}
	return t, nil
}

func (s *fakeResetService) ConsumeResetToken(_ context.Context, token string) error {
	s.used[token] = true
	return nil
}

type fakeEmailService struct {
	welcomes []adapter.QueueWelcomeInput
	resets   []adapter.QueuePasswordResetInput
}

func (s *fakeEmailService) QueuePasswordResetEmail(_ context.Context, input adapter.QueuePasswordResetInput) error {
	s.resets = append(s.resets, input)
	return nil
}

func (s *fakeEmailService) QueueWelcomeEmail(_ context.Context, input adapter.QueueWelcomeInput) error {
	s.welcomes = append(s.welcomes, input)
	return nil
}

type fakeVerifier struct {
	available bool
	identity  *adapter.FederatedIdentity
	err       error
}

func (v *fakeVerifier) Verify(context.Context, string) (*adapter.FederatedIdentity, error) {
	return v.identity, v.err
}

func (v *fakeVerifier) IsAvailable() bool { return v.available }

type recordedEvent struct {
	signedIn bool
	userID   uuid.UUID
}

type fakeNotifier struct {
	events []recordedEvent
}

func (n *fakeNotifier) SignedIn(user *entity.User) {
	n.events = append(n.events, recordedEvent{signedIn: true, userID: user.ID})
}

func (n *fakeNotifier) SignedOut(userID uuid.UUID) {
	n.events = append(n.events, recordedEvent{userID: userID})
}
