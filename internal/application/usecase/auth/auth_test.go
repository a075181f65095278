package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

type authFixture struct {
	users    *fakeUserRepo
	tokens   *fakeTokenService
	resets   *fakeResetService
	emails   *fakeEmailService
	notifier *fakeNotifier
}

func newAuthFixture() *authFixture {
	return &authFixture{
		users:    newFakeUserRepo(),
		tokens:   newFakeTokenService(),
		resets:   newFakeResetService(),
		emails:   &fakeEmailService{},
		notifier: &fakeNotifier{},
	}
}

func (f *authFixture) register(t *testing.T, email, password string) *RegisterUserOutput {
	t.Helper()
	out, err := NewRegisterUserUseCase(f.users, fakePasswordService{}, f.tokens, f.emails, f.notifier).
		Execute(context.Background(), RegisterUserInput{Email: email, Name: "Ada", Password: password})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	return out
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != domainerror.AuthMessage(authErr.Code) {
		t.Errorf("message %q does not match code %s", authErr.Message, authErr.Code)
	}
	return authErr.Code
}

func TestRegisterUser(t *testing.T) {
	f := newAuthFixture()
	out := f.register(t, "  Ada@Example.com ", "correct-horse")

	if out.User.Email != "ada@example.com" {
		t.Errorf("email = %q, want normalized", out.User.Email)
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Errorf("expected a token pair")
	}
	if len(f.emails.welcomes) != 1 || f.emails.welcomes[0].UserEmail != "ada@example.com" {
		t.Errorf("welcome email not queued: %+v", f.emails.welcomes)
	}
	if len(f.notifier.events) != 1 || !f.notifier.events[0].signedIn {
		t.Errorf("signed-in not published: %+v", f.notifier.events)
	}

	tests := []struct {
		name         string
		input        RegisterUserInput
		expectedCode domainerror.AuthErrorCode
	}{
		{name: "duplicate email", input: RegisterUserInput{Email: "ada@example.com", Password: "long-enough"}, expectedCode: domainerror.ErrCodeEmailExists},
		{name: "weak password", input: RegisterUserInput{Email: "bob@example.com", Password: "short"}, expectedCode: domainerror.ErrCodeWeakPassword},
		{name: "invalid email", input: RegisterUserInput{Email: "not-an-email", Password: "long-enough"}, expectedCode: domainerror.ErrCodeInvalidEmail},
		{name: "missing fields", input: RegisterUserInput{Email: "", Password: ""}, expectedCode: domainerror.ErrCodeMissingFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegisterUserUseCase(f.users, fakePasswordService{}, f.tokens, nil, nil).Execute(context.Background(), tt.input)
			if code := authCode(t, err); code != tt.expectedCode {
				t.Errorf("code = %s, want %s", code, tt.expectedCode)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	f := newAuthFixture()
	registered := f.register(t, "ada@example.com", "correct-horse")
	f.notifier.events = nil

	uc := NewLoginUserUseCase(f.users, fakePasswordService{}, f.tokens, f.notifier)

	out, err := uc.Execute(context.Background(), LoginUserInput{Email: "ADA@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.User.ID != registered.User.ID {
		t.Errorf("wrong user signed in")
	}
	if len(f.notifier.events) != 1 || !f.notifier.events[0].signedIn {
		t.Errorf("signed-in not published")
	}

	for _, input := range []LoginUserInput{
		{Email: "ada@example.com", Password: "wrong-password"},
		{Email: "nobody@example.com", Password: "correct-horse"},
	} {
		_, err := uc.Execute(context.Background(), input)
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidCredentials {
			t.Errorf("code = %s, want bad credentials", code)
		}
	}
}

func TestLogoutUser_RevokesAndPublishes(t *testing.T) {
	f := newAuthFixture()
	registered := f.register(t, "ada@example.com", "correct-horse")
	f.notifier.events = nil

	_, err := NewLogoutUserUseCase(f.tokens, f.notifier).Execute(context.Background(), LogoutUserInput{RefreshToken: registered.RefreshToken})
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(f.notifier.events) != 1 || f.notifier.events[0].signedIn || f.notifier.events[0].userID != registered.User.ID {
		t.Errorf("signed-out not published: %+v", f.notifier.events)
	}

	_, err = NewRefreshTokenUseCase(f.users, f.tokens).Execute(context.Background(), RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if code := authCode(t, err); code != domainerror.ErrCodeInvalidToken {
		t.Errorf("revoked token must not refresh, code = %s", code)
	}
}

func TestRefreshToken_Rotates(t *testing.T) {
	f := newAuthFixture()
	registered := f.register(t, "ada@example.com", "correct-horse")
	uc := NewRefreshTokenUseCase(f.users, f.tokens)

	out, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if out.RefreshToken == registered.RefreshToken {
		t.Errorf("refresh token not rotated")
	}

	_, err = uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if code := authCode(t, err); code != domainerror.ErrCodeInvalidToken {
		t.Errorf("reused token: code = %s", code)
	}
}

func TestLoginWithGoogle(t *testing.T) {
	t.Run("disabled without client id", func(t *testing.T) {
		f := newAuthFixture()
		_, err := NewLoginWithGoogleUseCase(f.users, nil, f.tokens, nil, nil).Execute(context.Background(), LoginWithGoogleInput{IDToken: "x"})
		if code := authCode(t, err); code != domainerror.ErrCodeProviderDisabled {
			t.Errorf("code = %s", code)
		}
	})

	t.Run("creates then reuses account", func(t *testing.T) {
		f := newAuthFixture()
		verifier := &fakeVerifier{available: true, identity: &adapter.FederatedIdentity{
			Subject: "g-1", Email: "grace@example.com", EmailVerified: true, Name: "Grace",
		}}
		uc := NewLoginWithGoogleUseCase(f.users, verifier, f.tokens, f.emails, f.notifier)

		first, err := uc.Execute(context.Background(), LoginWithGoogleInput{IDToken: "token"})
		if err != nil {
			t.Fatalf("first sign-in: %v", err)
		}
		if !first.Created || first.User.Provider != entity.AuthProviderGoogle {
			t.Errorf("expected a new google account: %+v", first.User)
		}
		second, err := uc.Execute(context.Background(), LoginWithGoogleInput{IDToken: "token"})
		if err != nil {
			t.Fatalf("second sign-in: %v", err)
		}
		if second.Created || second.User.ID != first.User.ID {
			t.Errorf("second sign-in must reuse the account")
		}
		if len(f.emails.welcomes) != 1 {
			t.Errorf("welcome must be sent once, got %d", len(f.emails.welcomes))
		}
		if len(f.notifier.events) != 2 {
			t.Errorf("expected two signed-in events, got %d", len(f.notifier.events))
		}
	})

	t.Run("links password account", func(t *testing.T) {
		f := newAuthFixture()
		registered := f.register(t, "ada@example.com", "correct-horse")
		verifier := &fakeVerifier{available: true, identity: &adapter.FederatedIdentity{
			Subject: "g-2", Email: "Ada@example.com", EmailVerified: true,
		}}

		out, err := NewLoginWithGoogleUseCase(f.users, verifier, f.tokens, nil, nil).Execute(context.Background(), LoginWithGoogleInput{IDToken: "token"})
		if err != nil {
			t.Fatalf("sign-in: %v", err)
		}
		if out.User.ID != registered.User.ID || out.User.ProviderSubject != "g-2" {
			t.Errorf("account not linked: %+v", out.User)
		}
	})

	t.Run("rejects unverified email", func(t *testing.T) {
		f := newAuthFixture()
		verifier := &fakeVerifier{available: true, identity: &adapter.FederatedIdentity{Subject: "g-3", Email: "x@example.com"}}
		_, err := NewLoginWithGoogleUseCase(f.users, verifier, f.tokens, nil, nil).Execute(context.Background(), LoginWithGoogleInput{IDToken: "token"})
		if !errors.Is(err, domainerror.ErrProviderTokenRejected) {
			t.Errorf("expected rejection, got %v", err)
		}
	})
}

func TestForgotAndResetPassword(t *testing.T) {
	f := newAuthFixture()
	registered := f.register(t, "ada@example.com", "correct-horse")
	ctx := context.Background()

	forgot := NewForgotPasswordUseCase(f.users, f.resets, f.emails, "https://toolbox.test")
	for _, email := range []string{"ada@example.com", "ghost@example.com"} {
		out, err := forgot.Execute(ctx, ForgotPasswordInput{Email: email})
		if err != nil {
			t.Fatalf("forgot %s: %v", email, err)
		}
		if out.Message != forgotPasswordMessage {
			t.Errorf("response must not reveal whether %s exists", email)
		}
	}
	if len(f.emails.resets) != 1 {
		t.Fatalf("expected exactly one reset email, got %d", len(f.emails.resets))
	}
	resetURL := f.emails.resets[0].ResetURL
	token := resetURL[strings.Index(resetURL, "token=")+len("token="):]

	reset := NewResetPasswordUseCase(f.users, fakePasswordService{}, f.resets, f.tokens, f.notifier)
	_, err := reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "short"})
	if code := authCode(t, err); code != domainerror.ErrCodeWeakPassword {
		t.Errorf("code = %s, want weak password", code)
	}

	if _, err := reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "new-password"}); err != nil {
		t.Fatalf("reset: %v", err)
	}

	_, err = reset.Execute(ctx, ResetPasswordInput{Token: token, NewPassword: "another-one"})
	if code := authCode(t, err); code != domainerror.ErrCodeInvalidResetToken {
		t.Errorf("token must be single use, code = %s", code)
	}

	_, err = NewRefreshTokenUseCase(f.users, f.tokens).Execute(ctx, RefreshTokenInput{RefreshToken: registered.RefreshToken})
	if err == nil {
		t.Errorf("reset must revoke existing refresh tokens")
	}

	if _, err := NewLoginUserUseCase(f.users, fakePasswordService{}, f.tokens, nil).Execute(ctx, LoginUserInput{Email: "ada@example.com", Password: "new-password"}); err != nil {
		t.Errorf("login with new password: %v", err)
	}
}

func TestGetSession(t *testing.T) {
	f := newAuthFixture()
	registered := f.register(t, "ada@example.com", "correct-horse")
	uc := NewGetSessionUseCase(f.users)

	out, err := uc.Execute(context.Background(), GetSessionInput{UserID: registered.User.ID})
	if err != nil || out.User.Email != "ada@example.com" {
		t.Fatalf("session: %v", err)
	}

	_, err = uc.Execute(context.Background(), GetSessionInput{UserID: uuid.New()})
	if code := authCode(t, err); code != domainerror.ErrCodeInvalidToken {
		t.Errorf("code = %s", code)
	}
}
