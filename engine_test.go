package cognauth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/mkweon/cognauth/cognitoidp"
	"github.com/mkweon/cognauth/tokens"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Provider.Region = "us-east-1"
	cfg.Provider.ClientID = "1example23456789"
	cfg.Provider.ClientSecret = "secret-key-value"
	cfg.Provider.DomainPrefix = "example-app"
	cfg.Provider.RedirectOrigin = "https://app.example.com"
	cfg.Audit.Enabled = false
	return cfg
}

func newTestEngine(t *testing.T, cfg Config, transport Transport, store tokens.Store) *Engine {
	t.Helper()

	if store == nil {
		store = tokens.NewMemoryStore()
	}

	engine := &Engine{
		config:    cloneConfig(cfg),
		transport: transport,
		store:     store,
	}
	engine.metrics = NewMetrics(cfg.Metrics)
	engine.audit = newAuditDispatcher(cfg.Audit, nil)
	t.Cleanup(engine.Close)

	return engine
}

type fakeTransport struct {
	initiateAuthFn func(ctx context.Context, in *cognitoidp.InitiateAuthInput) (*cognitoidp.InitiateAuthOutput, error)
	signUpFn       func(ctx context.Context, in *cognitoidp.SignUpInput) (*cognitoidp.SignUpOutput, error)
	confirmFn      func(ctx context.Context, in *cognitoidp.ConfirmSignUpInput) error
	resendFn       func(ctx context.Context, in *cognitoidp.ResendConfirmationCodeInput) (*cognitoidp.ResendConfirmationCodeOutput, error)
	signOutFn      func(ctx context.Context, accessToken string) error

	calls []string
}

func (f *fakeTransport) InitiateAuth(ctx context.Context, in *cognitoidp.InitiateAuthInput) (*cognitoidp.InitiateAuthOutput, error) {
	f.calls = append(f.calls, "InitiateAuth")
	if f.initiateAuthFn == nil {
		return &cognitoidp.InitiateAuthOutput{}, nil
	}
	return f.initiateAuthFn(ctx, in)
}

func (f *fakeTransport) SignUp(ctx context.Context, in *cognitoidp.SignUpInput) (*cognitoidp.SignUpOutput, error) {
	f.calls = append(f.calls, "SignUp")
	if f.signUpFn == nil {
		return &cognitoidp.SignUpOutput{}, nil
	}
	return f.signUpFn(ctx, in)
}

func (f *fakeTransport) ConfirmSignUp(ctx context.Context, in *cognitoidp.ConfirmSignUpInput) error {
	f.calls = append(f.calls, "ConfirmSignUp")
	if f.confirmFn == nil {
		return nil
	}
	return f.confirmFn(ctx, in)
}

func (f *fakeTransport) ResendConfirmationCode(ctx context.Context, in *cognitoidp.ResendConfirmationCodeInput) (*cognitoidp.ResendConfirmationCodeOutput, error) {
	f.calls = append(f.calls, "ResendConfirmationCode")
	if f.resendFn == nil {
		return &cognitoidp.ResendConfirmationCodeOutput{}, nil
	}
	return f.resendFn(ctx, in)
}

func (f *fakeTransport) GlobalSignOut(ctx context.Context, accessToken string) error {
	f.calls = append(f.calls, "GlobalSignOut")
	if f.signOutFn == nil {
		return nil
	}
	return f.signOutFn(ctx, accessToken)
}

func testIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

func testAuthResult(t *testing.T, email string) *cognitoidp.AuthenticationResult {
	t.Helper()

	return &cognitoidp.AuthenticationResult{
		AccessToken: "access-token",
		IDToken: testIDToken(t, map[string]any{
			"sub":              "user-sub-1",
			"email":            email,
			"email_verified":   true,
			"cognito:username": "pool-" + email,
		}),
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
	}
}
