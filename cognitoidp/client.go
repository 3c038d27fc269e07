package cognitoidp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	targetPrefix = "AWSCognitoIdentityProviderService."
	contentType  = "application/x-amz-json-1.1"

	defaultTimeout = 15 * time.Second

	// Error bodies are tiny; anything larger is not a provider response.
	maxErrorBody = 64 << 10
)

// Client defines a public type used by cognauth APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New(region string, httpClient *http.Client) *Client {
	return NewWithEndpoint("https://cognito-idp."+region+".amazonaws.com/", httpClient)
}

// NewWithEndpoint describes the newwithendpoint operation and its observable behavior.
//
// NewWithEndpoint may return an error when input validation, dependency calls, or security checks fail.
// NewWithEndpoint does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewWithEndpoint(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// InitiateAuth describes the initiateauth operation and its observable behavior.
//
// InitiateAuth may return an error when input validation, dependency calls, or security checks fail.
// InitiateAuth does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) InitiateAuth(ctx context.Context, in *InitiateAuthInput) (*InitiateAuthOutput, error) {
	out := &InitiateAuthOutput{}
	if err := c.call(ctx, "InitiateAuth", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SignUp describes the signup operation and its observable behavior.
//
// SignUp may return an error when input validation, dependency calls, or security checks fail.
// SignUp does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) SignUp(ctx context.Context, in *SignUpInput) (*SignUpOutput, error) {
	out := &SignUpOutput{}
	if err := c.call(ctx, "SignUp", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ConfirmSignUp describes the confirmsignup operation and its observable behavior.
//
// ConfirmSignUp may return an error when input validation, dependency calls, or security checks fail.
// ConfirmSignUp does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) ConfirmSignUp(ctx context.Context, in *ConfirmSignUpInput) error {
	return c.call(ctx, "ConfirmSignUp", in, &struct{}{})
}

// ResendConfirmationCode describes the resendconfirmationcode operation and its observable behavior.
//
// ResendConfirmationCode may return an error when input validation, dependency calls, or security checks fail.
// ResendConfirmationCode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) ResendConfirmationCode(ctx context.Context, in *ResendConfirmationCodeInput) (*ResendConfirmationCodeOutput, error) {
	out := &ResendConfirmationCodeOutput{}
	if err := c.call(ctx, "ResendConfirmationCode", in, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GlobalSignOut describes the globalsignout operation and its observable behavior.
//
// GlobalSignOut may return an error when input validation, dependency calls, or security checks fail.
// GlobalSignOut does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) GlobalSignOut(ctx context.Context, accessToken string) error {
	return c.call(ctx, "GlobalSignOut", &GlobalSignOutInput{AccessToken: accessToken}, &struct{}{})
}

func (c *Client) call(ctx context.Context, operation string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Amz-Target", targetPrefix+operation)
	req.Header.Set("Amz-Sdk-Invocation-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			// Operations like GlobalSignOut return an empty body.
			return nil
		}
		return fmt.Errorf("decode %s response: %w", operation, err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("%w: read error body: %v", ErrTransport, err)
	}

	pe := &ProviderError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(raw, pe); err != nil || pe.Name == "" {
		pe.Name = "UnknownError"
		pe.Message = string(raw)
	}

	return pe
}
