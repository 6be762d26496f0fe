package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/agentage/agentage/pkg/agentage/api"
)

const (
	deviceCodePath  = "/api/auth/device/code"
	deviceTokenPath = "/api/auth/device/token"

	defaultInterval = 5 * time.Second
	slowDownStep    = 5 * time.Second
)

var (
	errAuthorizationPending = errors.New("authorization pending")
	errSlowDown             = errors.New("slow down")
)

// LoginResult is the outcome of a completed device flow. A zero Token.Expiry
// means the registry issued a non-expiring token.
type LoginResult struct {
	Token *oauth2.Token
	User  *api.User
}

// Flow runs the device authorization protocol against one registry. The
// clock and the inter-poll sleep are injectable so the polling state machine
// is testable without real timing.
type Flow struct {
	registryURL string
	deviceID    string
	http        *http.Client
	out         io.Writer
	log         *zap.SugaredLogger
	now         func() time.Time
	sleep       func(context.Context, time.Duration)
}

type Option func(*Flow)

func WithHTTPClient(client *http.Client) Option {
	return func(f *Flow) {
		f.http = client
	}
}

func WithOutput(w io.Writer) Option {
	return func(f *Flow) {
		f.out = w
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(f *Flow) {
		f.log = log
	}
}

func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		f.now = now
	}
}

func WithSleep(sleep func(context.Context, time.Duration)) Option {
	return func(f *Flow) {
		f.sleep = sleep
	}
}

func NewFlow(registryURL, deviceID string, opts ...Option) *Flow {
	f := &Flow{
		registryURL: strings.TrimRight(registryURL, "/"),
		deviceID:    deviceID,
		http:        &http.Client{Timeout: 30 * time.Second},
		out:         os.Stdout,
		log:         zap.NewNop().Sugar(),
		now:         time.Now,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Login drives the three-leg device flow: request a code, show it to the
// user, poll the token endpoint until a terminal state. The overall budget
// is the server's expires_in; if it elapses without a terminal response the
// flow fails with expired_token even when the server never said so.
func (f *Flow) Login(ctx context.Context) (*LoginResult, error) {
	code, err := f.requestDeviceCode(ctx)
	if err != nil {
		return nil, err
	}

	_, _ = fmt.Fprintf(f.out, "Visit %s and enter code: %s\n", code.VerificationURI, code.UserCode)
	if code.VerificationURI != "" && !strings.EqualFold(os.Getenv("AGENTAGE_NO_BROWSER"), "true") {
		_ = openBrowser(code.VerificationURI)
	}

	interval := time.Duration(code.Interval) * time.Second
	if interval == 0 {
		interval = defaultInterval
	}
	deadline := f.now().Add(time.Duration(code.ExpiresIn) * time.Second)

	for {
		if !f.now().Before(deadline) {
			return nil, &Error{Code: CodeExpiredToken, Message: "device code expired before authorization completed"}
		}
		f.sleep(ctx, interval)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		token, err := f.pollDeviceToken(ctx, code.DeviceCode)
		if err != nil {
			if errors.Is(err, errAuthorizationPending) {
				f.log.Debugw("authorization pending", "interval", interval)
				continue
			}
			if errors.Is(err, errSlowDown) {
				interval += slowDownStep
				f.log.Debugw("server requested slow down", "interval", interval)
				continue
			}
			return nil, err
		}
		if err := token.User.Validate(); err != nil {
			return nil, &Error{Code: CodeUnknown, Message: fmt.Sprintf("invalid user in token response: %v", err)}
		}
		result := &LoginResult{
			Token: &oauth2.Token{
				AccessToken: token.AccessToken,
				TokenType:   token.TokenType,
			},
			User: token.User,
		}
		if token.ExpiresIn > 0 {
			result.Token.Expiry = f.now().Add(time.Duration(token.ExpiresIn) * time.Second)
		}
		return result, nil
	}
}

func (f *Flow) requestDeviceCode(ctx context.Context) (*api.DeviceCodeResponse, error) {
	resp, err := f.post(ctx, deviceCodePath, map[string]string{"device_id": f.deviceID})
	if err != nil {
		return nil, &Error{Code: CodeRequestFailed, Message: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return nil, decodeProtocolError(resp.Body, CodeRequestFailed, "device code request failed")
	}
	var payload api.DeviceCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{Code: CodeRequestFailed, Message: fmt.Sprintf("invalid device code response: %v", err)}
	}
	return &payload, nil
}

func (f *Flow) pollDeviceToken(ctx context.Context, deviceCode string) (*api.TokenResponse, error) {
	resp, err := f.post(ctx, deviceTokenPath, map[string]string{"device_code": deviceCode})
	if err != nil {
		return nil, &Error{Code: CodeRequestFailed, Message: err.Error()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	var payload api.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &Error{Code: CodeUnknown, Message: fmt.Sprintf("invalid token response: %v", err)}
	}
	if resp.StatusCode < 400 && payload.Error == "" {
		return &payload, nil
	}
	switch payload.Error {
	case CodeAuthorizationPending:
		return nil, errAuthorizationPending
	case CodeSlowDown:
		return nil, errSlowDown
	case CodeExpiredToken:
		return nil, &Error{Code: CodeExpiredToken, Message: orDefault(payload.ErrorDesc, "device code expired")}
	case CodeAccessDenied:
		return nil, &Error{Code: CodeAccessDenied, Message: orDefault(payload.ErrorDesc, "authorization was denied")}
	case "":
		return nil, &Error{Code: CodeUnknown, Message: resp.Status}
	default:
		return nil, &Error{Code: payload.Error, Message: orDefault(payload.ErrorDesc, "device token request failed")}
	}
}

func (f *Flow) post(ctx context.Context, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.registryURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return f.http.Do(req)
}

func decodeProtocolError(body io.Reader, defaultCode, defaultMessage string) error {
	var payload struct {
		Error     string `json:"error"`
		ErrorDesc string `json:"error_description"`
	}
	content, _ := io.ReadAll(body)
	_ = json.Unmarshal(content, &payload)
	return &Error{
		Code:    orDefault(payload.Error, defaultCode),
		Message: orDefault(payload.ErrorDesc, defaultMessage),
	}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
