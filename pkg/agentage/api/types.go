// Package api defines the wire and data types shared between the registry
// client, the credential store, and the output formatters.
package api

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// User is the account snapshot returned by the registry. The CLI never
// mutates it; it is stored verbatim on login and displayed by whoami.
type User struct {
	ID            string `json:"id" yaml:"id" validate:"required"`
	Email         string `json:"email" yaml:"email" validate:"required,email"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Avatar        string `json:"avatar,omitempty" yaml:"avatar,omitempty" validate:"omitempty,url"`
	VerifiedAlias string `json:"verifiedAlias,omitempty" yaml:"verifiedAlias,omitempty"`
}

var userValidator = validator.New()

// Validate checks a user snapshot before it is trusted by the CLI. A nil
// user passes; endpoints that require one check for nil separately.
func (u *User) Validate() error {
	if u == nil {
		return nil
	}
	return userValidator.Struct(u)
}

// DisplayName prefers the human name and falls back to the email address.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// AgentManifest is the structured metadata of an agent definition, carried
// as YAML frontmatter in .md files or as the whole document in .yaml files.
type AgentManifest struct {
	Name        string   `json:"name" yaml:"name" validate:"required,agentname"`
	ID          string   `json:"id,omitempty" yaml:"id,omitempty" validate:"omitempty,uuid4"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	Model       string   `json:"model,omitempty" yaml:"model,omitempty"`
	Tools       []string `json:"tools,omitempty" yaml:"tools,omitempty"`
	Color       string   `json:"color,omitempty" yaml:"color,omitempty"`
}

// Agent is a registry catalog record.
type Agent struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string    `json:"version,omitempty" yaml:"version,omitempty"`
	Model       string    `json:"model,omitempty" yaml:"model,omitempty"`
	Tools       []string  `json:"tools,omitempty" yaml:"tools,omitempty"`
	Author      *User     `json:"author,omitempty" yaml:"author,omitempty"`
	Downloads   int       `json:"downloads,omitempty" yaml:"downloads,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// DeviceCodeResponse is the payload of POST /api/auth/device/code.
// It is ephemeral and never persisted.
type DeviceCodeResponse struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURI string `json:"verification_uri"`
	ExpiresIn       int    `json:"expires_in"`
	Interval        int    `json:"interval"`
}

// TokenResponse is the payload of POST /api/auth/device/token. ExpiresIn is
// relative seconds; zero means the token does not expire.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
	User        *User  `json:"user,omitempty"`
	Error       string `json:"error,omitempty"`
	ErrorDesc   string `json:"error_description,omitempty"`
}
