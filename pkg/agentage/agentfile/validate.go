package agentfile

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agentage/agentage/pkg/agentage/api"
)

var agentNamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

var manifestValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("agentname", func(fl validator.FieldLevel) bool {
		return agentNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// Validate checks a manifest and returns per-field messages, nil when the
// manifest is valid. The field map matches the shape of registry validation
// details so commands can print both the same way.
func Validate(manifest api.AgentManifest) map[string]string {
	err := manifestValidator.Struct(manifest)
	if err == nil {
		return nil
	}
	details := map[string]string{}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		details["manifest"] = err.Error()
		return details
	}
	for _, fe := range fieldErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			details[field] = "is required"
		case "agentname":
			details[field] = "must be a lowercase slug (letters, digits, dashes)"
		case "uuid4":
			details[field] = "must be a UUID"
		case "email":
			details[field] = "must be an email address"
		case "url":
			details[field] = "must be a URL"
		default:
			details[field] = "is invalid"
		}
	}
	return details
}
