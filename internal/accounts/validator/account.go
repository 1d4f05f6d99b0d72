package validator

import (
	"regexp"

	"luxestay/pkg/logger"
	"luxestay/pkg/model"
	"luxestay/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const PasswordPolicyMessage = "Password must contain at least one uppercase letter, one lowercase letter, and one number"

var messages = map[string]string{
	"username.min":      "Username must be at least 4 characters long",
	"username.username": "Username can only contain letters, numbers, and underscores",
	"password.min":      "Password must be at least 8 characters long",
	"password_policy":   PasswordPolicyMessage,
	"account_email":     "Invalid email format",
}

type AccountValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewAccountValidator(log *logger.Logger) *AccountValidator {
	v := validation.New()

	rules := map[string]validator.Func{
		"username":        validateUsername,
		"password_policy": validatePasswordPolicy,
		"account_email":   validateEmail,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatal("Failed to register account validator", "tag", tag, "error", err)
		}
	}

	return &AccountValidator{
		validate: v,
		logger:   log,
	}
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func validatePasswordPolicy(fl validator.FieldLevel) bool {
	return IsPasswordStrong(fl.Field().String())
}

// IsPasswordStrong requires at least one ASCII upper case letter, one ASCII
// lower case letter and one ASCII digit. Length is checked separately.
func IsPasswordStrong(password string) bool {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && lower && digit
}

func (v *AccountValidator) ValidateRegistration(reg *model.Registration) error {
	if err := v.validate.Struct(reg); err != nil {
		return validation.Translate(err, messages)
	}
	return nil
}

func (v *AccountValidator) ValidateCredentials(creds *model.Credentials) error {
	if err := v.validate.Struct(creds); err != nil {
		return validation.Translate(err, messages)
	}
	return nil
}
