package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail accepts a bare address only, no display name.
func IsEmail(email string) bool {
	return Satisfies(email, "required,email")
}

// Satisfies reports whether v passes the validator tag, e.g. "min=6".
func Satisfies(v any, tag string) bool {
	return validate.Var(v, tag) == nil
}
