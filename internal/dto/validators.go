package dto

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Usernames become part of channel URLs, so the charset is restricted up front.
var usernameRx = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", validUsername)
	}
}

// validUsername accepts 3-30 alphanumeric/underscore characters, case-insensitive.
// Storage lowercases the value afterwards.
func validUsername(fl validator.FieldLevel) bool {
	return usernameRx.MatchString(strings.ToLower(fl.Field().String()))
}
