package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validation rule patterns
var (
	// Document identifier pattern - 24 character hex string (ObjectID)
	ObjectIDPattern = `^[0-9a-fA-F]{24}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	ObjectID *regexp.Regexp
}{
	ObjectID: regexp.MustCompile(ObjectIDPattern),
}

// IsObjectID reports whether token is a structurally valid document
// identifier. It is pure and performs no lookup; callers run it before any
// database access so a malformed id surfaces as a client error instead of a
// store failure.
func IsObjectID(token string) bool {
	if token == "" {
		return false
	}
	if !CompiledPatterns.ObjectID.MatchString(token) {
		return false
	}
	_, err := primitive.ObjectIDFromHex(token)
	return err == nil
}

// objectIDRule adapts IsObjectID for use as a validator.v10 field rule.
// Empty values pass so that `required` stays responsible for presence.
func objectIDRule(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return IsObjectID(value)
}

// RegisterRules installs custom rules on a validator instance. The `objectid`
// tag marks string fields that must hold a well-formed document identifier.
// Field names in validation errors are taken from the json tag so responses
// match the request payload shape.
func RegisterRules(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v.RegisterValidation("objectid", objectIDRule)
}
