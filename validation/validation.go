package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// vinCharset holds the characters a VIN may contain. I, O and Q are
// excluded to avoid confusion with 1 and 0.
const vinCharset = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"

// ValidVIN reports whether s is a well-formed 17-character vehicle
// identification number.
func ValidVIN(s string) bool {
	if len(s) != 17 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(vinCharset, rune(s[i])) {
			return false
		}
	}
	return true
}

func vinValidator(fl validator.FieldLevel) bool {
	return ValidVIN(fl.Field().String())
}

// RegisterCustom installs the custom validation tags on gin's binding
// engine. Call once during startup before routes are served.
func RegisterCustom() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation: unexpected binding engine")
	}
	return v.RegisterValidation("vin", vinValidator)
}

// errorMessages maps validation tags to friendly error messages.
var errorMessages = map[string]string{
	"required": "The field '%s' is required.",
	"email":    "The field '%s' must be a valid email address.",
	"url":      "The field '%s' must be a valid URL.",
	"min":      "The field '%s' must be at least %s.",
	"max":      "The field '%s' must be no more than %s.",
	"lte":      "The field '%s' must be less than or equal to %s.",
	"gte":      "The field '%s' must be greater than or equal to %s.",
	"gt":       "The field '%s' must be greater than %s.",
	"lt":       "The field '%s' must be less than %s.",
	"oneof":    "The field '%s' must be one of %s.",
	"vin":      "The field '%s' must be a valid 17-character VIN.",
}

// parseMessage builds a friendly message for a single field error.
func parseMessage(name string, e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, name)
		case 2:
			return fmt.Sprintf(msg, name, e.Param())
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", name, e.Tag())
}

// Errors converts a binding error into a map of JSON field names to
// friendly messages. Non-validation errors yield a nil map.
func Errors(obj any, err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, e := range verrs {
		name := e.StructField()
		if f, ok := t.FieldByName(e.StructField()); ok {
			for _, tag := range []string{"json", "form"} {
				if v := f.Tag.Get(tag); v != "" && v != "-" {
					name = strings.Split(v, ",")[0]
					break
				}
			}
		}
		out[name] = parseMessage(name, e)
	}
	return out
}
