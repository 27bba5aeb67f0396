// Package validate contains the support for validating models.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Classes of validation failure. A field that fails validation reports the
// class of the tag that rejected it.
var (
	ErrMissingField    = errors.New("missing field")
	ErrInvalidRange    = errors.New("invalid range")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrInvalidField    = errors.New("invalid field")
)

// validate holds the settings and caches for validating request struct values.
var validate *validator.Validate

// translator is a cache of locale and translation information.
var translator ut.Translator

func init() {

	// Instantiate a validator.
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Create a translator for english so the error messages are
	// more human-readable than technical.
	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")

	// Register the english error messages for use.
	en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	register("lte", "{0} must be between 0 and {1}")
	register("gt", "{0} must be greater than {1}")
}

// encodings holds the tags registered by RegisterEncoding.
var encodings = make(map[string]bool)

// RegisterEncoding adds a validation tag that accepts string fields holding
// valid text in some encoding. Failures are reported as ErrInvalidEncoding
// using text as the message, where {0} is the field name. Tags must be
// registered before the first call to Check.
func RegisterEncoding(tag string, valid func(string) bool, text string) error {
	fn := func(fl validator.FieldLevel) bool {
		return valid(fl.Field().String())
	}

	if err := validate.RegisterValidation(tag, fn); err != nil {
		return err
	}

	encodings[tag] = true
	register(tag, text)

	return nil
}

// register replaces the message used for a tag.
func register(tag string, text string) {
	validate.RegisterTranslation(
		tag,
		translator,
		func(trans ut.Translator) error {
			return trans.Add(tag, text, true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			t, _ := trans.T(tag, fe.Field(), fe.Param())
			return t
		},
	)
}

// Messenger is implemented by models that replace the message reported for
// some of their fields. Keys have the form "<field>.<tag>" using the JSON
// field name, such as "decimals.lte".
type Messenger interface {
	Messages() map[string]string
}

// Check validates the provided model against it's declared tags.
func Check(val any) error {
	if err := validate.Struct(val); err != nil {

		// Use a type assertion to get the real error value.
		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		var messages map[string]string
		if m, ok := val.(Messenger); ok {
			messages = m.Messages()
		}

		var fields FieldErrors
		for _, verror := range verrors {
			msg, exists := messages[verror.Field()+"."+verror.Tag()]
			if !exists {
				msg = verror.Translate(translator)
			}

			field := FieldError{
				Field: verror.Field(),
				Err:   msg,
				Kind:  kindOf(verror.Tag()),
			}
			fields = append(fields, field)
		}

		return fields
	}

	return nil
}

// kindOf maps a validation tag to its class of failure.
func kindOf(tag string) error {
	switch tag {
	case "required":
		return ErrMissingField
	case "gt", "gte", "lt", "lte", "min", "max":
		return ErrInvalidRange
	}

	if encodings[tag] {
		return ErrInvalidEncoding
	}

	return ErrInvalidField
}
