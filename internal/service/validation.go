package service

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 50

var (
	slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
	validate    *validator.Validate
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := validate.RegisterValidation("urlslug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register urlslug validation: %v", err))
	}
}

// validateInput runs struct tag validation and reports the first failure as a ValidationError.
func validateInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return invalid(fe.Field(), "is required")
	case "max":
		return invalid(fe.Field(), "must be at most %s characters", fe.Param())
	case "gte", "min":
		return invalid(fe.Field(), "must not be less than %s", fe.Param())
	case "email":
		return invalid(fe.Field(), "must be a valid email address")
	case "urlslug":
		return invalid(fe.Field(), "may only contain letters, digits, hyphens and underscores")
	case "oneof":
		return invalid(fe.Field(), "must be one of: %s", fe.Param())
	default:
		return invalid(fe.Field(), "is invalid")
	}
}

// Slugify derives a URL-safe slug from a display name. Accents are folded,
// runs of other characters collapse into a single hyphen.
func Slugify(name string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	slug := b.String()
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	return slug
}

// resolveSlug trims an explicit slug or derives one from name when blank.
func resolveSlug(slug, name string) (string, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return "", invalid("slug", "is required")
	}
	return slug, nil
}
