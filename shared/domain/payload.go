package domain

import (
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

// Payload is an untyped input record, usually a json object decoded into a map.
// Entities are built from it so presence and type rules run before anything else.
type Payload map[string]any

var (
	validate     = validator.New(validator.WithRequiredStructEnabled())
	markupPolicy = bluemonday.StrictPolicy()
)

// requireStrings checks every field for presence first and only then for type,
// so a payload that is both incomplete and mistyped reports the missing field.
func (p Payload) requireStrings(entity string, fields ...string) (map[string]string, error) {
	for _, f := range fields {
		if isFalsy(p[f]) {
			return nil, internal_errors.Validation(entity, internal_errors.MissingProperty, f)
		}
	}
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		s, ok := p[f].(string)
		if !ok {
			return nil, internal_errors.Validation(entity, internal_errors.WrongDataType, f)
		}
		out[f] = s
	}
	return out, nil
}

func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0 || t != t
	case int:
		return t == 0
	case int64:
		return t == 0
	}
	return false
}

// stripMarkup removes any html from user text. Entities are unescaped again
// because the api speaks json, not html.
func stripMarkup(s string) string {
	return strings.TrimSpace(html.UnescapeString(markupPolicy.Sanitize(s)))
}

// checkLimits runs struct tag validation and reports the first failing field.
func checkLimits(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		verr := internal_errors.Validation(entity, internal_errors.InvalidValue, strings.ToLower(fe.Field()))
		verr.Detail = fe.Tag() + "=" + fe.Param()
		return verr
	}
	return internal_errors.Validation(entity, internal_errors.InvalidValue, "")
}
