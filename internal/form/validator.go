package form

import (
	"errors"
	"sort"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

// ValidateStruct is validation.ValidateStruct but collapses every field
// violation into a single gerr.ErrValidation with a readable message.
func ValidateStruct(structField interface{}, rules ...*validation.FieldRules) error {
	var msgs []string

	for _, rule := range rules {
		err := validation.ValidateStruct(structField, rule)
		if err == nil {
			continue
		}
		var ve validation.Errors
		if !errors.As(err, &ve) {
			// internal error from a rule, not a user mistake
			return err
		}
		keys := make([]string, 0, len(ve))
		for k := range ve {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msgs = append(msgs, formatErrMsg(k+" "+ve[k].Error()))
		}
	}
	if len(msgs) == 0 {
		return nil
	}

	return gerr.Validation(strings.Join(msgs, " "))
}

func formatErrMsg(s string) string {
	return ucfirst(strings.Trim(s, " .")) + "."
}

func ucfirst(str string) string {
	for i, v := range str {
		return string(unicode.ToUpper(v)) + str[i+len(string(v)):]
	}
	return ""
}
