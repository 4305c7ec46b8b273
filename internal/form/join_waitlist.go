package form

import (
	"database/sql"
	"strings"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type JoinWaitlistRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

var containsAt = v.NewStringRuleWithError(
	func(value string) bool {
		return strings.Contains(value, "@")
	}, v.ErrInInvalid.SetMessage("must be a valid email address"),
)

func (f *JoinWaitlistRequest) Validate() error {
	if f == nil {
		return gerr.Validation("request is nil")
	}
	f.Email = NormalizeEmail(f.Email)
	if f.Name != nil {
		n := strings.TrimSpace(*f.Name)
		f.Name = &n
	}

	return ValidateStruct(f,
		v.Field(&f.Email, v.Required.Error("is required"), containsAt),
		v.Field(&f.Name, v.RuneLength(0, maxNameLength).Error("must be at most 255 characters")),
	)
}

// EntryInsert converts the validated form. A blank name is stored as NULL.
func (f *JoinWaitlistRequest) EntryInsert(waitlistId string) *entity.WaitlistEntryInsert {
	ei := &entity.WaitlistEntryInsert{
		WaitlistId: waitlistId,
		Email:      f.Email,
	}
	if f.Name != nil && *f.Name != "" {
		ei.Name = sql.NullString{String: *f.Name, Valid: true}
	}
	return ei
}

// NormalizeEmail trims and lower-cases an email so that lookups are
// case-insensitive. Casers are stateful, so one is built per call.
func NormalizeEmail(email string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}
