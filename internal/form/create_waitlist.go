package form

import (
	"database/sql"
	"strings"

	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jekabolt/waitlister/internal/entity"
	gerr "github.com/jekabolt/waitlister/internal/errors"
)

const (
	maxNameLength        = 255
	maxDescriptionLength = 1000
)

type CreateWaitlistRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (f *CreateWaitlistRequest) Validate() error {
	if f == nil {
		return gerr.Validation("request is nil")
	}
	f.Name = strings.TrimSpace(f.Name)
	if f.Description != nil {
		d := strings.TrimSpace(*f.Description)
		f.Description = &d
	}

	return ValidateStruct(f,
		v.Field(&f.Name,
			v.Required.Error("is required"),
			v.RuneLength(1, maxNameLength).Error("must be at most 255 characters"),
		),
		v.Field(&f.Description,
			v.RuneLength(0, maxDescriptionLength).Error("must be at most 1000 characters"),
		),
	)
}

// WaitlistInsert converts the validated form. An empty description is stored as NULL.
func (f *CreateWaitlistRequest) WaitlistInsert(ownerId string) *entity.WaitlistInsert {
	wi := &entity.WaitlistInsert{
		OwnerId: ownerId,
		Name:    f.Name,
	}
	if f.Description != nil && *f.Description != "" {
		wi.Description = sql.NullString{String: *f.Description, Valid: true}
	}
	return wi
}
