package dto

import (
	"encoding/json"
	"time"

	"github.com/jekabolt/waitlister/internal/entity"
)

type Waitlist struct {
	Id          string          `json:"id"`
	OwnerId     string          `json:"ownerId"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Settings    json.RawMessage `json:"settings"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type WaitlistEntry struct {
	Id        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ConvertWaitlist converts a stored waitlist. Settings are passed through as
// raw JSON; a missing document becomes null.
func ConvertWaitlist(w *entity.Waitlist) *Waitlist {
	dw := &Waitlist{
		Id:        w.Id,
		OwnerId:   w.OwnerId,
		Name:      w.Name,
		Settings:  json.RawMessage("null"),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
	if w.Description.Valid {
		dw.Description = &w.Description.String
	}
	if w.Settings.Valid && w.Settings.String != "" {
		dw.Settings = json.RawMessage(w.Settings.String)
	}
	return dw
}

func ConvertWaitlists(wls []entity.Waitlist) []Waitlist {
	out := make([]Waitlist, 0, len(wls))
	for i := range wls {
		out = append(out, *ConvertWaitlist(&wls[i]))
	}
	return out
}

func ConvertEntry(e *entity.WaitlistEntry) *WaitlistEntry {
	de := &WaitlistEntry{
		Id:        e.Id,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
	}
	if e.Name.Valid {
		de.Name = &e.Name.String
	}
	return de
}

func ConvertEntries(es []entity.WaitlistEntry) []WaitlistEntry {
	out := make([]WaitlistEntry, 0, len(es))
	for i := range es {
		out = append(out, *ConvertEntry(&es[i]))
	}
	return out
}

// SettingsBody wraps a stored settings document as {"settings":<doc>} without
// re-encoding it, so clients read back exactly what they wrote.
func SettingsBody(w *entity.Waitlist) []byte {
	doc := "null"
	if w.Settings.Valid && w.Settings.String != "" {
		doc = w.Settings.String
	}
	return []byte(`{"settings":` + doc + `}`)
}

// SettingsUpdatedBody is the response to a settings replacement.
func SettingsUpdatedBody(doc []byte) []byte {
	return append(append([]byte(`{"success":true,"settings":`), doc...), '}')
}
