package mail

import (
	"context"
	"fmt"

	"github.com/jekabolt/waitlister/internal/entity"
)

const JoinConfirmation = "join_confirmation.gohtml"

// SendJoinConfirmation tells a new waitlist entry that the signup went through.
func (m *Mailer) SendJoinConfirmation(ctx context.Context, to string, jc *entity.JoinConfirmation) error {
	if to == "" || jc == nil || jc.WaitlistName == "" {
		return fmt.Errorf("incomplete join confirmation: %+v", jc)
	}

	html, err := m.render(JoinConfirmation, jc)
	if err != nil {
		return err
	}

	msg := m.buildMessage(to, jc.Name, joinSubject(jc), joinPlainText(jc), html)
	return m.send(ctx, msg)
}

func joinSubject(jc *entity.JoinConfirmation) string {
	return fmt.Sprintf("You're on the %s waitlist", jc.WaitlistName)
}

func joinPlainText(jc *entity.JoinConfirmation) string {
	greeting := "Hi,"
	if jc.Name != "" {
		greeting = fmt.Sprintf("Hi %s,", jc.Name)
	}
	return fmt.Sprintf("%s\n\nThanks for joining the %s waitlist. We'll let you know at %s as soon as there is news.\n",
		greeting, jc.WaitlistName, jc.Email)
}
