package entity

// JoinConfirmation is the data rendered into the join confirmation email.
type JoinConfirmation struct {
	WaitlistName string
	Name         string
	Email        string
}
