package dto

type WaitlistsResponse struct {
	Waitlists []Waitlist `json:"waitlists"`
}

type WaitlistResponse struct {
	Success  bool      `json:"success"`
	Waitlist *Waitlist `json:"waitlist"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type JoinResponse struct {
	Success       bool           `json:"success"`
	AlreadyExists bool           `json:"alreadyExists,omitempty"`
	Message       string         `json:"message,omitempty"`
	Entry         *WaitlistEntry `json:"entry,omitempty"`
}

type PaymentStatusResponse struct {
	Payment bool `json:"payment"`
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	Key      string `json:"key"`
	BlurHash string `json:"blurhash,omitempty"`
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	Ignored  bool   `json:"ignored,omitempty"`
	Pending  bool   `json:"pending,omitempty"`
	Reason   string `json:"reason,omitempty"`
	UserId   string `json:"userId,omitempty"`
}
