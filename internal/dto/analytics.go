package dto

import "github.com/jekabolt/waitlister/internal/entity"

type DailySignups struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type WaitlistAnalytics struct {
	Total  int             `json:"total"`
	Growth []DailySignups  `json:"growth"`
	Recent []WaitlistEntry `json:"recent"`
}

func ConvertAnalytics(a *entity.WaitlistAnalytics) *WaitlistAnalytics {
	growth := make([]DailySignups, 0, len(a.Growth))
	for _, g := range a.Growth {
		growth = append(growth, DailySignups{Date: g.Date, Count: g.Count})
	}
	return &WaitlistAnalytics{
		Total:  a.Total,
		Growth: growth,
		Recent: ConvertEntries(a.Recent),
	}
}

// Submissions is one page of the submissions listing.
type Submissions struct {
	Entries    []WaitlistEntry `json:"entries"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}
