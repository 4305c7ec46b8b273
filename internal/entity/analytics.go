package entity

// DailySignups is the number of entries created on a single day.
type DailySignups struct {
	// Date is formatted as YYYY-MM-DD in the database's local time zone.
	Date  string `db:"day"`
	Count int    `db:"count"`
}

// WaitlistAnalytics aggregates signup statistics for one waitlist.
type WaitlistAnalytics struct {
	Total  int
	Growth []DailySignups
	Recent []WaitlistEntry
}

// EntriesFilter selects a page of entries for the submissions listing.
type EntriesFilter struct {
	WaitlistId string
	Search     string
	Limit      int
	Offset     int
}
