package api

// MonthAvailabilityQuery задает месяц для GET /providers/{id}/month-availability
type MonthAvailabilityQuery struct {
	ProviderID string
	Year       int
	Month      int // 1..12
}

// DayQuery задает день для GET /appointments/me
type DayQuery struct {
	Year  int
	Month int // 1..12
	Day   int
}
