package report

import "time"

// MonthlyReport counts visits per type inside the month's effective range.
// All three counts are present even when zero.
type MonthlyReport struct {
	Year         int       `json:"year"`
	Month        int       `json:"month"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Avanzada     int       `json:"avanzada"`
	PieDiabetico int       `json:"pie_diabetico"`
	UlceraVenosa int       `json:"ulcera_venosa"`
	Total        int       `json:"total"`
}

// DetailedFilters selects the population for a detailed report. All fields
// are optional; year and quarter only take effect together.
type DetailedFilters struct {
	Year    *int    `json:"year,omitempty"`
	Quarter *int    `json:"quarter,omitempty"`
	Gender  *string `json:"gender,omitempty"`
	AgeMin  *int    `json:"age_min,omitempty"`
	AgeMax  *int    `json:"age_max,omitempty"`
}

// Bucket is one reporting group: a total plus a per-gender breakdown.
type Bucket struct {
	Total    int            `json:"total"`
	ByGender map[string]int `json:"by_gender"`
}

// DetailedReport merges advanced wound care and diabetic foot into the
// avanzada bucket; venous ulcer stands alone. Filters are echoed back.
type DetailedReport struct {
	Filters      DetailedFilters `json:"filters"`
	StartDate    *time.Time      `json:"start_date,omitempty"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	Avanzada     Bucket          `json:"avanzada"`
	UlceraVenosa Bucket          `json:"ulcera_venosa"`
	Total        int             `json:"total"`
}
