package request

import (
	"time"

	"stayops/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

type AvailabilitySearchRequest struct {
	Arrival   string `form:"arrival_date" binding:"required"`
	Departure string `form:"departure_date" binding:"required"`
	Rooms     int    `form:"jumlah_kamar" binding:"required,min=1"`
	Adults    int    `form:"jumlah_dewasa" binding:"required,min=1"`
	Children  int    `form:"jumlah_anak"`
}

func (r AvailabilitySearchRequest) Dates() (arrival, departure time.Time, err error) {
	arrival, err = ParseDate("arrival_date", r.Arrival)
	if err != nil {
		return
	}
	departure, err = ParseDate("departure_date", r.Departure)
	return
}

func ParseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errs.FieldError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
