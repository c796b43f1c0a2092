package dto

import (
	"time"
)

// BookSlotRequest mirrors the /class/book body. Hour and people fields are
// pointers so that zero values still satisfy the required rule.
type BookSlotRequest struct {
	Class   string `json:"class"    validate:"required"`
	Date    string `json:"date"     validate:"required,datetime=2006-01-02"`
	StartHr *int   `json:"start_hr" validate:"required"`
	EndHr   *int   `json:"end_hr"   validate:"required"`
	People  *int   `json:"people"   validate:"required"`
}

// CancelSlotRequest mirrors the /class/cancel body. All three interval fields
// must match an active booking exactly for the cancellation to find it.
type CancelSlotRequest struct {
	Class   string `json:"class"    validate:"required"`
	Date    string `json:"date"     validate:"required,datetime=2006-01-02"`
	StartHr *int   `json:"start_hr" validate:"required"`
	EndHr   *int   `json:"end_hr"   validate:"required"`
	People  *int   `json:"people"   validate:"required"`
}

// SlotResult is the uniform book/cancel response body. Failures keep HTTP 200
// and signal through the error flag.
type SlotResult struct {
	Error      bool   `json:"error"`
	Validation string `json:"validation"`
}

// Availability maps classroom name -> date -> "start-end" -> booked people sum.
type Availability map[string]map[string]map[string]int

// SlotEvent is the payload published on booking and cancellation topics.
type SlotEvent struct {
	Class      string    `json:"class"`
	Date       string    `json:"date"`
	StartHr    int       `json:"start_hr"`
	EndHr      int       `json:"end_hr"`
	People     int       `json:"people"`
	OccurredAt time.Time `json:"occurred_at"`
}
