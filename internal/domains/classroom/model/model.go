package model

import (
	"classbooking/shared/model"
)

const (
	TableName  = "classrooms"
	EntityName = "classroom"

	FieldID   = "id"
	FieldName = "name"
)

// Classroom is a static catalog entry. Booking rules (allowed days, hour
// window, duration, capacity) are configuration data keyed by the classroom id,
// not columns on this entity.
type Classroom struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
