package employee

import (
	"time"
	"warehouse/packages/core"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Property core.EntityProperty

const (
	IdProperty       Property = "_id"
	NameProperty     Property = "name"
	RoleProperty     Property = "role"
	ScheduleProperty Property = "schedule"
)

type Role string

const (
	Picker Role = "Picker"
	Driver Role = "Driver"
)

func (r Role) IsValid() bool {
	return r == Picker || r == Driver
}

type Shift struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Returns true if t is strictly between shift start and end.
func (s Shift) Contains(t time.Time) bool {
	return s.Start.Before(t) && t.Before(s.End)
}

type Employee struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Role     Role               `bson:"role" json:"role"`
	Schedule []Shift            `bson:"schedule" json:"schedule"`
}
