package models

import "github.com/google/uuid"

// UnassignedLabel is shown wherever a project name or trade is missing.
const UnassignedLabel = "Sin asignar"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

func newID(current string) string {
	if current != "" {
		return current
	}
	return uuid.NewString()
}

// All lists every record type for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Employee{},
		&Project{},
		&Contractor{},
		&Attendance{},
		&Advance{},
		&Certification{},
		&PaymentHistory{},
	}
}
