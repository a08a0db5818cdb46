package domain

import "time"

// DefaultDepartmentName is the fallback department assigned to actors
// created without an explicit department. It is created on demand.
const DefaultDepartmentName = "OTR"

// Department is an organizational unit grievances are filed against.
// Departments are never deleted.
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
