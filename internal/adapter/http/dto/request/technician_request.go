package request

import "strings"

// CreateTechnicianRequest registers a technician in the directory. Active
// defaults to true when omitted.
type CreateTechnicianRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

func (r CreateTechnicianRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r CreateTechnicianRequest) ResolveActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
