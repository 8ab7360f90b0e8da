package entities

import "time"

// Technician is a field-service identity. Orders keep only a weak reference to
// it (technician_id); deleting a technician does not cascade into orders.
//
// Storage model (DynamoDB):
//   - PK: id

type Technician struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
