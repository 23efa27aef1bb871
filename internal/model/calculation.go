package model

import "time"

// Calculation is a persisted arithmetic operation together with its result.
// Records carry no owner: any authenticated user may read or mutate any
// record (shared-workspace behavior, kept deliberately).
type Calculation struct {
	ID        int64     `json:"id"`
	A         float64   `json:"a"`
	B         float64   `json:"b"`
	Type      string    `json:"type"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
