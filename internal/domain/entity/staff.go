package entity

import "time"

// StaffMember is a roster entry for care staff who appear in conversations.
// Staff are provisioned by care-team tooling, never through the portal.
type StaffMember struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Role      string    `json:"role" firestore:"role"` // "nurse", "doctor", "therapist"
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
