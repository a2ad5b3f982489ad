package entity

import "time"

// TreatmentTask is a scheduled item on a patient's daily plan. TimeOfDay is
// a zero-padded 24h clock string ("08:00"), so lexicographic order is
// chronological order.
type TreatmentTask struct {
	ID          string    `json:"id" firestore:"id"`
	PatientID   string    `json:"patient_id" firestore:"patientId"`
	Title       string    `json:"title" firestore:"title"`
	TimeOfDay   string    `json:"time" firestore:"timeOfDay"`
	Type        string    `json:"type" firestore:"type"` // "medication", "therapy", "appointment", "exercise"
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Status      string    `json:"status" firestore:"status"` // "upcoming", "pending", "completed"
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
