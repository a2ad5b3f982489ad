package entity

import "time"

type MoodEntry struct {
	ID        string    `json:"id" firestore:"id"`
	PatientID string    `json:"patient_id" firestore:"patientId"`
	Mood      string    `json:"mood" firestore:"mood"` // "great", "good", "okay", "low", "struggling"
	Notes     string    `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
