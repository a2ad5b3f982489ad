package entity

import "time"

type HelpRequest struct {
	ID          string    `json:"id" firestore:"id"`
	PatientID   string    `json:"patient_id" firestore:"patientId"`
	Priority    string    `json:"priority" firestore:"priority"` // "low", "medium", "high", "urgent"
	Category    string    `json:"category" firestore:"category"`
	Description string    `json:"description" firestore:"description"`
	Status      string    `json:"status" firestore:"status"` // "pending", "in_progress", "resolved"
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
