package entity

import "time"

type Patient struct {
	ID            string    `json:"id" firestore:"id"`
	Email         string    `json:"email" firestore:"email"`
	Name          string    `json:"name" firestore:"name"`
	PatientNumber string    `json:"patient_number" firestore:"patientNumber"`
	Room          string    `json:"room,omitempty" firestore:"room,omitempty"`
	Condition     string    `json:"condition,omitempty" firestore:"condition,omitempty"`
	AdmittedAt    time.Time `json:"admitted_at,omitempty" firestore:"admittedAt,omitempty"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
