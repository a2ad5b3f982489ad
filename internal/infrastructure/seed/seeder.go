package seed

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/internal/infrastructure/firebase"
	"github.com/NandhanR354/lifeline/pkg/logger"
)

const (
	demoPatientEmail    = "john.smith@example.com"
	demoPatientPassword = "password123"
	demoPatientName     = "John Smith"
)

// Seeder provisions the demo patient, staff roster, conversations and daily
// schedule used for local development. Run is a no-op once the demo patient
// document exists.
type Seeder struct {
	firebaseAuth     *firebase.FirebaseAuthClient
	patientRepo      repository.PatientRepository
	staffRepo        repository.StaffRepository
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	moodRepo         repository.MoodRepository
	taskRepo         repository.TreatmentTaskRepository
}

func NewSeeder(
	firebaseAuth *firebase.FirebaseAuthClient,
	patientRepo repository.PatientRepository,
	staffRepo repository.StaffRepository,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	moodRepo repository.MoodRepository,
	taskRepo repository.TreatmentTaskRepository,
) *Seeder {
	return &Seeder{
		firebaseAuth:     firebaseAuth,
		patientRepo:      patientRepo,
		staffRepo:        staffRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		moodRepo:         moodRepo,
		taskRepo:         taskRepo,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if _, err := s.patientRepo.GetByEmail(ctx, demoPatientEmail); err == nil {
		logger.Info("Seed: demo data already present, skipping")
		return nil
	}

	uid, err := s.firebaseAuth.GetUserIDByEmail(ctx, demoPatientEmail)
	if err != nil {
		if !auth.IsUserNotFound(err) {
			return fmt.Errorf("seed: looking up demo account: %w", err)
		}
		uid, err = s.firebaseAuth.CreateUser(ctx, demoPatientEmail, demoPatientPassword, demoPatientName)
		if err != nil {
			return fmt.Errorf("seed: creating demo account: %w", err)
		}
	}

	now := time.Now()

	patient := &entity.Patient{
		ID:            uid,
		Email:         demoPatientEmail,
		Name:          demoPatientName,
		PatientNumber: "PT2024001",
		Room:          "301A",
		Condition:     "Post-surgery recovery",
		AdmittedAt:    now.AddDate(0, 0, -3),
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return fmt.Errorf("seed: creating patient: %w", err)
	}

	for _, member := range []*entity.StaffMember{
		{ID: "nurse_sarah", Name: "Nurse Sarah", Role: "nurse"},
		{ID: "dr_johnson", Name: "Dr. Johnson", Role: "doctor"},
	} {
		if err := s.staffRepo.Create(ctx, member); err != nil {
			return fmt.Errorf("seed: creating staff %s: %w", member.ID, err)
		}
	}

	if err := s.seedConversations(ctx, uid, now); err != nil {
		return err
	}
	if err := s.seedMoods(ctx, uid, now); err != nil {
		return err
	}
	if err := s.seedSchedule(ctx, uid); err != nil {
		return err
	}

	logger.Info("Seed: demo data created for patient %s", uid)
	return nil
}

func (s *Seeder) seedConversations(ctx context.Context, patientID string, now time.Time) error {
	nurseConv := &entity.Conversation{
		Title:        "Nurse Sarah",
		Participants: []string{patientID, "nurse_sarah"},
		CreatedAt:    now.Add(-2 * time.Hour),
	}
	if err := s.conversationRepo.Create(ctx, nurseConv); err != nil {
		return fmt.Errorf("seed: creating nurse conversation: %w", err)
	}

	for _, message := range []*entity.Message{
		{
			ConversationID: nurseConv.ID,
			SenderID:       "nurse_sarah",
			Body:           "Your therapy session has been rescheduled to 11 AM today.",
			CreatedAt:      now.Add(-2 * time.Hour),
		},
		{
			ConversationID: nurseConv.ID,
			SenderID:       patientID,
			Body:           "Thank you for letting me know. I'll be ready.",
			CreatedAt:      now.Add(-time.Hour),
		},
	} {
		if err := s.messageRepo.Append(ctx, message); err != nil {
			return fmt.Errorf("seed: appending message: %w", err)
		}
	}

	// Created a day earlier so the active nurse conversation sorts first.
	drConv := &entity.Conversation{
		Title:        "Dr. Johnson",
		Participants: []string{patientID, "dr_johnson"},
		CreatedAt:    now.Add(-24 * time.Hour),
	}
	if err := s.conversationRepo.Create(ctx, drConv); err != nil {
		return fmt.Errorf("seed: creating doctor conversation: %w", err)
	}

	return nil
}

func (s *Seeder) seedMoods(ctx context.Context, patientID string, now time.Time) error {
	for _, entry := range []*entity.MoodEntry{
		{
			PatientID: patientID,
			Mood:      "great",
			Notes:     "Feeling much better today after a good night's sleep",
			CreatedAt: now.Add(-3 * time.Hour),
		},
		{
			PatientID: patientID,
			Mood:      "good",
			Notes:     "Therapy session went well",
			CreatedAt: now.Add(-24 * time.Hour),
		},
	} {
		if err := s.moodRepo.Create(ctx, entry); err != nil {
			return fmt.Errorf("seed: creating mood entry: %w", err)
		}
	}

	return nil
}

func (s *Seeder) seedSchedule(ctx context.Context, patientID string) error {
	for _, task := range []*entity.TreatmentTask{
		{
			PatientID:   patientID,
			Title:       "Morning Medication",
			TimeOfDay:   "08:00",
			Type:        "medication",
			Description: "Take prescribed antibiotics with food",
			Status:      "completed",
		},
		{
			PatientID:   patientID,
			Title:       "Physical Therapy",
			TimeOfDay:   "10:00",
			Type:        "therapy",
			Description: "Session with therapist Sarah",
			Status:      "upcoming",
		},
		{
			PatientID:   patientID,
			Title:       "Doctor's Consultation",
			TimeOfDay:   "14:00",
			Type:        "appointment",
			Description: "Follow-up with Dr. Johnson",
			Status:      "pending",
		},
		{
			PatientID:   patientID,
			Title:       "Rehabilitation Exercises",
			TimeOfDay:   "16:30",
			Type:        "exercise",
			Description: "Complete daily mobility exercises",
			Status:      "pending",
		},
	} {
		if err := s.taskRepo.Create(ctx, task); err != nil {
			return fmt.Errorf("seed: creating treatment task: %w", err)
		}
	}

	return nil
}
