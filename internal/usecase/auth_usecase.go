package usecase

import (
	"context"
	"log"
	"time"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/internal/domain/repository"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type AuthUseCase struct {
	patientRepo  repository.PatientRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(patientRepo repository.PatientRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		patientRepo:  patientRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email         string
	Password      string
	Name          string
	PatientNumber string
	Room          string
}

type AuthResult struct {
	Patient      *entity.Patient
	Token        string
	RefreshToken string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existing, err := uc.patientRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("Email is already registered")
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create account with the authentication provider", err)
	}

	now := time.Now()
	patient := &entity.Patient{
		ID:            uid,
		Email:         input.Email,
		Name:          input.Name,
		PatientNumber: input.PatientNumber,
		Room:          input.Room,
		AdmittedAt:    now,
	}

	if err := uc.patientRepo.Create(ctx, patient); err != nil {
		return nil, errors.Internal("Failed to create patient record", err)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPasswordWithRefresh(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		Patient:      patient,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPasswordWithRefresh(email, password)
	if err != nil {
		log.Printf("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		log.Printf("Login token verification failed: %v", err)
		return nil, errors.Internal("Failed to verify token", err)
	}

	patient, err := uc.patientRepo.GetByID(ctx, uid)
	if err != nil {
		log.Printf("Login failed to load patient %s: %v", uid, err)
		return nil, err
	}

	return &AuthResult{
		Patient:      patient,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error) {
	token, newRefreshToken, err := uc.firebaseAuth.RefreshIdToken(refreshToken)
	if err != nil {
		return nil, errors.Unauthorized("Invalid refresh token", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify refreshed token", err)
	}

	patient, err := uc.patientRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Patient:      patient,
		Token:        token,
		RefreshToken: newRefreshToken,
	}, nil
}

func (uc *AuthUseCase) GetPatientByID(ctx context.Context, id string) (*entity.Patient, error) {
	patient, err := uc.patientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return patient, nil
}
