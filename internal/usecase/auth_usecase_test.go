package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
	"github.com/NandhanR354/lifeline/pkg/errors"
)

type fakeAccount struct {
	uid      string
	password string
}

// fakeAuthClient issues tokens of the form "token-<uid>" so VerifyToken can
// invert them without any real crypto.
type fakeAuthClient struct {
	accounts map[string]fakeAccount
	counter  int
}

func newFakeAuthClient() *fakeAuthClient {
	return &fakeAuthClient{accounts: make(map[string]fakeAccount)}
}

func (f *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if _, exists := f.accounts[email]; exists {
		return "", fmt.Errorf("EMAIL_EXISTS")
	}
	f.counter++
	uid := fmt.Sprintf("uid-%d", f.counter)
	f.accounts[email] = fakeAccount{uid: uid, password: password}
	return uid, nil
}

func (f *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	if !strings.HasPrefix(token, "token-") {
		return "", fmt.Errorf("invalid token")
	}
	return strings.TrimPrefix(token, "token-"), nil
}

func (f *fakeAuthClient) SignInWithEmailPasswordWithRefresh(email, password string) (string, string, error) {
	account, ok := f.accounts[email]
	if !ok || account.password != password {
		return "", "", fmt.Errorf("INVALID_PASSWORD")
	}
	return "token-" + account.uid, "refresh-" + account.uid, nil
}

func (f *fakeAuthClient) RefreshIdToken(refreshToken string) (string, string, error) {
	if !strings.HasPrefix(refreshToken, "refresh-") {
		return "", "", fmt.Errorf("INVALID_REFRESH_TOKEN")
	}
	uid := strings.TrimPrefix(refreshToken, "refresh-")
	return "token-" + uid, "refresh-" + uid, nil
}

func TestRegisterCreatesPatientAndSignsIn(t *testing.T) {
	patients := newFakePatientRepo()
	uc := NewAuthUseCase(patients, newFakeAuthClient())

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:         "john.smith@example.com",
		Password:      "password123",
		Name:          "John Smith",
		PatientNumber: "PT2024001",
		Room:          "301A",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "John Smith", result.Patient.Name)
	assert.False(t, result.Patient.AdmittedAt.IsZero())

	stored, err := patients.GetByID(context.Background(), result.Patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "PT2024001", stored.PatientNumber)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	patients := newFakePatientRepo()
	patients.Create(context.Background(), &entity.Patient{ID: "uid-1", Email: "john.smith@example.com"})

	uc := NewAuthUseCase(patients, newFakeAuthClient())

	_, err := uc.Register(context.Background(), RegisterInput{
		Email:    "john.smith@example.com",
		Password: "password123",
		Name:     "John Smith",
	})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestLoginReturnsPatientAndTokens(t *testing.T) {
	auth := newFakeAuthClient()
	uid, err := auth.CreateUser(context.Background(), "john.smith@example.com", "password123", "John Smith")
	require.NoError(t, err)

	patients := newFakePatientRepo()
	patients.Create(context.Background(), &entity.Patient{ID: uid, Email: "john.smith@example.com", Name: "John Smith"})

	uc := NewAuthUseCase(patients, auth)

	result, err := uc.Login(context.Background(), "john.smith@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, uid, result.Patient.ID)
	assert.Equal(t, "token-"+uid, result.Token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newFakeAuthClient()
	auth.CreateUser(context.Background(), "john.smith@example.com", "password123", "John Smith")

	uc := NewAuthUseCase(newFakePatientRepo(), auth)

	_, err := uc.Login(context.Background(), "john.smith@example.com", "wrong")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))

	_, err = uc.Login(context.Background(), "nobody@example.com", "password123")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginRequiresPatientRecord(t *testing.T) {
	auth := newFakeAuthClient()
	auth.CreateUser(context.Background(), "john.smith@example.com", "password123", "John Smith")

	// Auth account exists but no patient document was ever provisioned.
	uc := NewAuthUseCase(newFakePatientRepo(), auth)

	_, err := uc.Login(context.Background(), "john.smith@example.com", "password123")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	auth := newFakeAuthClient()
	uid, _ := auth.CreateUser(context.Background(), "john.smith@example.com", "password123", "John Smith")

	patients := newFakePatientRepo()
	patients.Create(context.Background(), &entity.Patient{ID: uid, Name: "John Smith"})

	uc := NewAuthUseCase(patients, auth)

	result, err := uc.RefreshToken(context.Background(), "refresh-"+uid)
	require.NoError(t, err)
	assert.Equal(t, "token-"+uid, result.Token)
	assert.Equal(t, uid, result.Patient.ID)

	_, err = uc.RefreshToken(context.Background(), "garbage")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
