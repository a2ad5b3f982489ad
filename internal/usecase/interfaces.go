package usecase

import "context"

// FirebaseAuthClient is the slice of the identity provider the auth flow
// depends on; the concrete client lives in internal/infrastructure/firebase.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPasswordWithRefresh(email, password string) (string, string, error)
	RefreshIdToken(refreshToken string) (string, string, error)
}
