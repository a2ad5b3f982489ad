package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// The Admin SDK cannot verify passwords, so sign-in goes through the
// Identity Toolkit REST API with the web API key, the same way a browser
// client would.
const (
	identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"
	secureTokenURL     = "https://securetoken.googleapis.com/v1/token"
)

var tokenHTTPClient = &http.Client{Timeout: 10 * time.Second}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
}

type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

type restErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPasswordWithRefresh returns an ID token and the refresh
// token Firebase issued alongside it.
func (f *FirebaseAuthClient) SignInWithEmailPasswordWithRefresh(email, password string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", fmt.Errorf("firebase API key is not configured")
	}

	payload := map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}

	var result signInResponse
	if err := f.postIdentityToolkit("accounts:signInWithPassword", payload, &result); err != nil {
		return "", "", err
	}

	return result.IDToken, result.RefreshToken, nil
}

// RefreshIdToken exchanges a refresh token for a fresh ID token pair via the
// secure token endpoint.
func (f *FirebaseAuthClient) RefreshIdToken(refreshToken string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", fmt.Errorf("firebase API key is not configured")
	}

	payload := map[string]interface{}{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	url := fmt.Sprintf("%s?key=%s", secureTokenURL, f.apiKey)
	resp, err := tokenHTTPClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", restError(resp)
	}

	var result refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", err
	}

	return result.IDToken, result.RefreshToken, nil
}

// GenerateLongLivedToken mints a custom token for uid and, when the API key
// is configured, exchanges it for a real ID token usable against the API.
func (f *FirebaseAuthClient) GenerateLongLivedToken(ctx context.Context, uid string) (string, error) {
	customToken, err := f.client.CustomToken(ctx, uid)
	if err != nil {
		return "", err
	}

	if f.apiKey != "" {
		idToken, err := f.exchangeCustomTokenForIDToken(customToken)
		if err != nil {
			return "", err
		}
		return idToken, nil
	}

	return customToken, nil
}

func (f *FirebaseAuthClient) exchangeCustomTokenForIDToken(customToken string) (string, error) {
	payload := map[string]interface{}{
		"token":             customToken,
		"returnSecureToken": true,
	}

	var result signInResponse
	if err := f.postIdentityToolkit("accounts:signInWithCustomToken", payload, &result); err != nil {
		return "", err
	}

	return result.IDToken, nil
}

func (f *FirebaseAuthClient) postIdentityToolkit(endpoint string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitURL, endpoint, f.apiKey)
	resp, err := tokenHTTPClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return restError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func restError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var restErr restErrorResponse
	if err := json.Unmarshal(body, &restErr); err == nil && restErr.Error.Message != "" {
		return fmt.Errorf("firebase auth request failed: %s", restErr.Error.Message)
	}

	return fmt.Errorf("firebase auth request failed with status %d", resp.StatusCode)
}
