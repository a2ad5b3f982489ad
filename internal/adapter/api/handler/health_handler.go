package handler

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"

	"github.com/NandhanR354/lifeline/internal/infrastructure/firebase"
)

type HealthHandler struct {
	firestoreClient *firestore.Client
	firebaseAuth    *firebase.FirebaseAuthClient
}

var healthHandler *HealthHandler

func NewHealthHandler(firestoreClient *firestore.Client, firebaseAuth *firebase.FirebaseAuthClient) *HealthHandler {
	return &HealthHandler{
		firestoreClient: firestoreClient,
		firebaseAuth:    firebaseAuth,
	}
}

func SetupHealthHandler(firestoreClient *firestore.Client, firebaseAuth *firebase.FirebaseAuthClient) {
	healthHandler = NewHealthHandler(firestoreClient, firebaseAuth)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// CheckFirestoreHealth runs a single-document read against the store.
func (h *HealthHandler) CheckFirestoreHealth(c echo.Context) error {
	_, err := h.firestoreClient.Collection("patients").Limit(1).Documents(c.Request().Context()).GetAll()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Firestore connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firestore connected successfully",
	})
}

func (h *HealthHandler) CheckAuthHealth(c echo.Context) error {
	err := h.firebaseAuth.TestConnection(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"status": "Firebase Auth connection failed",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "Firebase Auth connected successfully",
	})
}
