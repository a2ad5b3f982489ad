package usecase

import (
	"context"
	"strings"

	"github.com/NandhanR354/lifeline/internal/domain/repository"
)

type SenderKind int

const (
	// SenderSelf marks the viewer's own messages; they render as "You".
	SenderSelf SenderKind = iota
	// SenderKnown is a participant found on the roster.
	SenderKnown
	// SenderUnknown is a participant with no roster record, such as staff
	// who have since left; their label is derived from the identifier so
	// old history still renders.
	SenderUnknown
)

type Sender struct {
	Kind SenderKind
	Name string
}

// Label is the display string shown in message views.
func (s Sender) Label() string {
	if s.Kind == SenderSelf {
		return "You"
	}
	return s.Name
}

// Roster resolves participant identifiers to display names. Staff records
// take precedence over patient records; an id found in neither falls back to
// a deterministic label, so resolution never fails.
type Roster struct {
	patientRepo repository.PatientRepository
	staffRepo   repository.StaffRepository
}

func NewRoster(patientRepo repository.PatientRepository, staffRepo repository.StaffRepository) *Roster {
	return &Roster{
		patientRepo: patientRepo,
		staffRepo:   staffRepo,
	}
}

func (r *Roster) DisplayName(ctx context.Context, participantID string) string {
	return r.Resolve(ctx, "", participantID).Name
}

// Resolve classifies senderID from viewerID's perspective. Each id should be
// resolved once per request and reused; lookups hit the store.
func (r *Roster) Resolve(ctx context.Context, viewerID, senderID string) Sender {
	if viewerID != "" && senderID == viewerID {
		return Sender{Kind: SenderSelf}
	}

	if staff, err := r.staffRepo.GetByID(ctx, senderID); err == nil {
		return Sender{Kind: SenderKnown, Name: staff.Name}
	}

	if patient, err := r.patientRepo.GetByID(ctx, senderID); err == nil {
		return Sender{Kind: SenderKnown, Name: patient.Name}
	}

	return Sender{Kind: SenderUnknown, Name: fallbackLabel(senderID)}
}

// fallbackLabel turns an identifier like "nurse_sarah" into "Nurse Sarah".
// Same id, same label, always.
func fallbackLabel(participantID string) string {
	parts := strings.FieldsFunc(participantID, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	if len(parts) == 0 {
		return "Unknown Participant"
	}

	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
	}

	return strings.Join(parts, " ")
}
