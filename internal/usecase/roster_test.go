package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NandhanR354/lifeline/internal/domain/entity"
)

func newTestRoster() *Roster {
	patients := newFakePatientRepo()
	patients.Create(context.Background(), &entity.Patient{ID: "patient-1", Name: "John Smith"})
	patients.Create(context.Background(), &entity.Patient{ID: "shared-id", Name: "Patient Record"})

	staff := newFakeStaffRepo()
	staff.Create(context.Background(), &entity.StaffMember{ID: "nurse_sarah", Name: "Nurse Sarah", Role: "nurse"})
	staff.Create(context.Background(), &entity.StaffMember{ID: "shared-id", Name: "Staff Record", Role: "doctor"})

	return NewRoster(patients, staff)
}

func TestResolveSelf(t *testing.T) {
	roster := newTestRoster()

	sender := roster.Resolve(context.Background(), "patient-1", "patient-1")
	assert.Equal(t, SenderSelf, sender.Kind)
	assert.Equal(t, "You", sender.Label())
}

func TestResolveStaffAndPatients(t *testing.T) {
	roster := newTestRoster()

	sender := roster.Resolve(context.Background(), "patient-1", "nurse_sarah")
	assert.Equal(t, SenderKnown, sender.Kind)
	assert.Equal(t, "Nurse Sarah", sender.Label())

	sender = roster.Resolve(context.Background(), "nurse_sarah", "patient-1")
	assert.Equal(t, SenderKnown, sender.Kind)
	assert.Equal(t, "John Smith", sender.Label())
}

func TestResolveStaffTakesPrecedence(t *testing.T) {
	roster := newTestRoster()

	sender := roster.Resolve(context.Background(), "patient-1", "shared-id")
	assert.Equal(t, "Staff Record", sender.Label())
}

func TestResolveUnknownFallsBack(t *testing.T) {
	roster := newTestRoster()

	sender := roster.Resolve(context.Background(), "patient-1", "nurse_jones")
	assert.Equal(t, SenderUnknown, sender.Kind)
	assert.Equal(t, "Nurse Jones", sender.Label())
}

func TestFallbackLabel(t *testing.T) {
	cases := map[string]string{
		"nurse_sarah":    "Nurse Sarah",
		"dr_johnson":     "Dr Johnson",
		"night-shift.rn": "Night Shift Rn",
		"CARETEAM":       "Careteam",
		"":               "Unknown Participant",
		"___":            "Unknown Participant",
	}

	for id, want := range cases {
		assert.Equal(t, want, fallbackLabel(id), "id %q", id)
	}
}

func TestDisplayNameIgnoresViewer(t *testing.T) {
	roster := newTestRoster()

	// DisplayName resolves without a viewer, so an id never maps to "You".
	assert.Equal(t, "John Smith", roster.DisplayName(context.Background(), "patient-1"))
}
