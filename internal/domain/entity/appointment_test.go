package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CancelAffordance(t *testing.T) {
	tests := []struct {
		status      AppointmentStatus
		cancellable bool
		terminal    bool
		color       string
	}{
		{AppointmentStatusPending, true, false, "yellow"},
		{AppointmentStatusConfirmed, true, false, "green"},
		{AppointmentStatusCompleted, false, true, "blue"},
		{AppointmentStatusCancelled, false, true, "red"},
		{AppointmentStatus("rescheduled"), false, false, "gray"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.cancellable, tt.status.IsCancellable())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.color, tt.status.BadgeColor())
		})
	}
}

func TestConsultationType_Icon(t *testing.T) {
	assert.Equal(t, "video", ConsultationVideo.Icon())
	assert.Equal(t, "phone", ConsultationVoice.Icon())
	assert.Equal(t, "message-square", ConsultationChat.Icon())
	assert.Equal(t, "map-pin", ConsultationInPerson.Icon())
	assert.Equal(t, "", ConsultationType("fax").Icon())
	assert.False(t, ConsultationType("fax").IsValid())
	assert.True(t, ConsultationInPerson.IsValid())
}

func TestAppointment_Ownership(t *testing.T) {
	owner := uuid.New()
	apt := &Appointment{UserID: owner, Status: AppointmentStatusPending}

	assert.True(t, apt.IsOwnedBy(owner))
	assert.False(t, apt.IsOwnedBy(uuid.New()))

	apt.Cancel()
	assert.Equal(t, AppointmentStatusCancelled, apt.Status)
	assert.False(t, apt.IsCancellable())
}

func TestEmergencyCategory(t *testing.T) {
	assert.Len(t, EmergencyCategories, 4)
	assert.Equal(t, "Mental Health", EmergencyMentalHealth.Label())
	assert.False(t, EmergencyCategory("fire").IsValid())
}
