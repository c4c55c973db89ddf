package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsultationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    ConsultationStatus
		to      ConsultationStatus
		allowed bool
	}{
		{ConsultationPending, ConsultationAccepted, true},
		{ConsultationPending, ConsultationRejected, true},
		{ConsultationPending, ConsultationCompleted, true},
		{ConsultationPending, ConsultationConfirmed, false},
		{ConsultationPending, ConsultationRescheduled, false},
		{ConsultationAccepted, ConsultationConfirmed, true},
		{ConsultationAccepted, ConsultationRescheduled, true},
		{ConsultationAccepted, ConsultationCompleted, true},
		{ConsultationAccepted, ConsultationPending, false},
		{ConsultationAccepted, ConsultationRejected, false},
		{ConsultationConfirmed, ConsultationCompleted, true},
		{ConsultationConfirmed, ConsultationRescheduled, false},
		{ConsultationRescheduled, ConsultationCompleted, true},
		{ConsultationRescheduled, ConsultationConfirmed, false},
		{ConsultationRejected, ConsultationPending, false},
		{ConsultationRejected, ConsultationCompleted, false},
		{ConsultationCompleted, ConsultationPending, false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.allowed, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestConsultationStatusTerminal(t *testing.T) {
	assert.True(t, ConsultationRejected.IsTerminal())
	assert.True(t, ConsultationCompleted.IsTerminal())
	assert.False(t, ConsultationPending.IsTerminal())
	assert.False(t, ConsultationAccepted.IsTerminal())
	assert.False(t, ConsultationConfirmed.IsTerminal())
	assert.False(t, ConsultationRescheduled.IsTerminal())
}

func TestParseConsultationStatus(t *testing.T) {
	status, err := ParseConsultationStatus("accepted")
	assert.NoError(t, err)
	assert.Equal(t, ConsultationAccepted, status)

	_, err = ParseConsultationStatus("cancelled")
	assert.Error(t, err)

	_, err = ParseConsultationStatus("")
	assert.Error(t, err)
}

func TestPrescriptionSlotStatusOneShot(t *testing.T) {
	assert.True(t, SlotConfirmationPending.CanTransitionTo(SlotConfirmationConfirmed))
	assert.True(t, SlotConfirmationPending.CanTransitionTo(SlotConfirmationDeclined))
	assert.False(t, SlotConfirmationPending.CanTransitionTo(SlotConfirmationPending))
	assert.False(t, SlotConfirmationConfirmed.CanTransitionTo(SlotConfirmationDeclined))
	assert.False(t, SlotConfirmationConfirmed.CanTransitionTo(SlotConfirmationPending))
	assert.False(t, SlotConfirmationDeclined.CanTransitionTo(SlotConfirmationConfirmed))
}

func TestScheduleSlotStatusLifecycle(t *testing.T) {
	assert.True(t, ScheduleSlotAvailable.CanTransitionTo(ScheduleSlotBooked))
	assert.False(t, ScheduleSlotAvailable.CanTransitionTo(ScheduleSlotCompleted))
	assert.True(t, ScheduleSlotBooked.CanTransitionTo(ScheduleSlotCompleted))
	assert.False(t, ScheduleSlotBooked.CanTransitionTo(ScheduleSlotAvailable))
	assert.False(t, ScheduleSlotCompleted.CanTransitionTo(ScheduleSlotBooked))

	assert.True(t, ScheduleSlotAvailable.Deletable())
	assert.False(t, ScheduleSlotBooked.Deletable())
	assert.False(t, ScheduleSlotCompleted.Deletable())
}

func TestConsultationRequestUrgency(t *testing.T) {
	cases := []struct {
		symptoms string
		want     string
	}{
		{"I have chest pain", UrgencyUrgent},
		{"Trouble BREATHING at night", UrgencyUrgent},
		{"This feels like an emergency", UrgencyUrgent},
		{"severe headache", UrgencyUrgent},
		{"urgent, please respond", UrgencyUrgent},
		{"mild rash on my arm", UrgencyNormal},
		{"", UrgencyNormal},
	}
	for _, c := range cases {
		request := ConsultationRequest{Symptoms: c.symptoms}
		assert.Equalf(t, c.want, request.Urgency(), "symptoms: %q", c.symptoms)
	}
}
