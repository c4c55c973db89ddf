package models

import (
	"fmt"
	"strings"
)

// ConsultationStatus is the closed status vocabulary of a consultation
// request. The string values match the status column of
// consultation_requests.
type ConsultationStatus string

const (
	ConsultationPending     ConsultationStatus = "pending"
	ConsultationAccepted    ConsultationStatus = "accepted"
	ConsultationRejected    ConsultationStatus = "rejected"
	ConsultationConfirmed   ConsultationStatus = "confirmed"
	ConsultationRescheduled ConsultationStatus = "rescheduled"
	ConsultationCompleted   ConsultationStatus = "completed"
)

// consultationTransitions lists the legal lifecycle edges. completed is
// reachable from every non-terminal status, but only the prescription-issue
// path takes that edge.
var consultationTransitions = map[ConsultationStatus][]ConsultationStatus{
	ConsultationPending:     {ConsultationAccepted, ConsultationRejected, ConsultationCompleted},
	ConsultationAccepted:    {ConsultationConfirmed, ConsultationRescheduled, ConsultationCompleted},
	ConsultationConfirmed:   {ConsultationCompleted},
	ConsultationRescheduled: {ConsultationCompleted},
	ConsultationRejected:    {},
	ConsultationCompleted:   {},
}

// ParseConsultationStatus validates a raw status string against the closed
// vocabulary.
func ParseConsultationStatus(raw string) (ConsultationStatus, error) {
	status := ConsultationStatus(raw)
	if _, ok := consultationTransitions[status]; !ok {
		return "", fmt.Errorf("invalid consultation status: %q", raw)
	}
	return status, nil
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s ConsultationStatus) CanTransitionTo(next ConsultationStatus) bool {
	for _, allowed := range consultationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is offered.
func (s ConsultationStatus) IsTerminal() bool {
	return len(consultationTransitions[s]) == 0
}

// PrescriptionSlotStatus is the patient's acceptance state of the follow-up
// slot proposed on a prescription.
type PrescriptionSlotStatus string

const (
	SlotConfirmationPending   PrescriptionSlotStatus = "pending"
	SlotConfirmationConfirmed PrescriptionSlotStatus = "confirmed"
	SlotConfirmationDeclined  PrescriptionSlotStatus = "declined"
)

// CanTransitionTo allows the single pending -> confirmed|declined write;
// confirmed and declined are irreversible.
func (s PrescriptionSlotStatus) CanTransitionTo(next PrescriptionSlotStatus) bool {
	if s != SlotConfirmationPending {
		return false
	}
	return next == SlotConfirmationConfirmed || next == SlotConfirmationDeclined
}

// ScheduleSlotStatus is the lifecycle of a doctor_schedule row.
type ScheduleSlotStatus string

const (
	ScheduleSlotAvailable ScheduleSlotStatus = "available"
	ScheduleSlotBooked    ScheduleSlotStatus = "booked"
	ScheduleSlotCompleted ScheduleSlotStatus = "completed"
)

// CanTransitionTo covers available -> booked and booked -> completed.
func (s ScheduleSlotStatus) CanTransitionTo(next ScheduleSlotStatus) bool {
	switch s {
	case ScheduleSlotAvailable:
		return next == ScheduleSlotBooked
	case ScheduleSlotBooked:
		return next == ScheduleSlotCompleted
	}
	return false
}

// Deletable reports whether the slot may still be hard-deleted.
func (s ScheduleSlotStatus) Deletable() bool {
	return s == ScheduleSlotAvailable
}

const (
	UrgencyUrgent = "urgent"
	UrgencyNormal = "normal"
)

// urgencyKeywords flags a request for prominent display. Display hint only:
// it never reorders or prioritizes processing.
var urgencyKeywords = []string{"chest pain", "breathing", "emergency", "severe", "urgent"}

// Urgency classifies the request's symptoms as urgent or normal.
func (r *ConsultationRequest) Urgency() string {
	symptoms := strings.ToLower(r.Symptoms)
	for _, keyword := range urgencyKeywords {
		if strings.Contains(symptoms, keyword) {
			return UrgencyUrgent
		}
	}
	return UrgencyNormal
}
