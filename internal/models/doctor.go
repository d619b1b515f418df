package models

import "time"

// Doctor is a directory entry with bookable time slots ("09:00", ...).
type Doctor struct {
	Name           string
	Specialization string
	AvailableSlots []string
}

type Appointment struct {
	PatientName string
	DoctorName  string
	Slot        string
	Email       string
	CreatedAt   time.Time
}

type FAQ struct {
	Question string
	Answer   string
}

// DoctorSuggestion is the structured record extracted from free-form model
// output during a doctor search. It lives only long enough to prefill a
// booking draft if the user proceeds.
type DoctorSuggestion struct {
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	ExperienceYears int      `json:"experience_years"`
	Fee             string   `json:"fee"`
	AvailableTimes  []string `json:"available_times"`
}
