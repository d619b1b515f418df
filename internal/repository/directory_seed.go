package repository

import "ai-booking-assistant/internal/models"

// DefaultDoctors is the built-in clinic roster used when no external
// directory source is configured.
func DefaultDoctors() []models.Doctor {
	return []models.Doctor{
		{
			Name:           "Dr. Ahmed Khan",
			Specialization: "Cardiologist",
			AvailableSlots: []string{"09:00", "10:00", "11:00"},
		},
		{
			Name:           "Dr. Sara Ali",
			Specialization: "Dermatologist",
			AvailableSlots: []string{"12:00", "14:00", "15:00"},
		},
		{
			Name:           "Dr. John Smith",
			Specialization: "General Physician",
			AvailableSlots: []string{"09:00", "13:00", "16:00"},
		},
	}
}

// DefaultFAQs answers the common front-desk questions.
func DefaultFAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "What are your opening hours?",
			Answer:   "We are open from 9 AM to 5 PM, Monday through Saturday.",
		},
		{
			Question: "Where is the clinic located?",
			Answer:   "The clinic is located at 123 Main Street, Springfield.",
		},
		{
			Question: "Do you accept insurance?",
			Answer:   "Yes, we accept most major insurance providers.",
		},
	}
}
