package repository

import (
	"testing"

	"ai-booking-assistant/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory() DirectoryRepository {
	return NewMemoryDirectory(
		[]models.Doctor{
			{Name: "Dr. Ahmed Khan", Specialization: "Cardiologist", AvailableSlots: []string{"09:00", "10:00"}},
			{Name: "Dr. Sara Ali", Specialization: "Dermatologist", AvailableSlots: []string{"12:00"}},
		},
		[]models.FAQ{
			{Question: "What are your opening hours?", Answer: "9 AM to 5 PM."},
		},
	)
}

func TestFindDoctorByNameSubstring(t *testing.T) {
	dir := newTestDirectory()

	assert.NotNil(t, dir.FindDoctorByName("ahmed"))
	assert.NotNil(t, dir.FindDoctorByName("Dr. Sara Ali"))
	assert.Nil(t, dir.FindDoctorByName("Dr. Nobody"))
}

func TestBookAppointmentTakesSlot(t *testing.T) {
	dir := newTestDirectory()

	appt := dir.BookAppointment("Jane", "ahmed", "09:00", "jane@x.com")
	require.NotNil(t, appt)
	assert.Equal(t, "Dr. Ahmed Khan", appt.DoctorName)

	// Same slot cannot be booked twice
	assert.Nil(t, dir.BookAppointment("John", "ahmed", "09:00", "john@x.com"))
	// But another offered slot still works
	assert.NotNil(t, dir.BookAppointment("John", "ahmed", "10:00", "john@x.com"))
}

func TestBookAppointmentRejectsUnofferedSlot(t *testing.T) {
	dir := newTestDirectory()

	assert.Nil(t, dir.BookAppointment("Jane", "sara", "09:00", "jane@x.com"))
}

func TestCancelAppointmentFreesSlot(t *testing.T) {
	dir := newTestDirectory()

	require.NotNil(t, dir.BookAppointment("Jane", "ahmed", "09:00", "jane@x.com"))
	assert.True(t, dir.CancelAppointment("Jane", "Dr. Ahmed Khan", "09:00"))
	assert.False(t, dir.CancelAppointment("Jane", "Dr. Ahmed Khan", "09:00"))

	assert.NotNil(t, dir.BookAppointment("John", "ahmed", "09:00", "john@x.com"))
}

func TestFAQAnswerSubstringMatch(t *testing.T) {
	dir := newTestDirectory()

	assert.Equal(t, "9 AM to 5 PM.", dir.FAQAnswer("opening hours"))
	assert.Empty(t, dir.FAQAnswer("parking"))
}
