package repository

import (
	"strings"
	"sync"
	"time"

	"ai-booking-assistant/internal/models"
)

// DirectoryRepository holds the clinic directory: doctors, their appointments
// and FAQ entries. Injected rather than package-global so each deployment
// owns its state.
type DirectoryRepository interface {
	FindDoctorByName(name string) *models.Doctor
	IsSlotAvailable(doctor *models.Doctor, slot string) bool
	BookAppointment(patientName, doctorName, slot, email string) *models.Appointment
	CancelAppointment(patientName, doctorName, slot string) bool
	FAQAnswer(question string) string
}

type memoryDirectory struct {
	mu           sync.Mutex
	doctors      []models.Doctor
	appointments []models.Appointment
	faqs         []models.FAQ
}

// NewMemoryDirectory builds an in-memory directory seeded with the given
// doctors and FAQs.
func NewMemoryDirectory(doctors []models.Doctor, faqs []models.FAQ) DirectoryRepository {
	return &memoryDirectory{
		doctors: doctors,
		faqs:    faqs,
	}
}

func (d *memoryDirectory) FindDoctorByName(name string) *models.Doctor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.findDoctorLocked(name)
}

func (d *memoryDirectory) findDoctorLocked(name string) *models.Doctor {
	for i := range d.doctors {
		if strings.Contains(strings.ToLower(d.doctors[i].Name), strings.ToLower(name)) {
			return &d.doctors[i]
		}
	}
	return nil
}

func (d *memoryDirectory) IsSlotAvailable(doctor *models.Doctor, slot string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isSlotAvailableLocked(doctor, slot)
}

func (d *memoryDirectory) isSlotAvailableLocked(doctor *models.Doctor, slot string) bool {
	offered := false
	for _, s := range doctor.AvailableSlots {
		if s == slot {
			offered = true
			break
		}
	}
	if !offered {
		return false
	}

	for _, a := range d.appointments {
		if a.Slot == slot && a.DoctorName == doctor.Name {
			return false
		}
	}
	return true
}

func (d *memoryDirectory) BookAppointment(patientName, doctorName, slot, email string) *models.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()

	doctor := d.findDoctorLocked(doctorName)
	if doctor == nil || !d.isSlotAvailableLocked(doctor, slot) {
		return nil
	}

	appt := models.Appointment{
		PatientName: patientName,
		DoctorName:  doctor.Name,
		Slot:        slot,
		Email:       email,
		CreatedAt:   time.Now(),
	}
	d.appointments = append(d.appointments, appt)
	return &appt
}

func (d *memoryDirectory) CancelAppointment(patientName, doctorName, slot string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	before := len(d.appointments)
	kept := d.appointments[:0]
	for _, a := range d.appointments {
		if a.PatientName == patientName && a.DoctorName == doctorName && a.Slot == slot {
			continue
		}
		kept = append(kept, a)
	}
	d.appointments = kept
	return len(d.appointments) < before
}

func (d *memoryDirectory) FAQAnswer(question string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, faq := range d.faqs {
		if strings.Contains(strings.ToLower(faq.Question), strings.ToLower(question)) {
			return faq.Answer
		}
	}
	return ""
}
