package service

import (
	"errors"

	"ai-booking-assistant/internal/dto"
	"ai-booking-assistant/internal/models"
	"ai-booking-assistant/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrSlotUnavailable     = errors.New("slot is not available")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// DirectoryService exposes the clinic directory: direct slot booking against
// known doctors, cancellation and FAQ lookup.
type DirectoryService struct {
	directory repository.DirectoryRepository
	logger    *zap.Logger
}

func NewDirectoryService(directory repository.DirectoryRepository, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		directory: directory,
		logger:    logger,
	}
}

func (s *DirectoryService) BookAppointment(req *dto.BookAppointmentRequest) (*models.Appointment, error) {
	doctor := s.directory.FindDoctorByName(req.DoctorName)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !s.directory.IsSlotAvailable(doctor, req.Slot) {
		return nil, ErrSlotUnavailable
	}

	appt := s.directory.BookAppointment(req.PatientName, req.DoctorName, req.Slot, req.Email)
	if appt == nil {
		return nil, ErrSlotUnavailable
	}

	s.logger.Info("Appointment booked",
		zap.String("doctor", appt.DoctorName),
		zap.String("slot", appt.Slot),
	)
	return appt, nil
}

func (s *DirectoryService) CancelAppointment(req *dto.CancelAppointmentRequest) error {
	if !s.directory.CancelAppointment(req.PatientName, req.DoctorName, req.Slot) {
		return ErrAppointmentNotFound
	}

	s.logger.Info("Appointment cancelled",
		zap.String("doctor", req.DoctorName),
		zap.String("slot", req.Slot),
	)
	return nil
}

func (s *DirectoryService) FAQAnswer(question string) string {
	return s.directory.FAQAnswer(question)
}
