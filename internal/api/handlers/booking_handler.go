package handlers

import (
	"errors"
	"time"

	"ai-booking-assistant/internal/dto"
	"ai-booking-assistant/internal/repository"
	"ai-booking-assistant/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	bookingRepo      *repository.BookingRepository
	directoryService *service.DirectoryService
	validator        *validator.Validate
}

func NewBookingHandler(bookingRepo *repository.BookingRepository, directoryService *service.DirectoryService) *BookingHandler {
	return &BookingHandler{
		bookingRepo:      bookingRepo,
		directoryService: directoryService,
		validator:        validator.New(),
	}
}

// List godoc
// @Summary List all bookings
// @Description Returns every booking, newest first. Admin only.
// @Tags bookings
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/bookings [get]
func (h *BookingHandler) List(c *fiber.Ctx) error {
	bookings, err := h.bookingRepo.ListBookings(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list bookings",
		})
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.BookingResponse{
			ID:          b.ID.String(),
			CustomerID:  b.CustomerID.String(),
			BookingType: b.BookingType,
			Date:        b.Date,
			Time:        b.Time,
			Status:      string(b.Status),
			DoctorName:  b.DoctorName,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(resp)
}

// BookAppointment godoc
// @Summary Book a slot with a known doctor
// @Description Books an open slot in the clinic directory
// @Tags directory
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Appointment data"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/directory/book [post]
func (h *BookingHandler) BookAppointment(c *fiber.Ctx) error {
	var req dto.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	appt, err := h.directoryService.BookAppointment(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDoctorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, service.ErrSlotUnavailable):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to book appointment",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AppointmentResponse{
		PatientName: appt.PatientName,
		DoctorName:  appt.DoctorName,
		Slot:        appt.Slot,
		Email:       appt.Email,
		CreatedAt:   appt.CreatedAt.Format(time.RFC3339),
	})
}

// CancelAppointment godoc
// @Summary Cancel a directory appointment
// @Tags directory
// @Accept json
// @Produce json
// @Param request body dto.CancelAppointmentRequest true "Appointment data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/directory/cancel [post]
func (h *BookingHandler) CancelAppointment(c *fiber.Ctx) error {
	var req dto.CancelAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.directoryService.CancelAppointment(&req); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "cancelled"})
}

// FAQ godoc
// @Summary Look up an FAQ answer
// @Tags directory
// @Produce json
// @Param q query string true "Question"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/directory/faq [get]
func (h *BookingHandler) FAQ(c *fiber.Ctx) error {
	question := c.Query("q")
	if question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter 'q' is required",
		})
	}

	answer := h.directoryService.FAQAnswer(question)
	if answer == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no matching FAQ entry",
		})
	}

	return c.JSON(fiber.Map{"answer": answer})
}
