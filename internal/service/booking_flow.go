package service

import (
	"strings"

	"ai-booking-assistant/internal/models"
)

// bookingRequiredFields is the slot schema, in collection order.
var bookingRequiredFields = []string{"name", "email", "phone", "booking_type", "date", "time"}

var bookingTimeOptions = []string{
	"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00",
}

var bookingTypeOptions = []string{
	"Doctor Appointment",
}

const defaultBookingTime = "09:00"

const inactiveFlowMessage = "If you'd like to make a booking say 'I want to book' or 'book an appointment'."

// BookingFlow is the slot-filling dialogue state machine for one session.
// It owns a single draft; a field, once set, is never overwritten. The only
// correction path is cancelling and starting over. Completion is terminal:
// callers construct a fresh flow for the next booking.
type BookingFlow struct {
	data                 map[string]string
	awaitingConfirmation bool
	active               bool
	doctorInfo           *models.DoctorSuggestion
}

func NewBookingFlow() *BookingFlow {
	return &BookingFlow{
		data: make(map[string]string),
	}
}

func (f *BookingFlow) Active() bool {
	return f.active
}

// Start activates the flow. A suggested doctor from a prior search prefills
// the booking type and the doctor's name.
func (f *BookingFlow) Start(doctorInfo *models.DoctorSuggestion) {
	f.data = make(map[string]string)
	f.awaitingConfirmation = false
	f.active = true
	f.doctorInfo = doctorInfo
	if doctorInfo != nil {
		f.data["booking_type"] = "Doctor Appointment"
		f.data["doctor_name"] = doctorInfo.Name
	}
}

func (f *BookingFlow) Reset() {
	f.data = make(map[string]string)
	f.awaitingConfirmation = false
	f.active = false
	f.doctorInfo = nil
}

// HandleMessage advances the dialogue by one turn. completed is true exactly
// when the user confirms a fully collected draft; the draft is then returned
// as the payload and the flow goes inactive.
func (f *BookingFlow) HandleMessage(message string) (response string, completed bool, payload map[string]string) {
	if !f.active {
		return inactiveFlowMessage, false, nil
	}

	f.extractFields(message)

	missing := f.missingFields()
	if len(missing) == 0 && !f.awaitingConfirmation {
		f.awaitingConfirmation = true
		return "Please confirm your booking details:\n" + f.summary() +
			"\nReply 'yes' to confirm or 'no' to cancel.", false, nil
	}

	if f.awaitingConfirmation {
		lower := strings.ToLower(message)
		switch {
		case strings.Contains(lower, "yes"):
			f.awaitingConfirmation = false
			f.active = false
			return "Thank you! Your booking is confirmed and will be sent to your email.", true, f.data
		case strings.Contains(lower, "no"):
			f.Reset()
			return "Booking cancelled. Let's start over. Please provide your name.", false, nil
		default:
			return "Please reply 'yes' to confirm or 'no' to cancel.", false, nil
		}
	}

	return fieldPrompt(missing[0]), false, nil
}

// extractFields runs slot extraction across every still-missing field.
// Priority per field: explicit "field: value" pairs, then the one-line CSV
// shorthand, then single-value heuristics. A single message may satisfy
// several fields at once; a field that already holds a value is skipped.
func (f *BookingFlow) extractFields(message string) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return
	}

	csvParts := parseShorthand(message)

	for _, field := range bookingRequiredFields {
		if _, ok := f.data[field]; ok {
			continue
		}

		if strings.Contains(message, ":") && f.extractPair(message, field) {
			continue
		}

		if csvParts != nil {
			f.fillFromShorthand(csvParts)
			break
		}

		f.extractHeuristic(field, message, trimmed)
	}
}

// extractPair looks for a comma-separated "field: value" pair matching the
// given field, case-insensitively. Reports whether the field was filled.
func (f *BookingFlow) extractPair(message, field string) bool {
	for _, part := range strings.Split(message, ",") {
		k, v, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(k), field) {
			f.data[field] = stripQuotes(v)
			return true
		}
	}
	return false
}

// parseShorthand recognizes the quick-entry CSV form
// "name, email, phone, booking_type, date, time". The heuristic gate is an
// email sniff: the message must contain both "@" and "com" and split into at
// least six comma-separated parts.
func parseShorthand(message string) []string {
	if !strings.Contains(message, ",") {
		return nil
	}
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "@") || !strings.Contains(lower, "com") {
		return nil
	}

	parts := strings.Split(message, ",")
	if len(parts) < 6 {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (f *BookingFlow) fillFromShorthand(parts []string) {
	for i, field := range bookingRequiredFields {
		if _, ok := f.data[field]; ok {
			continue
		}
		f.data[field] = stripQuotes(parts[i])
	}
}

func (f *BookingFlow) extractHeuristic(field, message, trimmed string) {
	switch field {
	case "name":
		if !strings.Contains(message, "@") && len(strings.Fields(message)) <= 4 {
			f.data[field] = stripQuotes(message)
		}
	case "email":
		if strings.Contains(message, "@") {
			f.data[field] = stripQuotes(message)
		}
	case "phone":
		if containsDigit(message) {
			f.data[field] = stripQuotes(message)
		}
	case "booking_type":
		for _, option := range bookingTypeOptions {
			if trimmed == option {
				f.data[field] = trimmed
				break
			}
		}
	case "date":
		if len(trimmed) == 10 && strings.Contains(message, "-") {
			f.data[field] = trimmed
		}
	case "time":
		// Intentionally ignores the message and fills the opening hour.
		// Time parsing never shipped; explicit "time:" pairs and the CSV
		// shorthand are the only ways to set another value.
		f.data[field] = defaultBookingTime
	}
}

func (f *BookingFlow) missingFields() []string {
	var missing []string
	for _, field := range bookingRequiredFields {
		if _, ok := f.data[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// summary renders one "Field: value" line per collected field, schema fields
// first, extras (doctor_name) after.
func (f *BookingFlow) summary() string {
	var lines []string
	for _, field := range bookingRequiredFields {
		if v, ok := f.data[field]; ok {
			lines = append(lines, titleKey(field)+": "+v)
		}
	}
	if v, ok := f.data["doctor_name"]; ok {
		lines = append(lines, titleKey("doctor_name")+": "+v)
	}
	return strings.Join(lines, "\n")
}

func fieldPrompt(field string) string {
	switch field {
	case "name":
		return "Please provide your name."
	case "email":
		return "Please provide your email address."
	case "phone":
		return "Please provide your phone number."
	case "booking_type":
		return "Please select your booking type from the following options: " +
			strings.Join(bookingTypeOptions, ", ")
	case "date":
		return "Please provide your preferred date (YYYY-MM-DD)."
	case "time":
		return "Please enter your preferred time (e.g., 09:00). Doctor's available times will be used when possible: " +
			strings.Join(bookingTimeOptions, ", ")
	default:
		return "Please provide " + strings.ReplaceAll(field, "_", " ") + "."
	}
}
