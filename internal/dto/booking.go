package dto

type BookingResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	BookingType string `json:"booking_type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	DoctorName  string `json:"doctor_name,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type BookAppointmentRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
	DoctorName  string `json:"doctor_name" validate:"required"`
	Slot        string `json:"slot" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}

type CancelAppointmentRequest struct {
	PatientName string `json:"patient_name" validate:"required"`
	DoctorName  string `json:"doctor_name" validate:"required"`
	Slot        string `json:"slot" validate:"required"`
}

type AppointmentResponse struct {
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
	Slot        string `json:"slot"`
	Email       string `json:"email"`
	CreatedAt   string `json:"created_at"`
}
