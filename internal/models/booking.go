package models

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Customer struct {
	ID        uuid.UUID `db:"customer_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Booking struct {
	ID          uuid.UUID     `db:"id"`
	CustomerID  uuid.UUID     `db:"customer_id"`
	BookingType string        `db:"booking_type"`
	Date        string        `db:"date"`
	Time        string        `db:"time"`
	Status      BookingStatus `db:"status"`
	DoctorName  string        `db:"doctor_name"`
	CreatedAt   time.Time     `db:"created_at"`
}
