package repository

import (
	"context"
	"fmt"
	"time"

	"ai-booking-assistant/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BookingRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBookingRepository(db *pgxpool.Pool, logger *zap.Logger) *BookingRepository {
	return &BookingRepository{
		db:     db,
		logger: logger,
	}
}

// SaveBooking upserts the customer keyed by email, then inserts a booking row
// referencing it. Returns the new booking ID.
func (r *BookingRepository) SaveBooking(ctx context.Context, draft map[string]string) (uuid.UUID, error) {
	customerID, err := r.upsertCustomer(ctx, draft["name"], draft["email"], draft["phone"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert customer: %w", err)
	}

	bookingType := draft["booking_type"]
	if bookingType == "" {
		bookingType = "Doctor Appointment"
	}

	bookingID := uuid.New()
	query := squirrel.Insert("bookings").
		Columns("id", "customer_id", "booking_type", "date", "time", "status", "doctor_name", "created_at").
		Values(bookingID, customerID, bookingType, draft["date"], draft["time"],
			models.BookingStatusConfirmed, draft["doctor_name"], time.Now()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	r.logger.Info("Booking saved",
		zap.String("booking_id", bookingID.String()),
		zap.String("customer_id", customerID.String()),
	)

	return bookingID, nil
}

// upsertCustomer tries ON CONFLICT first and falls back to select-then-insert
// when the upsert fails (e.g. no unique constraint on email).
func (r *BookingRepository) upsertCustomer(ctx context.Context, name, email, phone string) (uuid.UUID, error) {
	now := time.Now()

	query := squirrel.Insert("customers").
		Columns("customer_id", "name", "email", "phone", "created_at", "updated_at").
		Values(uuid.New(), name, email, phone, now, now).
		Suffix("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, phone = EXCLUDED.phone, updated_at = EXCLUDED.updated_at RETURNING customer_id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var customerID uuid.UUID
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&customerID); err == nil {
		return customerID, nil
	}
	r.logger.Warn("Customer upsert failed, falling back to select-then-insert", zap.String("email", email))

	selectQuery := squirrel.Select("customer_id").
		From("customers").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = selectQuery.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&customerID)
	if err == nil {
		return customerID, nil
	}
	if err != pgx.ErrNoRows {
		return uuid.Nil, err
	}

	customerID = uuid.New()
	insertQuery := squirrel.Insert("customers").
		Columns("customer_id", "name", "email", "phone", "created_at", "updated_at").
		Values(customerID, name, email, phone, now, now).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = insertQuery.ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return uuid.Nil, err
	}

	return customerID, nil
}

// ListBookings returns all bookings for the admin dashboard.
func (r *BookingRepository) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	query := squirrel.Select("id", "customer_id", "booking_type", "date", "time", "status", "doctor_name", "created_at").
		From("bookings").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(
			&b.ID, &b.CustomerID, &b.BookingType, &b.Date, &b.Time, &b.Status, &b.DoctorName, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, &b)
	}

	return bookings, nil
}
