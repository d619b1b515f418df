package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-booking-assistant/internal/dto"
	"ai-booking-assistant/internal/models"
	"ai-booking-assistant/internal/vectorstore"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// BookingSaver persists a confirmed booking draft.
type BookingSaver interface {
	SaveBooking(ctx context.Context, draft map[string]string) (uuid.UUID, error)
}

// ConfirmationSender delivers the booking confirmation. Reports success.
type ConfirmationSender interface {
	SendBookingConfirmation(details map[string]string) bool
}

const (
	sessionTTL     = 30 * time.Minute
	sessionCleanup = 10 * time.Minute
)

// Intent labels produced by ClassifyIntent.
const (
	IntentBooking      = "booking"
	IntentDoctorSearch = "doctor_search"
	IntentGeneral      = "general"
)

var bookingKeywords = []string{
	"book", "appointment", "reserve", "reservation", "register", "schedule", "meeting", "slot",
}

var doctorKeywords = []string{
	"doctor", "physician", "specialist", "find", "suggest", "recommend", "search",
}

// ChatSession is the per-conversation state kept between turns.
type ChatSession struct {
	Flow                *BookingFlow
	BookingIntentAsked  bool
	LastSuggestedDoctor *models.DoctorSuggestion
}

// ChatService routes each incoming message to the booking flow, the doctor
// search or the question answering pipeline, and carries session state across
// turns.
type ChatService struct {
	rag         *RAGService
	bookingRepo BookingSaver
	mail        ConfirmationSender
	sessions    *cache.Cache
	logger      *zap.Logger
}

func NewChatService(
	rag *RAGService,
	bookingRepo BookingSaver,
	mail ConfirmationSender,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		rag:         rag,
		bookingRepo: bookingRepo,
		mail:        mail,
		sessions:    cache.New(sessionTTL, sessionCleanup),
		logger:      logger,
	}
}

// ClassifyIntent buckets a message by keyword. Booking keywords win over
// doctor search keywords so "book me a doctor appointment" starts a booking
// instead of another search.
func ClassifyIntent(message string) string {
	lower := strings.ToLower(message)
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			return IntentBooking
		}
	}
	for _, kw := range doctorKeywords {
		if strings.Contains(lower, kw) {
			return IntentDoctorSearch
		}
	}
	return IntentGeneral
}

// HandleMessage advances the conversation by one turn.
func (s *ChatService) HandleMessage(ctx context.Context, sessionID, message string) (*dto.ChatResponse, error) {
	session := s.session(sessionID)

	if session.Flow.Active() {
		return s.handleFlowTurn(ctx, session, message)
	}

	if session.BookingIntentAsked {
		session.BookingIntentAsked = false
		lower := strings.ToLower(message)
		switch {
		case strings.Contains(lower, "yes"):
			session.Flow.Start(session.LastSuggestedDoctor)
			session.LastSuggestedDoctor = nil
			reply, _, _ := session.Flow.HandleMessage("")
			return &dto.ChatResponse{Reply: "Great! Let's get your booking started. " + reply}, nil
		case strings.Contains(lower, "no"):
			session.LastSuggestedDoctor = nil
			return &dto.ChatResponse{Reply: "No problem! Let me know if there's anything else I can help with."}, nil
		}
		// Anything else abandons the booking question and is routed normally.
		session.LastSuggestedDoctor = nil
	}

	switch ClassifyIntent(message) {
	case IntentBooking:
		session.BookingIntentAsked = true
		return &dto.ChatResponse{
			Reply: "It sounds like you want to make a booking. Shall we proceed? (yes/no)",
		}, nil
	case IntentDoctorSearch:
		return s.handleDoctorSearch(ctx, session, message)
	default:
		return &dto.ChatResponse{Reply: s.rag.Answer(ctx, message)}, nil
	}
}

func (s *ChatService) handleFlowTurn(ctx context.Context, session *ChatSession, message string) (*dto.ChatResponse, error) {
	reply, completed, details := session.Flow.HandleMessage(message)
	if !completed {
		return &dto.ChatResponse{Reply: reply}, nil
	}

	bookingID, err := s.bookingRepo.SaveBooking(ctx, details)
	if err != nil {
		s.logger.Error("Failed to save booking", zap.Error(err))
		session.Flow = NewBookingFlow()
		return &dto.ChatResponse{
			Reply: "Sorry, something went wrong while saving your booking. Let's start over when you're ready.",
		}, nil
	}

	resp := &dto.ChatResponse{
		Reply:     reply,
		BookingID: bookingID.String(),
	}
	if !s.mail.SendBookingConfirmation(details) {
		resp.Warning = "The confirmation email could not be sent."
	}

	session.Flow = NewBookingFlow()
	return resp, nil
}

func (s *ChatService) handleDoctorSearch(ctx context.Context, session *ChatSession, message string) (*dto.ChatResponse, error) {
	suggestions, err := s.rag.SuggestDoctors(ctx, message)
	if errors.Is(err, vectorstore.ErrIndexNotFound) {
		return &dto.ChatResponse{Reply: NoDocumentsMessage}, nil
	}
	if err != nil {
		s.logger.Error("Doctor search failed", zap.Error(err))
		return &dto.ChatResponse{
			Reply: "Sorry, I couldn't search for doctors right now. Please try again later.",
		}, nil
	}
	if len(suggestions) == 0 {
		return &dto.ChatResponse{
			Reply: "I couldn't find any doctors matching your request in the documents.",
		}, nil
	}

	best := suggestions[0]
	session.LastSuggestedDoctor = &best
	session.BookingIntentAsked = true
	return &dto.ChatResponse{
		Reply: fmt.Sprintf(
			"I found some doctors for you. Here is the best match: **%s** (%s). Would you like to book an appointment with them?",
			best.Name, best.Specialization,
		),
	}, nil
}

// session returns the state for the given session ID, creating it on first
// contact. The TTL slides on every access.
func (s *ChatService) session(sessionID string) *ChatSession {
	if v, ok := s.sessions.Get(sessionID); ok {
		session := v.(*ChatSession)
		s.sessions.Set(sessionID, session, cache.DefaultExpiration)
		return session
	}

	session := &ChatSession{Flow: NewBookingFlow()}
	s.sessions.Set(sessionID, session, cache.DefaultExpiration)
	return session
}
