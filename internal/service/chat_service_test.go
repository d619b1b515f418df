package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSaver struct {
	savedDraft map[string]string
	id         uuid.UUID
	err        error
}

func (f *fakeSaver) SaveBooking(ctx context.Context, draft map[string]string) (uuid.UUID, error) {
	f.savedDraft = draft
	return f.id, f.err
}

type fakeMailer struct {
	sent bool
	ok   bool
}

func (f *fakeMailer) SendBookingConfirmation(details map[string]string) bool {
	f.sent = true
	return f.ok
}

func newTestChatService(t *testing.T, llmReply string, saver *fakeSaver, mailer *fakeMailer) *ChatService {
	t.Helper()
	rag, store := newTestRAGService(t, llmReply)
	saveTestIndex(t, store)
	return NewChatService(rag, saver, mailer, zap.NewNop())
}

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"I want to book an appointment", IntentBooking},
		{"please reserve a slot", IntentBooking},
		{"can you schedule a meeting", IntentBooking},
		{"find me a cardiologist", IntentDoctorSearch},
		{"suggest a good physician", IntentDoctorSearch},
		{"what are your opening hours", IntentGeneral},
		// Booking keywords win over doctor keywords
		{"book me a doctor appointment", IntentBooking},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyIntent(tt.message))
		})
	}
}

func TestChatBookingIntentConfirmation(t *testing.T) {
	svc := newTestChatService(t, "irrelevant", &fakeSaver{}, &fakeMailer{ok: true})
	ctx := context.Background()

	resp, err := svc.HandleMessage(ctx, "s1", "I want to book an appointment")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Shall we proceed?")

	resp, err = svc.HandleMessage(ctx, "s1", "yes")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Please provide your name.")
}

func TestChatBookingIntentDeclined(t *testing.T) {
	svc := newTestChatService(t, "irrelevant", &fakeSaver{}, &fakeMailer{ok: true})
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, "s1", "I want to book")
	require.NoError(t, err)

	resp, err := svc.HandleMessage(ctx, "s1", "no thanks")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "No problem")
}

func TestChatBookingIntentAbandonedByUnrelatedMessage(t *testing.T) {
	svc := newTestChatService(t, "The clinic opens at 9 AM.", &fakeSaver{}, &fakeMailer{ok: true})
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, "s1", "I want to book")
	require.NoError(t, err)

	// Neither yes nor no: the question is dropped and the message routed normally
	resp, err := svc.HandleMessage(ctx, "s1", "what are the opening hours")
	require.NoError(t, err)
	assert.Equal(t, "The clinic opens at 9 AM.", resp.Reply)
}

func TestChatCompletedBookingIsPersistedAndMailed(t *testing.T) {
	bookingID := uuid.New()
	saver := &fakeSaver{id: bookingID}
	mailer := &fakeMailer{ok: true}
	svc := newTestChatService(t, "irrelevant", saver, mailer)
	ctx := context.Background()

	_, err := svc.HandleMessage(ctx, "s1", "I want to book")
	require.NoError(t, err)
	_, err = svc.HandleMessage(ctx, "s1", "yes")
	require.NoError(t, err)
	_, err = svc.HandleMessage(ctx, "s1",
		"Jane Doe, jane@x.com, 5551234, Doctor Appointment, 2026-01-22, 10:00")
	require.NoError(t, err)

	resp, err := svc.HandleMessage(ctx, "s1", "yes")
	require.NoError(t, err)

	assert.Equal(t, bookingID.String(), resp.BookingID)
	assert.Empty(t, resp.Warning)
	assert.True(t, mailer.sent)
	require.NotNil(t, saver.savedDraft)
	assert.Equal(t, "jane@x.com", saver.savedDraft["email"])
}

func TestChatMailFailureIsNonFatal(t *testing.T) {
	saver := &fakeSaver{id: uuid.New()}
	mailer := &fakeMailer{ok: false}
	svc := newTestChatService(t, "irrelevant", saver, mailer)
	ctx := context.Background()

	_, _ = svc.HandleMessage(ctx, "s1", "I want to book")
	_, _ = svc.HandleMessage(ctx, "s1", "yes")
	_, _ = svc.HandleMessage(ctx, "s1",
		"Jane Doe, jane@x.com, 5551234, Doctor Appointment, 2026-01-22, 10:00")

	resp, err := svc.HandleMessage(ctx, "s1", "yes")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.BookingID)
	assert.NotEmpty(t, resp.Warning)
}

func TestChatPersistenceFailureResetsSession(t *testing.T) {
	saver := &fakeSaver{err: errors.New("db down")}
	svc := newTestChatService(t, "irrelevant", saver, &fakeMailer{ok: true})
	ctx := context.Background()

	_, _ = svc.HandleMessage(ctx, "s1", "I want to book")
	_, _ = svc.HandleMessage(ctx, "s1", "yes")
	_, _ = svc.HandleMessage(ctx, "s1",
		"Jane Doe, jane@x.com, 5551234, Doctor Appointment, 2026-01-22, 10:00")

	resp, err := svc.HandleMessage(ctx, "s1", "yes")
	require.NoError(t, err)

	assert.Empty(t, resp.BookingID)
	assert.Contains(t, resp.Reply, "something went wrong")

	// Session is usable again after the failure
	resp, err = svc.HandleMessage(ctx, "s1", "I want to book")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Shall we proceed?")
}

func TestChatDoctorSearchOffersBooking(t *testing.T) {
	reply := `[{"name":"Dr. X","specialization":"Cardiology","experience_years":5,` +
		`"fee":"$50","available_times":["10:00"]}]`
	svc := newTestChatService(t, reply, &fakeSaver{}, &fakeMailer{ok: true})
	ctx := context.Background()

	resp, err := svc.HandleMessage(ctx, "s1", "find me a cardiologist")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Dr. X")
	assert.Contains(t, resp.Reply, "Cardiology")
	assert.Contains(t, resp.Reply, "book an appointment")

	// Accepting the offer starts a flow prefilled with the doctor
	resp, err = svc.HandleMessage(ctx, "s1", "yes")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Please provide your name.")
}

func TestChatDoctorSearchNoMatches(t *testing.T) {
	svc := newTestChatService(t, "[]", &fakeSaver{}, &fakeMailer{ok: true})

	resp, err := svc.HandleMessage(context.Background(), "s1", "find me a neurologist")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "couldn't find any doctors")
}

func TestChatGeneralQuestionUsesRAG(t *testing.T) {
	svc := newTestChatService(t, "We are open 9 to 5.", &fakeSaver{}, &fakeMailer{ok: true})

	resp, err := svc.HandleMessage(context.Background(), "s1", "what are your opening hours")
	require.NoError(t, err)
	assert.Equal(t, "We are open 9 to 5.", resp.Reply)
}

func TestChatSessionsAreIsolated(t *testing.T) {
	svc := newTestChatService(t, "irrelevant", &fakeSaver{}, &fakeMailer{ok: true})
	ctx := context.Background()

	_, _ = svc.HandleMessage(ctx, "s1", "I want to book")
	_, _ = svc.HandleMessage(ctx, "s1", "yes")

	// A different session is not in a booking flow
	resp, err := svc.HandleMessage(ctx, "s2", "I want to book")
	require.NoError(t, err)
	assert.Contains(t, resp.Reply, "Shall we proceed?")
}
