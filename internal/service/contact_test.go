package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ElisioMassango/chelevi-sub001/internal/gateway"
	"github.com/ElisioMassango/chelevi-sub001/internal/notify"
	apperrors "github.com/ElisioMassango/chelevi-sub001/pkg/errors"
	"github.com/ElisioMassango/chelevi-sub001/pkg/logger"
)

func newContactFixture(t *testing.T) (*ContactService, *mockEmail, *mockWhatsApp) {
	t.Helper()
	log := logger.New("test", "error")
	renderer, err := notify.NewRenderer("Chelevi")
	require.NoError(t, err)

	email := &mockEmail{}
	whatsapp := &mockWhatsApp{}
	owner := OwnerContacts{Email: "owner@example.com", WhatsApp: "+258841111111"}
	svc := NewContactService(email, whatsapp, notify.NewDispatcher(log), renderer, owner)
	return svc, email, whatsapp
}

func TestContactSubmit(t *testing.T) {
	svc, email, whatsapp := newContactFixture(t)

	email.On("Send", mock.Anything, mock.MatchedBy(func(msg gateway.EmailMessage) bool {
		return msg.To == "owner@example.com" && msg.Type == "contact"
	})).Return(nil)
	whatsapp.On("Send", mock.Anything, mock.MatchedBy(func(msg gateway.WhatsAppMessage) bool {
		return msg.Number == "+258841111111" && msg.Text != ""
	})).Return(nil)

	err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ana Silva",
		Email:   "ana@example.com",
		Message: "Quando chega a nova coleção?",
	})
	require.NoError(t, err)
	email.AssertExpectations(t)
	whatsapp.AssertExpectations(t)
}

func TestContactSubmitWithValidPhone(t *testing.T) {
	svc, email, whatsapp := newContactFixture(t)

	email.On("Send", mock.Anything, mock.Anything).Return(nil)
	whatsapp.On("Send", mock.Anything, mock.Anything).Return(nil)

	err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Phone:   "841234567",
		Message: "Olá",
	})
	assert.NoError(t, err)
}

func TestContactSubmitInvalidPhone(t *testing.T) {
	svc, email, whatsapp := newContactFixture(t)

	err := svc.Submit(context.Background(), ContactInput{
		Name:     "Ana",
		Email:    "ana@example.com",
		Phone:    "123",
		Message:  "Olá",
		Language: "en",
	})
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	email.AssertNotCalled(t, "Send")
	whatsapp.AssertNotCalled(t, "Send")
}

func TestContactSubmitEmailFailureDoesNotFailSubmission(t *testing.T) {
	svc, email, whatsapp := newContactFixture(t)

	email.On("Send", mock.Anything, mock.Anything).Return(errors.New("timeout"))
	whatsapp.On("Send", mock.Anything, mock.Anything).Return(nil)

	err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Olá",
	})
	assert.NoError(t, err, "a failed channel must not fail the submission")
	whatsapp.AssertExpectations(t)
}

func TestContactSubmitAllChannelsDown(t *testing.T) {
	svc, email, whatsapp := newContactFixture(t)

	email.On("Send", mock.Anything, mock.Anything).Return(errors.New("timeout"))
	whatsapp.On("Send", mock.Anything, mock.Anything).Return(errors.New("timeout"))

	err := svc.Submit(context.Background(), ContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Olá",
	})
	assert.NoError(t, err)
}
