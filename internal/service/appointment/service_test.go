package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	"github.com/lezerquera/apk-ZIMI/internal/repository/memory"
	"github.com/lezerquera/apk-ZIMI/internal/service/message"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
)

type mockNotifier struct {
	mock.Mock
}

var _ Notifier = (*mockNotifier)(nil)

func (m *mockNotifier) Send(ctx context.Context, sender model.MessageSender, req *model.SendMessageRequest) (*model.Message, error) {
	args := m.Called(ctx, sender, req)
	if msg, ok := args.Get(0).(*model.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

type fixture struct {
	store    *repository.Store
	messages *message.Service
	svc      *Service
	metrics  *metrics.Metrics
}

func newFixture() *fixture {
	store := memory.NewStore()
	m := metrics.New("test", prometheus.NewRegistry())
	msgs := message.NewService(store.Messages, nil, m, zerolog.Nop())
	return &fixture{
		store:    store,
		messages: msgs,
		svc:      NewService(store.Appointments, msgs, nil, m, zerolog.Nop(), "Dr. Pablo Zerquera"),
		metrics:  m,
	}
}

func strPtr(s string) *string { return &s }

func createRequest() *model.CreateAppointmentRequest {
	return &model.CreateAppointmentRequest{
		PatientName:     "María González",
		PatientEmail:    "maria@example.com",
		PatientPhone:    "+1 305 555 0100",
		ServiceType:     model.ServiceMedicinaFuncional,
		AppointmentType: model.ModalityTelemedicine,
		RequestedDate:   "2025-01-20",
		RequestedTime:   "10:00",
		Note:            strPtr("Primera consulta"),
	}
}

func TestCreateIssuesFreshIDs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a1, err := f.svc.Create(ctx, createRequest())
	require.NoError(t, err)
	a2, err := f.svc.Create(ctx, createRequest())
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusRequested, a1.Status)
	assert.NotEqual(t, a1.ID, a2.ID)
	assert.NotEqual(t, a1.PatientID, a2.PatientID)
	assert.NotEqual(t, a1.ID, a1.PatientID)

	_, err = f.store.Patients.Get(ctx, a1.PatientID)
	assert.True(t, apperrors.IsNotFound(err), "no patient record is created for a request")
	assert.Equal(t, 2.0, testutil.ToFloat64(f.metrics.AppointmentsRequested))
}

func TestConfirmSendsOneConfirmationMessage(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	apt, err := f.svc.Create(ctx, createRequest())
	require.NoError(t, err)

	result, err := f.svc.Confirm(ctx, apt.ID, &model.ConfirmAppointmentRequest{
		AssignedDate:     "2025-01-25",
		AssignedTime:     "14:30",
		TelemedicineLink: strPtr("https://meet.google.com/abc-defg-hij"),
		DoctorNotes:      strPtr("Traiga sus estudios previos."),
	})
	require.NoError(t, err)
	assert.True(t, result.PatientNotified)
	assert.True(t, result.NotificationDelivered)
	assert.Equal(t, "2025-01-25", result.Details.AssignedDate)
	assert.Equal(t, "14:30", result.Details.AssignedTime)

	stored, err := f.svc.Get(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, stored.Status)
	assert.Equal(t, "2025-01-25", *stored.AssignedDate)
	assert.Equal(t, "2025-01-20", stored.RequestedDate, "requested date is never overwritten")
	assert.NotNil(t, stored.ConfirmedAt)

	msgs, err := f.messages.ListFor(ctx, apt.PatientID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	msg := msgs[0]
	assert.Equal(t, model.MessageTypeAppointmentConfirmation, msg.Type)
	assert.Equal(t, model.AdminID, msg.SenderID)
	assert.Equal(t, apt.PatientID, msg.ReceiverID)
	assert.Equal(t, ConfirmationSubject, msg.Subject)
	assert.Contains(t, msg.Body, "2025-01-25")
	assert.Contains(t, msg.Body, "14:30")
	assert.Contains(t, msg.Body, "medicina_funcional")
	assert.Contains(t, msg.Body, "María González")
	assert.Contains(t, msg.Body, "https://meet.google.com/abc-defg-hij")
	assert.Contains(t, msg.Body, "Traiga sus estudios previos.")
	require.NotNil(t, msg.AppointmentID)
	assert.Equal(t, apt.ID, *msg.AppointmentID)
}

func TestConfirmMissingAppointmentSendsNothing(t *testing.T) {
	notifier := &mockNotifier{}
	store := memory.NewStore()
	svc := NewService(store.Appointments, notifier, nil, nil, zerolog.Nop(), "Dr. Pablo Zerquera")

	_, err := svc.Confirm(context.Background(), "missing", &model.ConfirmAppointmentRequest{
		AssignedDate: "2025-01-25",
		AssignedTime: "14:30",
	})
	assert.True(t, apperrors.IsNotFound(err))
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmSucceedsWhenNotificationFails(t *testing.T) {
	notifier := &mockNotifier{}
	notifier.On("Send", mock.Anything, mock.Anything, mock.MatchedBy(func(req *model.SendMessageRequest) bool {
		return req.Type == model.MessageTypeAppointmentConfirmation
	})).Return(nil, errors.New("message store unavailable")).Once()

	store := memory.NewStore()
	m := metrics.New("test", prometheus.NewRegistry())
	svc := NewService(store.Appointments, notifier, nil, m, zerolog.Nop(), "Dr. Pablo Zerquera")

	ctx := context.Background()
	apt, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	result, err := svc.Confirm(ctx, apt.ID, &model.ConfirmAppointmentRequest{AssignedDate: "2025-01-25", AssignedTime: "14:30"})
	require.NoError(t, err)
	assert.True(t, result.PatientNotified)
	assert.False(t, result.NotificationDelivered)

	stored, err := store.Appointments.Get(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, stored.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsFailed.WithLabelValues("appointment_confirmation")))
	notifier.AssertExpectations(t)
}

func TestConfirmWithoutLinkKeepsPreviousLink(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	apt, err := f.svc.Create(ctx, createRequest())
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, apt.ID, &model.ConfirmAppointmentRequest{
		AssignedDate:     "2025-01-25",
		AssignedTime:     "14:30",
		TelemedicineLink: strPtr("https://meet.example/first"),
	})
	require.NoError(t, err)

	result, err := f.svc.Confirm(ctx, apt.ID, &model.ConfirmAppointmentRequest{
		AssignedDate:     "2025-01-26",
		AssignedTime:     "09:00",
		TelemedicineLink: strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Details.TelemedicineLink)
	assert.Equal(t, "https://meet.example/first", *result.Details.TelemedicineLink)
	assert.Equal(t, "2025-01-26", result.Details.AssignedDate)
}

func TestListByPatient(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	a1, err := f.svc.Create(ctx, createRequest())
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, createRequest())
	require.NoError(t, err)

	all, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.svc.ListByPatient(ctx, a1.PatientID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, a1.ID, mine[0].ID)
}

func TestNotifyAdmin(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	apt, err := f.svc.Create(ctx, createRequest())
	require.NoError(t, err)

	msg, err := f.svc.NotifyAdmin(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, notifiedMessage, msg)

	_, err = f.svc.NotifyAdmin(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestConfirmationBodyInPerson(t *testing.T) {
	date, clock := "2025-02-01", "08:15"
	body := confirmationBody(&model.Appointment{
		PatientName:     "Luis",
		ServiceType:     model.ServiceAcupuntura,
		AppointmentType: model.ModalityInPerson,
		AssignedDate:    &date,
		AssignedTime:    &clock,
	})
	assert.Contains(t, body, "Presencial")
	assert.Contains(t, body, "Acupuntura (acupuntura)")
	assert.NotContains(t, body, "Enlace de telemedicina")
	assert.NotContains(t, body, "Notas del doctor")
}
