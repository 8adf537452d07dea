package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError("patient", nil))
	assert.True(t, apperrors.IsNotFound(mapError("patient", sql.ErrNoRows)))
	assert.True(t, apperrors.IsConflict(mapError("patient", &pq.Error{Code: uniqueViolation})))

	err := mapError("patient", &pq.Error{Code: "42P01"})
	assert.False(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsConflict(err))
}

func TestLoadMigrationsOrdered(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
	assert.Equal(t, 1, migrations[0].Version)
	assert.Contains(t, migrations[0].SQL, "CREATE TABLE IF NOT EXISTS appointments")
}

// newTestStore connects to ZIMI_TEST_DATABASE_URL and applies migrations.
func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	dsn := os.Getenv("ZIMI_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("ZIMI_TEST_DATABASE_URL not set")
	}
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = Migrate(context.Background(), db)
	require.NoError(t, err)
	return NewStore(db, nil)
}

func TestPostgresAppointmentConfirm(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	patientID := uuid.NewString()
	appt := &model.Appointment{
		ID:              uuid.NewString(),
		PatientID:       patientID,
		PatientName:     "Ana Pérez",
		PatientEmail:    "ana@example.com",
		PatientPhone:    "555",
		ServiceType:     model.ServiceAcupuntura,
		AppointmentType: model.ModalityInPerson,
		RequestedDate:   "2025-03-01",
		RequestedTime:   "10:00",
		Status:          model.AppointmentStatusRequested,
		CreatedAt:       time.Now().UTC(),
	}
	require.NoError(t, store.Appointments.Create(ctx, appt))

	notes := "traer estudios"
	got, err := store.Appointments.Confirm(ctx, appt.ID, &model.AppointmentConfirmation{
		AssignedDate: "2025-03-02",
		AssignedTime: "11:00",
		DoctorNotes:  &notes,
		ConfirmedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, got.Status)
	assert.Equal(t, "2025-03-02", *got.AssignedDate)
	assert.Nil(t, got.TelemedicineLink)
	assert.Equal(t, notes, *got.DoctorNotes)

	list, err := store.Appointments.List(ctx, &model.AppointmentFilters{PatientID: patientID})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = store.Appointments.Confirm(ctx, uuid.NewString(), &model.AppointmentConfirmation{ConfirmedAt: time.Now()})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestPostgresPatientUniqueEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	email := uuid.NewString() + "@example.com"
	p := &model.Patient{ID: uuid.NewString(), FirstName: "Ana", LastName: "Pérez", Email: email, Phone: "555", CreatedAt: time.Now().UTC()}
	require.NoError(t, store.Patients.Create(ctx, p))

	dup := *p
	dup.ID = uuid.NewString()
	assert.True(t, apperrors.IsConflict(store.Patients.Create(ctx, &dup)))

	got, err := store.Patients.GetByEmailAndPhone(ctx, email, "555")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestPostgresFlyerUpsertAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_ = store.Flyers.DeleteByServiceID(ctx, model.ServiceHerbalTCM)

	now := time.Now().UTC()
	flyer := &model.Flyer{
		ID:        uuid.NewString(),
		ServiceID: model.ServiceHerbalTCM,
		Title:     "Herbolaria",
		Benefits:  []string{"uno", "dos"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Flyers.Create(ctx, flyer))
	assert.True(t, apperrors.IsConflict(store.Flyers.Create(ctx, flyer)))

	flyer.Title = "Herbolaria China"
	require.NoError(t, store.Flyers.Upsert(ctx, flyer))

	got, err := store.Flyers.GetByServiceID(ctx, model.ServiceHerbalTCM)
	require.NoError(t, err)
	assert.Equal(t, "Herbolaria China", got.Title)
	assert.Equal(t, []string{"uno", "dos"}, got.Benefits)
	assert.Empty(t, got.Process)

	require.NoError(t, store.Flyers.DeleteByServiceID(ctx, model.ServiceHerbalTCM))
	assert.True(t, apperrors.IsNotFound(store.Flyers.DeleteByServiceID(ctx, model.ServiceHerbalTCM)))
}

func TestPostgresMessagesUnread(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	receiver := uuid.NewString()
	msg := &model.Message{
		ID:         uuid.NewString(),
		SenderID:   model.AdminID,
		SenderName: "Dr. Zerquera",
		ReceiverID: receiver,
		Subject:    "Hola",
		Body:       "Bienvenido",
		Type:       model.MessageTypeGeneral,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, store.Messages.Create(ctx, msg))

	n, err := store.Messages.CountUnread(ctx, receiver)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	read, err := store.Messages.MarkRead(ctx, msg.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	n, err = store.Messages.CountUnread(ctx, receiver)
	require.NoError(t, err)
	assert.Zero(t, n)
}
