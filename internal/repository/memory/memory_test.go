package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

func TestPatientEmailIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewPatientRepository()

	require.NoError(t, repo.Create(ctx, &model.Patient{ID: "p1", Email: "ana@example.com", Phone: "555"}))
	err := repo.Create(ctx, &model.Patient{ID: "p2", Email: "ANA@example.com"})
	assert.True(t, apperrors.IsConflict(err))

	p, err := repo.GetByEmailAndPhone(ctx, "ana@example.com", "555")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	_, err = repo.GetByEmailAndPhone(ctx, "ana@example.com", "000")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAppointmentListNewestFirstAndBounded(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < model.MaxListSize+5; i++ {
		patient := "p1"
		if i%2 == 1 {
			patient = "p2"
		}
		require.NoError(t, repo.Create(ctx, &model.Appointment{
			ID:        fmt.Sprintf("a%d", i),
			PatientID: patient,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, model.MaxListSize)
	assert.Equal(t, fmt.Sprintf("a%d", model.MaxListSize+4), all[0].ID)

	mine, err := repo.List(ctx, &model.AppointmentFilters{PatientID: "p2", Limit: 3})
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, a := range mine {
		assert.Equal(t, "p2", a.PatientID)
	}
	assert.True(t, mine[0].CreatedAt.After(mine[1].CreatedAt))
}

func TestAppointmentConfirmKeepsUnsetOptionals(t *testing.T) {
	ctx := context.Background()
	repo := NewAppointmentRepository()
	link := "https://meet.example/1"
	require.NoError(t, repo.Create(ctx, &model.Appointment{
		ID:               "a1",
		Status:           model.AppointmentStatusRequested,
		TelemedicineLink: &link,
	}))

	now := time.Now().UTC()
	got, err := repo.Confirm(ctx, "a1", &model.AppointmentConfirmation{
		AssignedDate: "2025-03-01",
		AssignedTime: "10:00",
		ConfirmedAt:  now,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusConfirmed, got.Status)
	assert.Equal(t, "2025-03-01", *got.AssignedDate)
	assert.Equal(t, link, *got.TelemedicineLink)
	assert.Nil(t, got.DoctorNotes)

	_, err = repo.Confirm(ctx, "missing", &model.AppointmentConfirmation{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestMessagesUnreadAndMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, &model.Message{ID: "m1", SenderID: "p1", ReceiverID: model.AdminID, CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, &model.Message{ID: "m2", SenderID: model.AdminID, ReceiverID: "p1", CreatedAt: now.Add(time.Second)}))
	require.NoError(t, repo.Create(ctx, &model.Message{ID: "m3", SenderID: "p2", ReceiverID: model.AdminID, CreatedAt: now.Add(2 * time.Second)}))

	forP1, err := repo.ListForUser(ctx, "p1", 0)
	require.NoError(t, err)
	require.Len(t, forP1, 2)
	assert.Equal(t, "m2", forP1[0].ID)

	n, err := repo.CountUnread(ctx, model.AdminID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	read, err := repo.MarkRead(ctx, "m3")
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.NotNil(t, read.ReadAt)

	unread, err := repo.ListUnreadForReceiver(ctx, model.AdminID, 5)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "m1", unread[0].ID)

	_, err = repo.MarkRead(ctx, "nope")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestFlyerLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewFlyerRepository()
	flyer := &model.Flyer{ID: "f1", ServiceID: model.ServiceHomeopatia, Title: "Homeopatía", Benefits: []string{"a"}}

	require.NoError(t, repo.Create(ctx, flyer))
	assert.True(t, apperrors.IsConflict(repo.Create(ctx, flyer)))

	// stored copy is independent of the caller's slice
	flyer.Benefits[0] = "mutated"
	got, err := repo.GetByServiceID(ctx, model.ServiceHomeopatia)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Benefits)

	got.Title = "Nuevo"
	require.NoError(t, repo.Upsert(ctx, got))
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Nuevo", list[0].Title)

	require.NoError(t, repo.DeleteByServiceID(ctx, model.ServiceHomeopatia))
	assert.True(t, apperrors.IsNotFound(repo.DeleteByServiceID(ctx, model.ServiceHomeopatia)))
}

func TestSettings(t *testing.T) {
	ctx := context.Background()
	repo := NewSettingRepository()

	_, err := repo.Get(ctx, model.SettingDoctorImage)
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, repo.Put(ctx, &model.Setting{Key: model.SettingDoctorImage, Value: "a.png"}))
	require.NoError(t, repo.Put(ctx, &model.Setting{Key: model.SettingDoctorImage, Value: "b.png"}))
	s, err := repo.Get(ctx, model.SettingDoctorImage)
	require.NoError(t, err)
	assert.Equal(t, "b.png", s.Value)
}
