package repository

import (
	"context"

	"github.com/lezerquera/apk-ZIMI/internal/model"
)

// All repository interfaces in one file. Implementations return
// pkg/errors NotFound when a keyed lookup misses and Conflict when a
// unique key is already taken.
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id string) (*model.Patient, error)
		GetByEmail(ctx context.Context, email string) (*model.Patient, error)
		GetByEmailAndPhone(ctx context.Context, email, phone string) (*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id string) (*model.Appointment, error)
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
		// Confirm applies the confirmation fields and returns the stored result.
		Confirm(ctx context.Context, id string, confirmation *model.AppointmentConfirmation) (*model.Appointment, error)
	}

	MessageRepository interface {
		Create(ctx context.Context, message *model.Message) error
		Get(ctx context.Context, id string) (*model.Message, error)
		// ListForUser returns messages sent or received by userID, newest first.
		ListForUser(ctx context.Context, userID string, limit int) ([]*model.Message, error)
		ListUnreadForReceiver(ctx context.Context, receiverID string, limit int) ([]*model.Message, error)
		CountUnread(ctx context.Context, receiverID string) (int, error)
		MarkRead(ctx context.Context, id string) (*model.Message, error)
	}

	FlyerRepository interface {
		Create(ctx context.Context, flyer *model.Flyer) error
		GetByServiceID(ctx context.Context, serviceID model.ServiceID) (*model.Flyer, error)
		List(ctx context.Context) ([]*model.Flyer, error)
		// Upsert writes every field of flyer keyed by its ServiceID.
		Upsert(ctx context.Context, flyer *model.Flyer) error
		DeleteByServiceID(ctx context.Context, serviceID model.ServiceID) error
	}

	ContactRepository interface {
		Create(ctx context.Context, contact *model.Contact) error
	}

	SettingRepository interface {
		Get(ctx context.Context, key string) (*model.Setting, error)
		Put(ctx context.Context, setting *model.Setting) error
	}
)

// Store bundles every repository the API needs.
type Store struct {
	Patients     PatientRepository
	Appointments AppointmentRepository
	Messages     MessageRepository
	Flyers       FlyerRepository
	Contacts     ContactRepository
	Settings     SettingRepository
}
