package postgres

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	"github.com/lezerquera/apk-ZIMI/pkg/metrics"
)

// base carries the pool and instrumentation shared by every repository.
type base struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// observe records one database operation. Call it deferred with a pointer to
// the named error result.
func (b base) observe(operation string, start time.Time, err *error) {
	status := "success"
	if err != nil && *err != nil {
		status = "error"
	}
	b.metrics.DatabaseOperations.WithLabelValues(operation, status).Inc()
	b.metrics.DatabaseLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func newBase(db *sqlx.DB, m *metrics.Metrics) base {
	if m == nil {
		m = metrics.NewNop()
	}
	return base{db: db, metrics: m}
}

func bound(limit int) int {
	if limit <= 0 || limit > model.MaxListSize {
		return model.MaxListSize
	}
	return limit
}

type patientRepository struct{ base }

type appointmentRepository struct{ base }

type messageRepository struct{ base }

type flyerRepository struct{ base }

type contactRepository struct{ base }

type settingRepository struct{ base }

func NewPatientRepository(db *sqlx.DB, m *metrics.Metrics) repository.PatientRepository {
	return &patientRepository{newBase(db, m)}
}

func NewAppointmentRepository(db *sqlx.DB, m *metrics.Metrics) repository.AppointmentRepository {
	return &appointmentRepository{newBase(db, m)}
}

func NewMessageRepository(db *sqlx.DB, m *metrics.Metrics) repository.MessageRepository {
	return &messageRepository{newBase(db, m)}
}

func NewFlyerRepository(db *sqlx.DB, m *metrics.Metrics) repository.FlyerRepository {
	return &flyerRepository{newBase(db, m)}
}

func NewContactRepository(db *sqlx.DB, m *metrics.Metrics) repository.ContactRepository {
	return &contactRepository{newBase(db, m)}
}

func NewSettingRepository(db *sqlx.DB, m *metrics.Metrics) repository.SettingRepository {
	return &settingRepository{newBase(db, m)}
}

// NewStore wires every repository against db.
func NewStore(db *sqlx.DB, m *metrics.Metrics) *repository.Store {
	if m == nil {
		m = metrics.NewNop()
	}
	return &repository.Store{
		Patients:     NewPatientRepository(db, m),
		Appointments: NewAppointmentRepository(db, m),
		Messages:     NewMessageRepository(db, m),
		Flyers:       NewFlyerRepository(db, m),
		Contacts:     NewContactRepository(db, m),
		Settings:     NewSettingRepository(db, m),
	}
}
