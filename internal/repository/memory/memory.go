// Package memory implements the repositories in process memory. It backs
// local development and tests; nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

// NewStore returns a Store whose repositories share nothing but the process.
func NewStore() *repository.Store {
	return &repository.Store{
		Patients:     NewPatientRepository(),
		Appointments: NewAppointmentRepository(),
		Messages:     NewMessageRepository(),
		Flyers:       NewFlyerRepository(),
		Contacts:     NewContactRepository(),
		Settings:     NewSettingRepository(),
	}
}

// newestFirst sorts by created time descending, later inserts first on ties.
func newestFirst[T any](items []T, createdAt func(T) time.Time) []T {
	out := make([]T, len(items))
	for i := range items {
		out[len(items)-1-i] = items[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return createdAt(out[i]).After(createdAt(out[j]))
	})
	return out
}

func bound(limit int) int {
	if limit <= 0 || limit > model.MaxListSize {
		return model.MaxListSize
	}
	return limit
}

type patientRepository struct {
	mu       sync.RWMutex
	patients []*model.Patient
}

func NewPatientRepository() repository.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(_ context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.patients {
		if strings.EqualFold(p.Email, patient.Email) {
			return apperrors.Conflict("email already registered", nil)
		}
	}
	cp := *patient
	r.patients = append(r.patients, &cp)
	return nil
}

func (r *patientRepository) find(match func(*model.Patient) bool) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.patients {
		if match(p) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("patient", nil)
}

func (r *patientRepository) Get(_ context.Context, id string) (*model.Patient, error) {
	return r.find(func(p *model.Patient) bool { return p.ID == id })
}

func (r *patientRepository) GetByEmail(_ context.Context, email string) (*model.Patient, error) {
	return r.find(func(p *model.Patient) bool { return strings.EqualFold(p.Email, email) })
}

func (r *patientRepository) GetByEmailAndPhone(_ context.Context, email, phone string) (*model.Patient, error) {
	return r.find(func(p *model.Patient) bool {
		return strings.EqualFold(p.Email, email) && p.Phone == phone
	})
}

type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []*model.Appointment
}

func NewAppointmentRepository() repository.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(_ context.Context, appointment *model.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *appointment
	r.appointments = append(r.appointments, &cp)
	return nil
}

func (r *appointmentRepository) Get(_ context.Context, id string) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.appointments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("appointment", nil)
}

func (r *appointmentRepository) List(_ context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	if filters == nil {
		filters = &model.AppointmentFilters{}
	}
	r.mu.RLock()
	var matched []*model.Appointment
	for _, a := range r.appointments {
		if filters.PatientID != "" && a.PatientID != filters.PatientID {
			continue
		}
		cp := *a
		matched = append(matched, &cp)
	}
	r.mu.RUnlock()

	sorted := newestFirst(matched, func(a *model.Appointment) time.Time { return a.CreatedAt })
	if limit := bound(filters.Limit); len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *appointmentRepository) Confirm(_ context.Context, id string, c *model.AppointmentConfirmation) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.appointments {
		if a.ID != id {
			continue
		}
		confirmedAt := c.ConfirmedAt
		date, clock := c.AssignedDate, c.AssignedTime
		a.Status = model.AppointmentStatusConfirmed
		a.ConfirmedAt = &confirmedAt
		a.AssignedDate = &date
		a.AssignedTime = &clock
		if c.TelemedicineLink != nil {
			link := *c.TelemedicineLink
			a.TelemedicineLink = &link
		}
		if c.DoctorNotes != nil {
			notes := *c.DoctorNotes
			a.DoctorNotes = &notes
		}
		cp := *a
		return &cp, nil
	}
	return nil, apperrors.NotFound("appointment", nil)
}

type messageRepository struct {
	mu       sync.RWMutex
	messages []*model.Message
}

func NewMessageRepository() repository.MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(_ context.Context, message *model.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *message
	r.messages = append(r.messages, &cp)
	return nil
}

func (r *messageRepository) Get(_ context.Context, id string) (*model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.messages {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("message", nil)
}

func (r *messageRepository) list(match func(*model.Message) bool, limit int) []*model.Message {
	r.mu.RLock()
	var matched []*model.Message
	for _, m := range r.messages {
		if match(m) {
			cp := *m
			matched = append(matched, &cp)
		}
	}
	r.mu.RUnlock()

	sorted := newestFirst(matched, func(m *model.Message) time.Time { return m.CreatedAt })
	if limit = bound(limit); len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func (r *messageRepository) ListForUser(_ context.Context, userID string, limit int) ([]*model.Message, error) {
	return r.list(func(m *model.Message) bool {
		return m.SenderID == userID || m.ReceiverID == userID
	}, limit), nil
}

func (r *messageRepository) ListUnreadForReceiver(_ context.Context, receiverID string, limit int) ([]*model.Message, error) {
	return r.list(func(m *model.Message) bool {
		return m.ReceiverID == receiverID && !m.IsRead
	}, limit), nil
}

func (r *messageRepository) CountUnread(_ context.Context, receiverID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, m := range r.messages {
		if m.ReceiverID == receiverID && !m.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *messageRepository) MarkRead(_ context.Context, id string) (*model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.messages {
		if m.ID == id {
			now := time.Now().UTC()
			m.IsRead = true
			m.ReadAt = &now
			cp := *m
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("message", nil)
}

type flyerRepository struct {
	mu     sync.RWMutex
	flyers map[model.ServiceID]*model.Flyer
}

func NewFlyerRepository() repository.FlyerRepository {
	return &flyerRepository{flyers: make(map[model.ServiceID]*model.Flyer)}
}

func copyFlyer(f *model.Flyer) *model.Flyer {
	cp := *f
	cp.Benefits = append([]string(nil), f.Benefits...)
	cp.Conditions = append([]string(nil), f.Conditions...)
	cp.Process = append([]string(nil), f.Process...)
	return &cp
}

func (r *flyerRepository) Create(_ context.Context, flyer *model.Flyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.flyers[flyer.ServiceID]; ok {
		return apperrors.Conflict("flyer already exists for service", nil)
	}
	r.flyers[flyer.ServiceID] = copyFlyer(flyer)
	return nil
}

func (r *flyerRepository) GetByServiceID(_ context.Context, serviceID model.ServiceID) (*model.Flyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.flyers[serviceID]
	if !ok {
		return nil, apperrors.NotFound("flyer", nil)
	}
	return copyFlyer(f), nil
}

func (r *flyerRepository) List(_ context.Context) ([]*model.Flyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	flyers := make([]*model.Flyer, 0, len(r.flyers))
	for _, id := range model.ServiceIDs {
		if f, ok := r.flyers[id]; ok {
			flyers = append(flyers, copyFlyer(f))
		}
	}
	return flyers, nil
}

func (r *flyerRepository) Upsert(_ context.Context, flyer *model.Flyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flyers[flyer.ServiceID] = copyFlyer(flyer)
	return nil
}

func (r *flyerRepository) DeleteByServiceID(_ context.Context, serviceID model.ServiceID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.flyers[serviceID]; !ok {
		return apperrors.NotFound("flyer", nil)
	}
	delete(r.flyers, serviceID)
	return nil
}

type contactRepository struct {
	mu       sync.Mutex
	contacts []*model.Contact
}

func NewContactRepository() repository.ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) Create(_ context.Context, contact *model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *contact
	r.contacts = append(r.contacts, &cp)
	return nil
}

type settingRepository struct {
	mu       sync.RWMutex
	settings map[string]model.Setting
}

func NewSettingRepository() repository.SettingRepository {
	return &settingRepository{settings: make(map[string]model.Setting)}
}

func (r *settingRepository) Get(_ context.Context, key string) (*model.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.settings[key]
	if !ok {
		return nil, apperrors.NotFound("setting", nil)
	}
	return &s, nil
}

func (r *settingRepository) Put(_ context.Context, setting *model.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[setting.Key] = *setting
	return nil
}
