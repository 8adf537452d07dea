package postgres

import (
	"context"
	"time"

	"github.com/lezerquera/apk-ZIMI/internal/model"
)

const appointmentColumns = `id, patient_id, patient_name, patient_email, patient_phone,
	service_type, appointment_type, fecha_solicitada, hora_solicitada, mensaje,
	status, created_at, confirmed_at, assigned_date, assigned_time,
	telemedicine_link, doctor_notes`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (err error) {
	defer r.observe("appointment_create", time.Now(), &err)

	query := `
		INSERT INTO appointments (
			id, patient_id, patient_name, patient_email, patient_phone,
			service_type, appointment_type, fecha_solicitada, hora_solicitada,
			mensaje, status, created_at
		) VALUES (
			:id, :patient_id, :patient_name, :patient_email, :patient_phone,
			:service_type, :appointment_type, :fecha_solicitada, :hora_solicitada,
			:mensaje, :status, :created_at
		)
	`
	_, err = r.db.NamedExecContext(ctx, query, appointment)
	return mapError("appointment", err)
}

func (r *appointmentRepository) Get(ctx context.Context, id string) (_ *model.Appointment, err error) {
	defer r.observe("appointment_get", time.Now(), &err)

	var appointment model.Appointment
	err = r.db.GetContext(ctx, &appointment,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	if err != nil {
		return nil, mapError("appointment", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) (_ []*model.Appointment, err error) {
	defer r.observe("appointment_list", time.Now(), &err)

	if filters == nil {
		filters = &model.AppointmentFilters{}
	}

	appointments := []*model.Appointment{}
	if filters.PatientID != "" {
		err = r.db.SelectContext(ctx, &appointments, `
			SELECT `+appointmentColumns+` FROM appointments
			WHERE patient_id = $1
			ORDER BY created_at DESC
			LIMIT $2`, filters.PatientID, bound(filters.Limit))
	} else {
		err = r.db.SelectContext(ctx, &appointments, `
			SELECT `+appointmentColumns+` FROM appointments
			ORDER BY created_at DESC
			LIMIT $1`, bound(filters.Limit))
	}
	if err != nil {
		return nil, mapError("appointment", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Confirm(ctx context.Context, id string, c *model.AppointmentConfirmation) (_ *model.Appointment, err error) {
	defer r.observe("appointment_confirm", time.Now(), &err)

	var appointment model.Appointment
	err = r.db.GetContext(ctx, &appointment, `
		UPDATE appointments
		SET status = $2,
			confirmed_at = $3,
			assigned_date = $4,
			assigned_time = $5,
			telemedicine_link = COALESCE($6, telemedicine_link),
			doctor_notes = COALESCE($7, doctor_notes)
		WHERE id = $1
		RETURNING `+appointmentColumns,
		id,
		model.AppointmentStatusConfirmed,
		c.ConfirmedAt,
		c.AssignedDate,
		c.AssignedTime,
		c.TelemedicineLink,
		c.DoctorNotes,
	)
	if err != nil {
		return nil, mapError("appointment", err)
	}
	return &appointment, nil
}
