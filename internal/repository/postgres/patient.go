package postgres

import (
	"context"
	"time"

	"github.com/lezerquera/apk-ZIMI/internal/model"
)

const patientColumns = `id, nombre, apellido, email, telefono, fecha_nacimiento,
	direccion, numero_seguro, seguro, created_at`

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (err error) {
	defer r.observe("patient_create", time.Now(), &err)

	query := `
		INSERT INTO patients (` + patientColumns + `)
		VALUES (:id, :nombre, :apellido, :email, :telefono, :fecha_nacimiento,
			:direccion, :numero_seguro, :seguro, :created_at)
	`
	_, err = r.db.NamedExecContext(ctx, query, patient)
	return mapError("patient", err)
}

func (r *patientRepository) Get(ctx context.Context, id string) (_ *model.Patient, err error) {
	defer r.observe("patient_get", time.Now(), &err)

	var patient model.Patient
	err = r.db.GetContext(ctx, &patient, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)
	if err != nil {
		return nil, mapError("patient", err)
	}
	return &patient, nil
}

func (r *patientRepository) GetByEmail(ctx context.Context, email string) (_ *model.Patient, err error) {
	defer r.observe("patient_get_by_email", time.Now(), &err)

	var patient model.Patient
	err = r.db.GetContext(ctx, &patient,
		`SELECT `+patientColumns+` FROM patients WHERE LOWER(email) = LOWER($1)`, email)
	if err != nil {
		return nil, mapError("patient", err)
	}
	return &patient, nil
}

func (r *patientRepository) GetByEmailAndPhone(ctx context.Context, email, phone string) (_ *model.Patient, err error) {
	defer r.observe("patient_login", time.Now(), &err)

	var patient model.Patient
	err = r.db.GetContext(ctx, &patient,
		`SELECT `+patientColumns+` FROM patients WHERE LOWER(email) = LOWER($1) AND telefono = $2`,
		email, phone)
	if err != nil {
		return nil, mapError("patient", err)
	}
	return &patient, nil
}
