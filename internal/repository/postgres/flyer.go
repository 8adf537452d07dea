package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/lezerquera/apk-ZIMI/internal/model"
)

// flyerRow is the storage shape of model.Flyer; list columns are TEXT[].
type flyerRow struct {
	ID                 string         `db:"id"`
	ServiceID          string         `db:"service_id"`
	Title              string         `db:"title"`
	ImageURL           string         `db:"image_url"`
	Benefits           pq.StringArray `db:"benefits"`
	Conditions         pq.StringArray `db:"conditions"`
	Process            pq.StringArray `db:"process"`
	Safety             string         `db:"safety"`
	Duration           string         `db:"duration"`
	Frequency          string         `db:"frequency"`
	Location           string         `db:"location"`
	ContactPhone       string         `db:"contact_phone"`
	ContactWebsite     string         `db:"contact_website"`
	OfferTitle         *string        `db:"offer_title"`
	OfferPrice         *string        `db:"offer_price"`
	OfferOriginalPrice *string        `db:"offer_original_price"`
	OfferSavings       *string        `db:"offer_savings"`
	OfferDescription   *string        `db:"offer_description"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

func nonNil(s []string) pq.StringArray {
	if s == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(s)
}

func toFlyerRow(f *model.Flyer) *flyerRow {
	return &flyerRow{
		ID:                 f.ID,
		ServiceID:          string(f.ServiceID),
		Title:              f.Title,
		ImageURL:           f.ImageURL,
		Benefits:           nonNil(f.Benefits),
		Conditions:         nonNil(f.Conditions),
		Process:            nonNil(f.Process),
		Safety:             f.Safety,
		Duration:           f.Duration,
		Frequency:          f.Frequency,
		Location:           f.Location,
		ContactPhone:       f.ContactPhone,
		ContactWebsite:     f.ContactWebsite,
		OfferTitle:         f.OfferTitle,
		OfferPrice:         f.OfferPrice,
		OfferOriginalPrice: f.OfferOriginalPrice,
		OfferSavings:       f.OfferSavings,
		OfferDescription:   f.OfferDescription,
		CreatedAt:          f.CreatedAt,
		UpdatedAt:          f.UpdatedAt,
	}
}

func (row *flyerRow) toModel() *model.Flyer {
	return &model.Flyer{
		ID:                 row.ID,
		ServiceID:          model.ServiceID(row.ServiceID),
		Title:              row.Title,
		ImageURL:           row.ImageURL,
		Benefits:           []string(row.Benefits),
		Conditions:         []string(row.Conditions),
		Process:            []string(row.Process),
		Safety:             row.Safety,
		Duration:           row.Duration,
		Frequency:          row.Frequency,
		Location:           row.Location,
		ContactPhone:       row.ContactPhone,
		ContactWebsite:     row.ContactWebsite,
		OfferTitle:         row.OfferTitle,
		OfferPrice:         row.OfferPrice,
		OfferOriginalPrice: row.OfferOriginalPrice,
		OfferSavings:       row.OfferSavings,
		OfferDescription:   row.OfferDescription,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

const flyerColumns = `id, service_id, title, image_url, benefits, conditions, process,
	safety, duration, frequency, location, contact_phone, contact_website,
	offer_title, offer_price, offer_original_price, offer_savings,
	offer_description, created_at, updated_at`

const flyerValues = `:id, :service_id, :title, :image_url, :benefits, :conditions, :process,
	:safety, :duration, :frequency, :location, :contact_phone, :contact_website,
	:offer_title, :offer_price, :offer_original_price, :offer_savings,
	:offer_description, :created_at, :updated_at`

func (r *flyerRepository) Create(ctx context.Context, flyer *model.Flyer) (err error) {
	defer r.observe("flyer_create", time.Now(), &err)

	_, err = r.db.NamedExecContext(ctx,
		`INSERT INTO flyers (`+flyerColumns+`) VALUES (`+flyerValues+`)`, toFlyerRow(flyer))
	return mapError("flyer", err)
}

func (r *flyerRepository) GetByServiceID(ctx context.Context, serviceID model.ServiceID) (_ *model.Flyer, err error) {
	defer r.observe("flyer_get", time.Now(), &err)

	var row flyerRow
	err = r.db.GetContext(ctx, &row,
		`SELECT `+flyerColumns+` FROM flyers WHERE service_id = $1`, string(serviceID))
	if err != nil {
		return nil, mapError("flyer", err)
	}
	return row.toModel(), nil
}

func (r *flyerRepository) List(ctx context.Context) (_ []*model.Flyer, err error) {
	defer r.observe("flyer_list", time.Now(), &err)

	var rows []flyerRow
	err = r.db.SelectContext(ctx, &rows,
		`SELECT `+flyerColumns+` FROM flyers ORDER BY service_id LIMIT $1`, model.MaxListSize)
	if err != nil {
		return nil, mapError("flyer", err)
	}
	flyers := make([]*model.Flyer, 0, len(rows))
	for i := range rows {
		flyers = append(flyers, rows[i].toModel())
	}
	return flyers, nil
}

func (r *flyerRepository) Upsert(ctx context.Context, flyer *model.Flyer) (err error) {
	defer r.observe("flyer_upsert", time.Now(), &err)

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO flyers (`+flyerColumns+`) VALUES (`+flyerValues+`)
		ON CONFLICT (service_id) DO UPDATE SET
			title = EXCLUDED.title,
			image_url = EXCLUDED.image_url,
			benefits = EXCLUDED.benefits,
			conditions = EXCLUDED.conditions,
			process = EXCLUDED.process,
			safety = EXCLUDED.safety,
			duration = EXCLUDED.duration,
			frequency = EXCLUDED.frequency,
			location = EXCLUDED.location,
			contact_phone = EXCLUDED.contact_phone,
			contact_website = EXCLUDED.contact_website,
			offer_title = EXCLUDED.offer_title,
			offer_price = EXCLUDED.offer_price,
			offer_original_price = EXCLUDED.offer_original_price,
			offer_savings = EXCLUDED.offer_savings,
			offer_description = EXCLUDED.offer_description,
			updated_at = EXCLUDED.updated_at
	`, toFlyerRow(flyer))
	return mapError("flyer", err)
}

func (r *flyerRepository) DeleteByServiceID(ctx context.Context, serviceID model.ServiceID) (err error) {
	defer r.observe("flyer_delete", time.Now(), &err)

	result, err := r.db.ExecContext(ctx, `DELETE FROM flyers WHERE service_id = $1`, string(serviceID))
	if err != nil {
		return mapError("flyer", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return mapError("flyer", err)
	}
	if rows == 0 {
		return mapError("flyer", sql.ErrNoRows)
	}
	return nil
}
