package clinic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/repository/memory"
)

func newTestService() *Service {
	return NewService(memory.NewSettingRepository(), time.Minute, time.Minute, zerolog.Nop())
}

func TestCatalogCoversEveryService(t *testing.T) {
	catalog := Services()
	require.Len(t, catalog, len(model.ServiceIDs))
	for i, id := range model.ServiceIDs {
		assert.Equal(t, id, catalog[i].ID)
		assert.NotEmpty(t, catalog[i].Nombre)
	}
	assert.Equal(t, "Medicina Funcional", ServiceName(model.ServiceMedicinaFuncional))
	assert.Equal(t, "unknown", ServiceName("unknown"))
}

func TestDoctorImageDefaultsAndUpdates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	info, err := svc.DoctorInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultDoctorImage, info.Imagen)

	_, err = svc.UpdateDoctorImage(ctx, "https://cdn.example/doctor.png")
	require.NoError(t, err)

	img, err := svc.DoctorImage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/doctor.png", img.ImageURL)
	require.NotNil(t, img.UpdatedAt)

	info, err = svc.DoctorInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/doctor.png", info.Imagen)
}

type failingSettings struct{}

func (failingSettings) Get(context.Context, string) (*model.Setting, error) {
	return nil, errors.New("store down")
}

func (failingSettings) Put(context.Context, *model.Setting) error { return errors.New("store down") }

func TestDoctorImageSurfacesStoreErrors(t *testing.T) {
	svc := NewService(failingSettings{}, time.Minute, time.Minute, zerolog.Nop())

	_, err := svc.DoctorImage(context.Background())
	assert.Error(t, err)

	_, err = svc.UpdateDoctorImage(context.Background(), "x")
	assert.Error(t, err)
}
