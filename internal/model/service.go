package model

// ServiceID identifies one of the clinic's fixed service categories.
type ServiceID string

const (
	ServiceAcupuntura            ServiceID = "acupuntura"
	ServiceMedicinaOriental      ServiceID = "medicina_oriental"
	ServiceMedicinaFuncional     ServiceID = "medicina_funcional"
	ServiceMedicinaOrtomolecular ServiceID = "medicina_ortomolecular"
	ServiceHomeopatia            ServiceID = "homeopatia"
	ServiceNutricionTCM          ServiceID = "nutricion_tcm"
	ServiceFisioterapia          ServiceID = "fisioterapia"
	ServiceTerapiaOzono          ServiceID = "terapia_ozono"
	ServiceTerapiaInyeccion      ServiceID = "terapia_inyeccion"
	ServiceHerbalTCM             ServiceID = "herbal_tcm"
)

// ServiceIDs lists every service category in display order.
var ServiceIDs = []ServiceID{
	ServiceAcupuntura,
	ServiceMedicinaOriental,
	ServiceMedicinaFuncional,
	ServiceMedicinaOrtomolecular,
	ServiceHomeopatia,
	ServiceNutricionTCM,
	ServiceFisioterapia,
	ServiceTerapiaOzono,
	ServiceTerapiaInyeccion,
	ServiceHerbalTCM,
}

func (s ServiceID) Valid() bool {
	for _, id := range ServiceIDs {
		if id == s {
			return true
		}
	}
	return false
}

// ClinicService is the public description of a service category.
type ClinicService struct {
	ID                     ServiceID `json:"id"`
	Nombre                 string    `json:"nombre"`
	Descripcion            string    `json:"descripcion"`
	Duracion               string    `json:"duracion"`
	PrecioEstimado         string    `json:"precio_estimado"`
	DisponibleTelemedicina bool      `json:"disponible_telemedicina"`
}
