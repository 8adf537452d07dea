package clinic

import (
	"github.com/lezerquera/apk-ZIMI/internal/model"
)

const (
	RootMessage        = "ZIMI API - Zerquera Integrative Medical Institute"
	DefaultDoctorImage = "https://drzerquera.com/wp-content/uploads/2024/02/drzerquera-banner-fondo-azul.avif"
)

var services = []model.ClinicService{
	{
		ID:                     model.ServiceAcupuntura,
		Nombre:                 "Acupuntura",
		Descripcion:            "Técnica de curación milenaria que utiliza agujas finas para restaurar el equilibrio, aliviar el dolor y promover el bienestar general.",
		Duracion:               "45-60 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: false,
	},
	{
		ID:                     model.ServiceMedicinaOriental,
		Nombre:                 "Medicina Oriental",
		Descripcion:            "Enfoque integral que combina diagnóstico tradicional chino con técnicas modernas para tratar la causa raíz de las enfermedades.",
		Duracion:               "60 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: true,
	},
	{
		ID:                     model.ServiceMedicinaFuncional,
		Nombre:                 "Medicina Funcional",
		Descripcion:            "Enfoque personalizado que identifica y trata las causas fundamentales de las enfermedades crónicas.",
		Duracion:               "90 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: true,
	},
	{
		ID:                     model.ServiceMedicinaOrtomolecular,
		Nombre:                 "Medicina Ortomolecular",
		Descripcion:            "Tratamiento que utiliza nutrientes en dosis terapéuticas para restaurar el equilibrio bioquímico óptimo.",
		Duracion:               "60 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: true,
	},
	{
		ID:                     model.ServiceHomeopatia,
		Nombre:                 "Medicina Homeopática",
		Descripcion:            "Sistema de medicina natural que estimula la capacidad innata del cuerpo para curarse a sí mismo.",
		Duracion:               "75 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: true,
	},
	{
		ID:                     model.ServiceNutricionTCM,
		Nombre:                 "Consulta de Nutrición TCM",
		Descripcion:            "Orientación personalizada sobre el uso de principios de la Medicina Tradicional China para optimizar la salud a través de la nutrición adecuada.",
		Duracion:               "45 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: true,
	},
	{
		ID:                     model.ServiceFisioterapia,
		Nombre:                 "Fisioterapia",
		Descripcion:            "Ejercicios personalizados y técnicas manuales para optimizar el movimiento, reducir el dolor y mejorar la función física.",
		Duracion:               "45 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: false,
	},
	{
		ID:                     model.ServiceTerapiaOzono,
		Nombre:                 "Terapia de Ozono en Acupuntos",
		Descripcion:            "Aplicación dirigida de ozono en puntos de acupuntura para mejorar la curación, apoyar el sistema inmunológico y aliviar el dolor.",
		Duracion:               "30 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: false,
	},
	{
		ID:                     model.ServiceTerapiaInyeccion,
		Nombre:                 "Terapia de Inyección",
		Descripcion:            "Utilización de inyecciones especializadas para administrar sustancias naturales para el alivio dirigido del dolor y la regeneración de tejidos.",
		Duracion:               "30 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: false,
	},
	{
		ID:                     model.ServiceHerbalTCM,
		Nombre:                 "Consulta Herbal TCM",
		Descripcion:            "Asesoramiento experto sobre la incorporación de la Medicina Herbal China Tradicional para objetivos personalizados de salud y bienestar.",
		Duracion:               "60 minutos",
		PrecioEstimado:         "Consultar",
		DisponibleTelemedicina: true,
	},
}

// Services returns the service catalog in display order.
func Services() []model.ClinicService {
	out := make([]model.ClinicService, len(services))
	copy(out, services)
	return out
}

// ServiceName returns the display name for id, or id itself when unknown.
func ServiceName(id model.ServiceID) string {
	for _, s := range services {
		if s.ID == id {
			return s.Nombre
		}
	}
	return string(id)
}

func doctorInfo(image string) *model.DoctorInfo {
	return &model.DoctorInfo{
		Nombre: "Dr. Pablo Zerquera",
		Titulo: "OMD, AP, PhD",
		Especialidades: []string{
			"Medicina Oriental y Acupuntura",
			"Medicina Funcional",
			"Medicina Ortomolecular",
			"Medicina Homeopática",
			"Manejo del Dolor",
		},
		Educacion: []model.Education{
			{Institucion: "Universidad de La Habana", Titulo: "Título Médico", Pais: "Cuba"},
			{Institucion: "AMC Miami", Titulo: "Grado en Medicina Oriental y Acupuntura", Pais: "Florida, USA"},
			{Institucion: "Cambridge International University", Titulo: "PhD en Medicina Homeopática", Pais: "USA"},
		},
		Experiencia: "Dr. Zerquera lidera nuestro equipo con amplia experiencia en medicina integrativa, asegurando que todos los miembros colaboren eficazmente para apoyar sus objetivos de salud. Tiene experiencia integral en el manejo del dolor, utilizando diversas técnicas de la Medicina Oriental.",
		Filosofia:   "En ZIMI estamos comprometidos a brindar atención excepcional a nuestros pacientes. Ofrecemos una amplia gama de terapias que satisfacen todas sus necesidades. Al combinar ejercicios de fisioterapia con técnicas tradicionales de acupuntura, encontraremos una solución que funcione mejor para usted.",
		Imagen:      image,
	}
}

func Team() []model.TeamMember {
	return []model.TeamMember{
		{Nombre: "Dr. Pablo Zerquera", Titulo: "OMD, AP, PhD", Rol: "Director Médico", Especialidad: "Medicina Integrativa"},
		{Nombre: "Minsu Blanca", Titulo: "DPT", Rol: "Fisioterapeuta", Especialidad: "Fisioterapia"},
		{Nombre: "Felix Garcia", Titulo: "PTA", Rol: "Asistente de Fisioterapia", Especialidad: "Terapia Física"},
	}
}

func Insurance() *model.InsuranceInfo {
	return &model.InsuranceInfo{
		SegurosAceptados: []string{"Ambetter", "Aetna", "Careplus", "Doctor Health", "AvMed", "Oscar"},
		Mensaje:          "Aceptamos múltiples seguros médicos. Por favor contacte nuestra oficina para verificar su cobertura específica.",
	}
}

func ContactInfo() *model.ContactInfo {
	return &model.ContactInfo{
		Telefono: "+1 305 274 4351",
		Whatsapp: "+1 954 669 8708",
		Email:    "drzerquera@aol.com",
		Direccion: model.Address{
			Calle:        "7700 N Kendall Dr. Unit 807",
			Ciudad:       "Kendall",
			Estado:       "FL",
			CodigoPostal: "33156",
			Pais:         "USA",
		},
		Horarios: model.OpeningHours{
			LunesViernes: "9:00 AM - 6:00 PM",
			Sabado:       "9:00 AM - 2:00 PM",
			Domingo:      "Cerrado",
		},
		RedesSociales: model.SocialLinks{
			Facebook: "https://www.facebook.com/p/Zerquera-Integrative-Medical-Institute-100055086833225/",
			Youtube:  "https://www.youtube.com/@dr.pablozerquera5219",
		},
	}
}

func Testimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			Nombre:     "Natalie G",
			Rol:        "Paciente",
			Testimonio: "He sido paciente del Dr. Zerquera durante varios años. Es extremadamente conocedor y meticuloso. Bajo su cuidado holístico, mi túnel carpiano y dolor de hombro está completamente curado. Continuaré recomendándolo a familiares y amigos.",
			Rating:     5,
		},
		{
			Nombre:     "Betti",
			Rol:        "Paciente",
			Testimonio: "Estoy muy feliz desde que comencé la terapia con el Dr. Zerquera. La acupuntura es una medicina natural fantástica, excelente trabajo del doctor. Es una persona muy profesional, y el ambiente se siente como familia. Me siento muy agradecida porque he tenido muy buenos resultados.",
			Rating:     5,
		},
		{
			Nombre:     "Mariela Carvajal",
			Rol:        "Paciente",
			Testimonio: "Estoy emocionada con la terapia de ozono del Dr. Zerquera. Su experiencia y enfoque cariñoso han llevado a excelentes resultados. ¡Altamente recomendado!",
			Rating:     5,
		},
	}
}
