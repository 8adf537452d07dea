package flyer

import (
	"github.com/lezerquera/apk-ZIMI/internal/model"
)

// location and contact lines shared by every default flyer
var commonTemplate = model.Flyer{
	Location:       "7700 N Kendall Dr. Unit 807, Kendall, FL 33156",
	ContactPhone:   "+1 305 274 4351",
	ContactWebsite: "www.drzerquera.com",
}

// defaults holds bespoke content for a few services. Any other service gets
// the acupuntura content.
var defaults = map[model.ServiceID]model.Flyer{
	model.ServiceAcupuntura: {
		Title:    "Acupuntura",
		ImageURL: "https://images.unsplash.com/photo-1512290923902-8a9f81dc236c",
		Benefits: []string{
			"Alivio natural del dolor crónico y agudo",
			"Reducción del estrés y la ansiedad",
			"Mejora de la calidad del sueño",
			"Fortalecimiento del sistema inmunológico",
			"Equilibrio de la energía vital (Qi)",
		},
		Conditions: []string{
			"Dolor de espalda y cuello",
			"Migrañas y dolores de cabeza",
			"Artritis y dolor articular",
			"Insomnio",
			"Trastornos digestivos",
		},
		Process: []string{
			"Evaluación inicial según la Medicina Tradicional China",
			"Diagnóstico por pulso y lengua",
			"Aplicación de agujas estériles de un solo uso",
			"Reposo de 20 a 30 minutos",
			"Recomendaciones de seguimiento",
		},
		Safety:    "Procedimiento seguro realizado con agujas estériles desechables por un profesional licenciado.",
		Duration:  "45-60 minutos",
		Frequency: "1-2 sesiones por semana según la condición",
	},
	model.ServiceTerapiaOzono: {
		Title:    "Terapia de Ozono en Acupuntos",
		ImageURL: "https://images.unsplash.com/photo-1576091160550-2173dba999ef",
		Benefits: []string{
			"Mejora de la oxigenación de los tejidos",
			"Acción antiinflamatoria",
			"Alivio del dolor localizado",
			"Apoyo al sistema inmunológico",
		},
		Conditions: []string{
			"Dolor articular y muscular",
			"Hernias discales",
			"Fatiga crónica",
			"Procesos inflamatorios",
		},
		Process: []string{
			"Evaluación de la zona a tratar",
			"Selección de puntos de acupuntura",
			"Aplicación dirigida de ozono médico",
			"Observación posterior al tratamiento",
		},
		Safety:    "El ozono médico se aplica en dosis controladas siguiendo protocolos establecidos.",
		Duration:  "30 minutos",
		Frequency: "1 sesión por semana durante 4 a 8 semanas",
	},
	model.ServiceFisioterapia: {
		Title:    "Fisioterapia",
		ImageURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b",
		Benefits: []string{
			"Recuperación de la movilidad",
			"Fortalecimiento muscular",
			"Reducción del dolor",
			"Prevención de lesiones",
		},
		Conditions: []string{
			"Lesiones deportivas",
			"Rehabilitación postoperatoria",
			"Dolor lumbar",
			"Problemas de postura",
		},
		Process: []string{
			"Evaluación funcional",
			"Plan de ejercicios personalizado",
			"Terapia manual",
			"Seguimiento del progreso",
		},
		Safety:    "Tratamiento dirigido por fisioterapeutas licenciados y adaptado a cada paciente.",
		Duration:  "45 minutos",
		Frequency: "2-3 sesiones por semana",
	},
	model.ServiceMedicinaFuncional: {
		Title:    "Medicina Funcional",
		ImageURL: "https://images.unsplash.com/photo-1505751172876-fa1923c5c528",
		Benefits: []string{
			"Tratamiento de la causa raíz",
			"Plan de salud personalizado",
			"Mejora de la energía y la vitalidad",
			"Prevención de enfermedades crónicas",
		},
		Conditions: []string{
			"Fatiga crónica",
			"Desequilibrios hormonales",
			"Problemas digestivos",
			"Enfermedades autoinmunes",
		},
		Process: []string{
			"Historia clínica completa",
			"Análisis de laboratorio especializados",
			"Plan de tratamiento integrativo",
			"Consultas de seguimiento",
		},
		Safety:    "Enfoque basado en evidencia que combina terapias naturales y convencionales.",
		Duration:  "90 minutos",
		Frequency: "Seguimiento mensual",
	},
}

// defaultFlyer builds the unsaved fallback for serviceID.
func defaultFlyer(serviceID model.ServiceID) model.Flyer {
	content, ok := defaults[serviceID]
	if !ok {
		content = defaults[model.ServiceAcupuntura]
	}

	f := commonTemplate
	f.ServiceID = serviceID
	f.Title = content.Title
	f.ImageURL = content.ImageURL
	f.Benefits = append([]string(nil), content.Benefits...)
	f.Conditions = append([]string(nil), content.Conditions...)
	f.Process = append([]string(nil), content.Process...)
	f.Safety = content.Safety
	f.Duration = content.Duration
	f.Frequency = content.Frequency
	return f
}
