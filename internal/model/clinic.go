package model

type Education struct {
	Institucion string `json:"institucion"`
	Titulo      string `json:"titulo"`
	Pais        string `json:"pais"`
}

type DoctorInfo struct {
	Nombre         string      `json:"nombre"`
	Titulo         string      `json:"titulo"`
	Especialidades []string    `json:"especialidades"`
	Educacion      []Education `json:"educacion"`
	Experiencia    string      `json:"experiencia"`
	Filosofia      string      `json:"filosofia"`
	Imagen         string      `json:"imagen"`
}

type TeamMember struct {
	Nombre       string `json:"nombre"`
	Titulo       string `json:"titulo"`
	Rol          string `json:"rol"`
	Especialidad string `json:"especialidad"`
}

type InsuranceInfo struct {
	SegurosAceptados []string `json:"seguros_aceptados"`
	Mensaje          string   `json:"mensaje"`
}

type Address struct {
	Calle        string `json:"calle"`
	Ciudad       string `json:"ciudad"`
	Estado       string `json:"estado"`
	CodigoPostal string `json:"codigo_postal"`
	Pais         string `json:"pais"`
}

type OpeningHours struct {
	LunesViernes string `json:"lunes_viernes"`
	Sabado       string `json:"sabado"`
	Domingo      string `json:"domingo"`
}

type SocialLinks struct {
	Facebook string `json:"facebook"`
	Youtube  string `json:"youtube"`
}

type ContactInfo struct {
	Telefono      string       `json:"telefono"`
	Whatsapp      string       `json:"whatsapp"`
	Email         string       `json:"email"`
	Direccion     Address      `json:"direccion"`
	Horarios      OpeningHours `json:"horarios"`
	RedesSociales SocialLinks  `json:"redes_sociales"`
}

type Testimonial struct {
	Nombre     string `json:"nombre"`
	Rol        string `json:"rol"`
	Testimonio string `json:"testimonio"`
	Rating     int    `json:"rating"`
}
