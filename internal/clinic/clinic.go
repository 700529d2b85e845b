// Package clinic holds the static content of the clinic's landing page.
package clinic

type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Contact struct {
	Phone       string `json:"phone"`
	Mobile      string `json:"mobile"`
	WhatsApp    string `json:"whatsapp"`
	WhatsAppURL string `json:"whatsapp_url"`
	Street      string `json:"street"`
	City        string `json:"city"`
}

type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Clinic struct {
	Name      string       `json:"name"`
	ShortName string       `json:"short_name"`
	Tagline   string       `json:"tagline"`
	Founded   int          `json:"founded"`
	Services  []Service    `json:"services"`
	Plans     []string     `json:"insurance_plans"`
	Contact   Contact      `json:"contact"`
	Social    []SocialLink `json:"social"`
}

// Address returns the street and city on one line.
func (c Contact) Address() string {
	return c.Street + ", " + c.City
}

// Default returns a fresh copy of the clinic's catalog.
func Default() Clinic {
	return Clinic{
		Name:      "Clínica Odontológica Sorriso Perfeito",
		ShortName: "Sorriso Perfeito",
		Tagline:   "Cuidando do seu sorriso com excelência e dedicação",
		Founded:   2010,
		Services: []Service{
			{Title: "Clínica Geral", Description: "Tratamentos preventivos e restauradores"},
			{Title: "Ortodontia", Description: "Aparelhos fixos e alinhadores transparentes"},
			{Title: "Implantes", Description: "Recupere seu sorriso com implantes modernos"},
			{Title: "Estética Dental", Description: "Clareamento e facetas em porcelana"},
			{Title: "Endodontia", Description: "Tratamento de canal com tecnologia avançada"},
			{Title: "Odontopediatria", Description: "Cuidados especiais para crianças"},
		},
		Plans: []string{
			"Amil Dental",
			"Bradesco Dental",
			"SulAmérica Odonto",
			"OdontoPrev",
			"Porto Seguro",
			"MetLife",
			"Unimed Odonto",
			"Interodonto",
		},
		Contact: Contact{
			Phone:       "(11) 3000-0000",
			Mobile:      "(11) 99000-0000",
			WhatsApp:    "(19) 98606-9178",
			WhatsAppURL: "https://wa.me/5519986069178",
			Street:      "Av. Paulista, 1000 - Bela Vista",
			City:        "São Paulo - SP, 01310-100",
		},
		Social: []SocialLink{
			{Name: "Instagram", URL: "https://www.instagram.com"},
			{Name: "Facebook", URL: "https://www.facebook.com"},
			{Name: "WhatsApp", URL: "https://wa.me/5511990000000"},
		},
	}
}
