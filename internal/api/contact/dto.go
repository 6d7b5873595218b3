package contact

import "strings"

// Submission is one contact form post. It is never stored.
type Submission struct {
	Name    string `form:"name" json:"name" validate:"required,max=100"`
	Email   string `form:"email" json:"email" validate:"required,email,max=120"`
	Subject string `form:"subject" json:"subject" validate:"required,max=200"`
	Message string `form:"message" json:"message" validate:"required,max=5000"`

	Language               string `form:"language" json:"language" validate:"max=100"`
	ProficiencyLevel       string `form:"proficiency_level" json:"proficiency_level" validate:"max=100"`
	ITServices             string `form:"it_services" json:"it_services" validate:"max=100"`
	WebDevelopmentServices string `form:"web_development_services" json:"web_development_services" validate:"max=100"`
	TechTrainingServices   string `form:"tech_training_services" json:"tech_training_services" validate:"max=100"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (s Submission) Trimmed() Submission {
	return Submission{
		Name:                   strings.TrimSpace(s.Name),
		Email:                  strings.TrimSpace(s.Email),
		Subject:                strings.TrimSpace(s.Subject),
		Message:                strings.TrimSpace(s.Message),
		Language:               strings.TrimSpace(s.Language),
		ProficiencyLevel:       strings.TrimSpace(s.ProficiencyLevel),
		ITServices:             strings.TrimSpace(s.ITServices),
		WebDevelopmentServices: strings.TrimSpace(s.WebDevelopmentServices),
		TechTrainingServices:   strings.TrimSpace(s.TechTrainingServices),
	}
}

type PageResponse struct {
	Flashes []FlashResponse `json:"flashes"`
}

type FlashResponse struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}
