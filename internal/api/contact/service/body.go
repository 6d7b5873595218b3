package contactService

import (
	"strings"

	"ZencrowWebsite/internal/api/contact"
)

const (
	siteName = "Zencrow Technologies"

	sectionContact        = "CONTACT INFORMATION"
	sectionMessage        = "MESSAGE"
	sectionLanguage       = "LANGUAGE LEARNING DETAILS"
	sectionITServices     = "IT SERVICES DETAILS"
	sectionWebDevelopment = "WEB DEVELOPMENT DETAILS"
	sectionTechTraining   = "TECH TRAINING DETAILS"
	sectionEnd            = "END OF MESSAGE"

	rule = "========================================"
)

// block is one section of the notification email. An empty Name renders
// the lines without a section header.
type block struct {
	Name  string
	Lines []string
}

// composeBlocks decides which sections the email carries, in their fixed order.
func composeBlocks(form contact.Submission) []block {
	blocks := []block{
		{Lines: []string{"New Contact Form Submission from " + siteName + " Website"}},
		{Name: sectionContact, Lines: []string{
			"Name: " + form.Name,
			"Email: " + form.Email,
			"Subject: " + form.Subject,
		}},
		{Name: sectionMessage, Lines: []string{form.Message}},
	}

	proficiency := ""
	if form.ProficiencyLevel != "" {
		proficiency = "Proficiency Level: " + form.ProficiencyLevel
	}

	switch {
	case form.Language != "":
		lines := []string{"Language of Interest: " + form.Language}
		if proficiency != "" {
			lines = append(lines, proficiency)
		}
		blocks = append(blocks, block{Name: sectionLanguage, Lines: lines})
	case proficiency != "":
		blocks = append(blocks, block{Lines: []string{proficiency}})
	}

	if form.ITServices != "" {
		blocks = append(blocks, block{Name: sectionITServices, Lines: []string{"IT Service Required: " + form.ITServices}})
	}
	if form.WebDevelopmentServices != "" {
		blocks = append(blocks, block{Name: sectionWebDevelopment, Lines: []string{"Web Development Service: " + form.WebDevelopmentServices}})
	}
	if form.TechTrainingServices != "" {
		blocks = append(blocks, block{Name: sectionTechTraining, Lines: []string{"Tech Training Program: " + form.TechTrainingServices}})
	}

	return append(blocks,
		block{Name: sectionEnd},
		block{Lines: []string{"This message was sent from the " + siteName + " contact form."}},
	)
}

func formatBody(blocks []block) string {
	var b strings.Builder

	for i, blk := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		if blk.Name != "" {
			b.WriteString(rule + "\n" + blk.Name + "\n" + rule + "\n")
		}
		for _, line := range blk.Lines {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
