package catalogService

import (
	"ZencrowWebsite/internal/api/catalog"
	"ZencrowWebsite/internal/entity"
)

// GetCatalog returns a fresh copy on every call so callers may not mutate
// the shared listing.
func (s *catalogService) GetCatalog() []entity.ServiceOffering {
	out := make([]entity.ServiceOffering, 0, len(s.offerings))
	for _, o := range s.offerings {
		out = append(out, cloneOffering(o))
	}
	return out
}

func (s *catalogService) GetOffering(id string) (entity.ServiceOffering, error) {
	for _, o := range s.offerings {
		if o.ID == id {
			return cloneOffering(o), nil
		}
	}
	return entity.ServiceOffering{}, catalog.ErrServiceNotFound
}

func cloneOffering(o entity.ServiceOffering) entity.ServiceOffering {
	o.Features = append([]string(nil), o.Features...)
	tiers := make([]entity.PricingTier, 0, len(o.Pricing))
	for _, t := range o.Pricing {
		t.Features = append([]string(nil), t.Features...)
		tiers = append(tiers, t)
	}
	o.Pricing = tiers
	return o
}

func offerings() []entity.ServiceOffering {
	return []entity.ServiceOffering{
		{
			ID:          "it-support",
			Title:       "IT Support & Solutions",
			Icon:        "bi-headset",
			Color:       "primary",
			Description: "Comprehensive IT support and solutions tailored to your business needs.",
			Features: []string{
				"24/7 Technical Support",
				"Network Infrastructure Setup",
				"Cloud Migration Services",
				"Cybersecurity Solutions",
				"Hardware & Software Maintenance",
				"Data Backup & Recovery",
			},
			Pricing: []entity.PricingTier{
				{Name: "basic", Price: "$299", Period: "month", Features: []string{"Basic Support", "Email Support", "Remote Assistance"}},
				{Name: "professional", Price: "$599", Period: "month", Features: []string{"Priority Support", "Phone Support", "On-site Visits", "Proactive Monitoring"}},
				{Name: "enterprise", Price: "Custom", Features: []string{"Dedicated Team", "Custom Solutions", "SLA Guarantee", "Strategic Consulting"}},
			},
		},
		{
			ID:          "web-development",
			Title:       "Web Development",
			Icon:        "bi-code-slash",
			Color:       "success",
			Description: "Custom web solutions and applications built with modern technologies and best practices.",
			Features: []string{
				"Custom Website Development",
				"E-commerce Solutions",
				"Web Application Development",
				"Mobile-Responsive Design",
				"API Development & Integration",
				"Performance Optimization",
			},
			Pricing: []entity.PricingTier{
				{Name: "basic", Price: "$2,999", Period: "project", Features: []string{"5 Pages", "Responsive Design", "Contact Form", "Basic SEO"}},
				{Name: "professional", Price: "$5,999", Period: "project", Features: []string{"10 Pages", "CMS Integration", "Advanced SEO", "Analytics Setup"}},
				{Name: "enterprise", Price: "Custom", Features: []string{"Unlimited Pages", "Custom Features", "E-commerce", "Advanced Integrations"}},
			},
		},
		{
			ID:          "tech-training",
			Title:       "Tech Training",
			Icon:        "bi-mortarboard",
			Color:       "warning",
			Description: "Professional development programs to enhance your team's technical skills and knowledge.",
			Features: []string{
				"Programming Languages Training",
				"Web Development Bootcamps",
				"Data Science & Analytics",
				"Cloud Computing Courses",
				"Cybersecurity Training",
				"Agile & DevOps Practices",
			},
			Pricing: []entity.PricingTier{
				{Name: "individual", Price: "$299", Period: "course", Features: []string{"Online Access", "Course Materials", "Certificate", "Email Support"}},
				{Name: "team", Price: "$2,999", Period: "course", Features: []string{"Up to 10 People", "Live Sessions", "Custom Content", "Progress Tracking"}},
				{Name: "corporate", Price: "Custom", Features: []string{"Custom Curriculum", "On-site Training", "Ongoing Support", "ROI Analysis"}},
			},
		},
		{
			ID:          "language-learning",
			Title:       "Language Learning",
			Icon:        "bi-translate",
			Color:       "info",
			Description: "Comprehensive language courses designed to expand your global communication capabilities.",
			Features: []string{
				"Multiple Language Options",
				"Interactive Learning Platform",
				"Native Speaker Instructors",
				"Business Language Focus",
				"Cultural Training",
				"Progress Assessment",
			},
			Pricing: []entity.PricingTier{
				{Name: "basic", Price: "$99", Period: "month", Features: []string{"1 Language", "Basic Lessons", "Mobile App", "Email Support"}},
				{Name: "premium", Price: "$199", Period: "month", Features: []string{"3 Languages", "Live Sessions", "Cultural Content", "Priority Support"}},
				{Name: "corporate", Price: "Custom", Features: []string{"Custom Programs", "Group Sessions", "Business Focus", "Progress Reports"}},
			},
		},
	}
}
