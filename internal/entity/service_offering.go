package entity

type ServiceOffering struct {
	ID          string
	Title       string
	Icon        string
	Color       string
	Description string
	Features    []string
	Pricing     []PricingTier
}

type PricingTier struct {
	Name     string
	Price    string
	Period   string
	Features []string
}
