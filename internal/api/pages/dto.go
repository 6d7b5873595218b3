package pages

type ServiceHighlight struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type HomeResponse struct {
	Company    string             `json:"company"`
	Tagline    string             `json:"tagline"`
	Highlights []ServiceHighlight `json:"highlights"`
}

type AboutResponse struct {
	Company string   `json:"company"`
	Mission string   `json:"mission"`
	Values  []string `json:"values"`
	Contact string   `json:"contact"`
}
