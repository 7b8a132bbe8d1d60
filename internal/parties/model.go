package parties

// Party is one reservation reduced to operational facts. It is a full
// snapshot: nothing references the enriched document after creation.
type Party struct {
	PartyID               int      `json:"party_id"`
	CustomerName          string   `json:"customer_name"`
	Date                  string   `json:"date"`
	TableNumber           int      `json:"table_number"`
	GroupSize             int      `json:"group_size"`
	TotalCost             float64  `json:"total_cost"`
	SpecialAccommodations []string `json:"special_accommodations"`
	Dishes                []Dish   `json:"dishes"`
}

// Dish is one ordered item with its dietary exceptions.
type Dish struct {
	Name              string   `json:"name"`
	Price             float64  `json:"price"`
	DietaryExceptions []string `json:"dietary_exceptions"`
}

// Metadata describes the provenance of a parties document.
type Metadata struct {
	GeneratedAt  string  `json:"generated_at"`
	TotalParties int     `json:"total_parties"`
	TotalRevenue float64 `json:"total_revenue"`
	SourceFile   string  `json:"source_file"`
}

// Document is the parties artifact written alongside the enriched document.
type Document struct {
	Parties  []Party  `json:"parties"`
	Metadata Metadata `json:"metadata"`
}
