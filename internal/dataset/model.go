package dataset

// Document is the top-level dataset shape shared by the raw and enriched
// documents.
type Document struct {
	Diners []Diner `json:"diners"`
}

// Diner aggregates one customer's reviews, emails, and reservations. Names
// are display keys and are not guaranteed unique.
type Diner struct {
	Name         string        `json:"name"`
	Reviews      []Review      `json:"reviews"`
	Reservations []Reservation `json:"reservations"`
	Emails       []Email       `json:"emails"`
}

// Review is immutable input evidence from a prior restaurant visit.
type Review struct {
	RestaurantName string  `json:"restaurant_name"`
	Date           string  `json:"date"`
	Rating         float64 `json:"rating"`
	Content        string  `json:"content"`
}

// Email is an immutable correspondence thread with the restaurant.
type Email struct {
	Date           string `json:"date"`
	Subject        string `json:"subject"`
	CombinedThread string `json:"combined_thread"`
}

// Reservation is one visit. Notes is absent in the raw dataset and attached
// by the insight stage.
type Reservation struct {
	Date           string  `json:"date"`
	NumberOfPeople int     `json:"number_of_people"`
	Orders         []Order `json:"orders"`
	Notes          *Notes  `json:"notes,omitempty"`
}

// Order is a single dish on a reservation.
type Order struct {
	Item        string   `json:"item"`
	Price       float64  `json:"price"`
	DietaryTags []string `json:"dietary_tags"`
}

// Notes carries the generated enrichment attached to a reservation.
type Notes struct {
	CustomerInsights CustomerInsights `json:"customer_insights"`
	GeneratedAt      string           `json:"generated_at"`
	Summary          string           `json:"summary"`
}
