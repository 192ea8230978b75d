package model

type Customer struct {
	ID        int      `json:"id"`
	Code      string   `json:"code"`
	Title     string   `json:"title"`
	Type      string   `json:"type"`
	Category  string   `json:"category"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	Locked    bool     `json:"locked"`
	Deleted   bool     `json:"deleted"`
	SellerID  int      `json:"sellerId"`
	SalesLine string   `json:"salesLine"`
	People    []Person `json:"people,omitempty"`
}

const (
	CustomerTypePersonal  = "PERSONAL"
	CustomerTypeCorporate = "CORPORATE"
)

const (
	CustomerCategoryRestaurant  = "RESTAURANT"
	CustomerCategorySupermarket = "SUPERMARKET"
	CustomerCategoryHotel       = "HOTEL"
	CustomerCategoryKebab       = "KEBAB"
	CustomerCategoryCatering    = "CATERING"
	CustomerCategoryOther       = "OTHER"
)

// Person is a contact attached to a customer.
type Person struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
}
