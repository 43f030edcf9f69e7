package model

// MallProductAvailable is the only status exposed to students.
const MallProductAvailable = "available"

// MallProduct is a rewards mall item loaded from mall-products.json.
// Exchange is not implemented server-side; stock never changes here.
type MallProduct struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Status      string `json:"status"`
}
