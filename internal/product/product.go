package product

import "time"

const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusReserved  = "reserved"
)

// AllowedStatuses enumerates every valid listing status. Transitions between
// them are unrestricted.
var AllowedStatuses = []string{StatusAvailable, StatusSold, StatusReserved}

// Product is a secondhand-clothing listing owned by exactly one seller.
type Product struct {
	ID            int       `json:"product_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"original_price"`
	Size          string    `json:"size"`
	Condition     string    `json:"condition"`
	Brand         string    `json:"brand"`
	Category      string    `json:"category"`
	Gender        string    `json:"gender"`
	AgeGroup      string    `json:"age_group"`
	ImageURL      string    `json:"image_url"`
	Status        string    `json:"status"`
	SellerID      int       `json:"seller_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func ValidStatus(status string) bool {
	for _, s := range AllowedStatuses {
		if status == s {
			return true
		}
	}
	return false
}
