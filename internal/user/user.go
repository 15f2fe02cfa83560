package user

// User is a marketplace account created through the Google sign-in exchange.
// SellerRating is a stored aggregate recomputed whenever the user receives a
// new rating; it stays nil until the first rating lands.
type User struct {
	ID             int      `json:"user_id"`
	GoogleID       string   `json:"google_id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	ProfilePicture string   `json:"profile_picture"`
	SellerRating   *float64 `json:"seller_rating"`
}
