package counter

import "time"

// Counts is what the header badges show for one session.
type Counts struct {
	Cart      int       `json:"cart"`
	Wishlist  int       `json:"wishlist"`
	UpdatedAt time.Time `json:"updatedAt"`
}
