package cart

// Line is one cart entry for a (user, product) pair. At most one line exists
// per pair; re-adding the same product merges by summing quantities. No
// product validation happens here: the cart is optimistic, checkout is
// authoritative.
type Line struct {
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	AddedAt   string `json:"addedAt"`
}
