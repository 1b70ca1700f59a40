package category

// Category is one catalog category row.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
