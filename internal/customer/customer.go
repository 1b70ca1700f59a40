package customer

// Customer mirrors the legacy customer records: PascalCase JSON keys and a
// client-chosen UserId rather than a store-generated identifier. Password is
// only ever serialized on the way in; responses are sanitized.
type Customer struct {
	UserID    string `json:"UserId"`
	Password  string `json:"Password,omitempty"`
	FirstName string `json:"FirstName,omitempty"`
	LastName  string `json:"LastName,omitempty"`
	Email     string `json:"Email,omitempty"`
	Phone     string `json:"Phone,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
