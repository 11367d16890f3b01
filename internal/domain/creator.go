package domain

// Creator is a roster entry transactions are attributed to.
type Creator struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Alias string `json:"alias" validate:"required"`
}
