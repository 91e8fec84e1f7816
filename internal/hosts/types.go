package hosts

// SearchRequest represents the autocomplete query from the frontend.
type SearchRequest struct {
	Search string `form:"search" binding:"required,min=1,max=50"`
}

// Suggestion is a host match returned to the autocomplete dropdown.
type Suggestion struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
