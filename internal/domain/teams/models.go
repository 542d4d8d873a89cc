package teams

// Team represents the normalized team shape (balldontlie-aligned).
// Kept in its own package so players and detail views can embed it without import cycles.
// Empty string fields mean the upstream did not report a value.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}

// IsZero reports whether the team was absent from the upstream payload.
func (t Team) IsZero() bool {
	return t == Team{}
}
