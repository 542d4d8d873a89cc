package balldontlie

type playersResponse struct {
	Data []playerResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

type playerResponse struct {
	ID           int          `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Position     string       `json:"position"`
	HeightFeet   *int         `json:"height_feet"`
	HeightInches *int         `json:"height_inches"`
	WeightPounds *int         `json:"weight_pounds"`
	Team         teamResponse `json:"team"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type metaResponse struct {
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
	NextPage    *int `json:"next_page"`
	PerPage     int  `json:"per_page"`
	TotalCount  int  `json:"total_count"`
}

// envelope matches detail responses that arrive wrapped as {"data": {...}}.
type envelope[T any] struct {
	Data *T `json:"data"`
}
