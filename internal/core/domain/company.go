package domain

// Company is the organisation tickets are raised for. The core only checks it exists.
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Timestamps
}
