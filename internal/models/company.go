package models

// Company is the row shape of the companies table.
type Company struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Timestamps
}
