package models

// Post for the posts table (positions the drive is hiring for).
type Post struct {
	ID          int
	Name        string
	Description string
}

// District for the districts table.
type District struct {
	ID   int
	Name string
}
