package model

// Category groups products for navigation.
type Category struct {
	ID   int64
	Name string
	Slug string
}
