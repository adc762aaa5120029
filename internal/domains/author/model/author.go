package model

// Author is a catalog author
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// BookSummary is a book nested under its author
type BookSummary struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Genre           string `json:"genre"`
	Publisher       string `json:"publisher"`
	PublicationDate string `json:"publication_date"`
}

// AuthorWithBooks is the detail view: the author fields plus every book it owns
type AuthorWithBooks struct {
	Author
	Books []BookSummary `json:"books"`
}
