package model

// Book is a catalog book as stored
type Book struct {
	ID              int64  `json:"id"`
	AuthorID        int64  `json:"author_id"`
	Name            string `json:"name"`
	Genre           string `json:"genre"`
	Publisher       string `json:"publisher"`
	PublicationDate string `json:"publication_date"`
}

// AuthorSummary is the owning author embedded in book reads
type AuthorSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// BookWithAuthor is one entry of GET /livros
type BookWithAuthor struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Genre           string        `json:"genre"`
	Publisher       string        `json:"publisher"`
	PublicationDate string        `json:"publication_date"`
	Author          AuthorSummary `json:"author"`
}

// BookDetail is the body of GET /livros/:id
type BookDetail struct {
	Book   Book          `json:"book"`
	Author AuthorSummary `json:"author"`
}
