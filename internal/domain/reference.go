package domain

// Subject groups books, e.g. "Frontend". Inserted with duplicate skipping,
// so later edits to the literal do not reach an existing row.
type Subject struct {
	ID            string
	NameUk        string
	NameEn        string
	DescriptionUk string
	DescriptionEn string
	IsActive      bool
}

// Book owns topics. Same insert lifecycle as Subject.
type Book struct {
	ID            string
	TitleUk       string
	TitleEn       string
	DescriptionUk string
	DescriptionEn string
	IsActive      bool
}

// BookSubject links a book to a subject.
type BookSubject struct {
	BookID    string
	SubjectID string
}
