package content

import (
	"quiz-seed/internal/domain"
	"quiz-seed/internal/util"
)

const (
	subjectKey = "subject-frontend"
	bookKey    = "book-javascript-core"
)

// Catalog is everything one seed run writes.
type Catalog struct {
	Levels  []domain.Level
	Subject domain.Subject
	Book    domain.Book
	Topics  []domain.Topic
}

// Levels returns the three difficulty tiers with derived IDs.
func Levels() []domain.Level {
	names := map[domain.LevelKey][2]string{
		domain.LevelJunior: {"Джуніор", "Junior"},
		domain.LevelMiddle: {"Мідл", "Middle"},
		domain.LevelSenior: {"Сеньйор", "Senior"},
	}
	levels := make([]domain.Level, len(domain.LevelKeys))
	for i, key := range domain.LevelKeys {
		levels[i] = domain.Level{
			ID:         util.GenerateID(key.SemanticKey()),
			Key:        key,
			NameUk:     names[key][0],
			NameEn:     names[key][1],
			IsActive:   true,
			OrderIndex: i + 1,
		}
	}
	return levels
}

// Subject returns the Frontend subject.
func Subject() domain.Subject {
	return domain.Subject{
		ID:            util.GenerateID(subjectKey),
		NameUk:        "Фронтенд",
		NameEn:        "Frontend",
		DescriptionUk: "Питання для фронтенд-розробників: JavaScript, браузер, інструменти.",
		DescriptionEn: "Questions for frontend developers: JavaScript, the browser, tooling.",
		IsActive:      true,
	}
}

// Book returns the JavaScript core book that owns the shipped topics.
func Book() domain.Book {
	return domain.Book{
		ID:            util.GenerateID(bookKey),
		TitleUk:       "JavaScript: типи та перетворення",
		TitleEn:       "JavaScript: Types and Coercion",
		DescriptionUk: "Примітиви, обгортки, неявне приведення типів і Symbol.",
		DescriptionEn: "Primitives, wrapper objects, implicit coercion and Symbol.",
		IsActive:      true,
	}
}

// DefaultCatalog assembles the reference rows and the embedded topics.
func DefaultCatalog() (*Catalog, error) {
	topics, err := LoadTopics()
	if err != nil {
		return nil, err
	}
	return &Catalog{
		Levels:  Levels(),
		Subject: Subject(),
		Book:    Book(),
		Topics:  topics,
	}, nil
}
