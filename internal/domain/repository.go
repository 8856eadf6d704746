package domain

import "context"

// ReferenceRepository persists levels, subjects, books and their links.
// Levels are upserted by natural key; the rest are inserted with duplicate
// skipping and never updated.
type ReferenceRepository interface {
	UpsertLevel(ctx context.Context, level *Level) error
	CreateSubjects(ctx context.Context, subjects []Subject) (int64, error)
	CreateBooks(ctx context.Context, books []Book) (int64, error)
	CreateBookSubjects(ctx context.Context, links []BookSubject) (int64, error)
}

// TopicRecord is the persisted form of a topic header.
type TopicRecord struct {
	ID      string
	BookID  string
	Name    string
	TitleUk string
	TitleEn string
}

// QuestionRecord is the persisted form of a question.
type QuestionRecord struct {
	ID         string
	TopicID    string
	LevelID    string
	TextUk     string
	TextEn     string
	TheoryUk   string
	TheoryEn   string
	OrderIndex int
}

// AnswerRecord is the persisted form of an answer.
type AnswerRecord struct {
	ID         string
	QuestionID string
	TextUk     string
	TextEn     string
	TheoryUk   string
	TheoryEn   string
	IsCorrect  bool
	OrderIndex int
}

// QuestionRepository persists topics with their questions and answers.
// Every write is an upsert by derived ID.
type QuestionRepository interface {
	UpsertTopic(ctx context.Context, topic *TopicRecord) error
	UpsertQuestion(ctx context.Context, question *QuestionRecord) error
	UpsertAnswer(ctx context.Context, answer *AnswerRecord) error
	// PruneAnswers removes answers of questionID whose order index is >= keep.
	PruneAnswers(ctx context.Context, questionID string, keep int) (int64, error)
	// PruneQuestions removes questions of topicID whose ID is not in keepIDs,
	// together with their answers.
	PruneQuestions(ctx context.Context, topicID string, keepIDs []string) (int64, error)
}

// TransactionManager runs fn inside a transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
