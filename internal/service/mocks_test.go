package service

import (
	"context"

	"quiz-seed/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) UpsertLevel(ctx context.Context, level *domain.Level) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockReferenceRepository) CreateSubjects(ctx context.Context, subjects []domain.Subject) (int64, error) {
	args := m.Called(ctx, subjects)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReferenceRepository) CreateBooks(ctx context.Context, books []domain.Book) (int64, error) {
	args := m.Called(ctx, books)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReferenceRepository) CreateBookSubjects(ctx context.Context, links []domain.BookSubject) (int64, error) {
	args := m.Called(ctx, links)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) UpsertTopic(ctx context.Context, topic *domain.TopicRecord) error {
	args := m.Called(ctx, topic)
	return args.Error(0)
}

func (m *MockQuestionRepository) UpsertQuestion(ctx context.Context, question *domain.QuestionRecord) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) UpsertAnswer(ctx context.Context, answer *domain.AnswerRecord) error {
	args := m.Called(ctx, answer)
	return args.Error(0)
}

func (m *MockQuestionRepository) PruneAnswers(ctx context.Context, questionID string, keep int) (int64, error) {
	args := m.Called(ctx, questionID, keep)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) PruneQuestions(ctx context.Context, topicID string, keepIDs []string) (int64, error) {
	args := m.Called(ctx, topicID, keepIDs)
	return args.Get(0).(int64), args.Error(1)
}

// --- MockTransactionManager ---
// Runs fn unless the expectation returns an error.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, mock.Anything)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- MockCacheInvalidator ---
type MockCacheInvalidator struct {
	mock.Mock
}

func (m *MockCacheInvalidator) InvalidateTopics(ctx context.Context, bookID string, topicIDs []string) error {
	args := m.Called(ctx, bookID, topicIDs)
	return args.Error(0)
}
