package service

import (
	"context"
	"sync"

	"quiz-seed/internal/domain"
)

// memStore is an in-memory stand-in for the Oracle schema with the same
// conflict rules: levels upsert by key, subjects/books/links insert-only,
// topics/questions/answers upsert by ID.
type memStore struct {
	mu           sync.Mutex
	levels       map[domain.LevelKey]domain.Level
	subjects     map[string]domain.Subject
	books        map[string]domain.Book
	bookSubjects map[domain.BookSubject]bool
	topics       map[string]domain.TopicRecord
	questions    map[string]domain.QuestionRecord
	answers      map[string]domain.AnswerRecord
	ops          []string
	txCount      int
}

func newMemStore() *memStore {
	return &memStore{
		levels:       map[domain.LevelKey]domain.Level{},
		subjects:     map[string]domain.Subject{},
		books:        map[string]domain.Book{},
		bookSubjects: map[domain.BookSubject]bool{},
		topics:       map[string]domain.TopicRecord{},
		questions:    map[string]domain.QuestionRecord{},
		answers:      map[string]domain.AnswerRecord{},
	}
}

func (s *memStore) UpsertLevel(_ context.Context, level *domain.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels[level.Key] = *level
	s.ops = append(s.ops, "level:"+string(level.Key))
	return nil
}

func (s *memStore) CreateSubjects(_ context.Context, subjects []domain.Subject) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, sub := range subjects {
		s.ops = append(s.ops, "subject")
		if _, ok := s.subjects[sub.ID]; ok {
			continue
		}
		s.subjects[sub.ID] = sub
		n++
	}
	return n, nil
}

func (s *memStore) CreateBooks(_ context.Context, books []domain.Book) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, b := range books {
		s.ops = append(s.ops, "book")
		if _, ok := s.books[b.ID]; ok {
			continue
		}
		s.books[b.ID] = b
		n++
	}
	return n, nil
}

func (s *memStore) CreateBookSubjects(_ context.Context, links []domain.BookSubject) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, l := range links {
		s.ops = append(s.ops, "book_subject")
		if s.bookSubjects[l] {
			continue
		}
		s.bookSubjects[l] = true
		n++
	}
	return n, nil
}

func (s *memStore) UpsertTopic(_ context.Context, topic *domain.TopicRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics[topic.ID] = *topic
	s.ops = append(s.ops, "topic:"+topic.Name)
	return nil
}

func (s *memStore) UpsertQuestion(_ context.Context, q *domain.QuestionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[q.ID] = *q
	return nil
}

func (s *memStore) UpsertAnswer(_ context.Context, a *domain.AnswerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[a.ID] = *a
	return nil
}

func (s *memStore) PruneAnswers(_ context.Context, questionID string, keep int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, a := range s.answers {
		if a.QuestionID == questionID && a.OrderIndex >= keep {
			delete(s.answers, id)
			n++
		}
	}
	return n, nil
}

func (s *memStore) PruneQuestions(_ context.Context, topicID string, keepIDs []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keep := make(map[string]bool, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = true
	}
	var n int64
	for id, q := range s.questions {
		if q.TopicID != topicID || keep[id] {
			continue
		}
		delete(s.questions, id)
		n++
		for aid, a := range s.answers {
			if a.QuestionID == id {
				delete(s.answers, aid)
			}
		}
	}
	return n, nil
}

func (s *memStore) questionsOf(topicID string) []domain.QuestionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.QuestionRecord
	for _, q := range s.questions {
		if q.TopicID == topicID {
			out = append(out, q)
		}
	}
	return out
}

func (s *memStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	s.txCount++
	s.mu.Unlock()
	return fn(ctx)
}

func (s *memStore) answersOf(questionID string) []domain.AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AnswerRecord
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out
}

func (s *memStore) resetOps() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = nil
}
