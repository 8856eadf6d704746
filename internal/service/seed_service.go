package service

import (
	"context"
	"fmt"
	"time"

	"quiz-seed/internal/content"
	"quiz-seed/internal/domain"
	"quiz-seed/internal/i18n"
	"quiz-seed/internal/util"

	"go.uber.org/zap"
)

// Seed steps, used to label failures.
const (
	StepValidate     = "validate"
	StepLevels       = "levels"
	StepSubjects     = "subjects"
	StepBooks        = "books"
	StepBookSubjects = "book_subjects"
)

// SeedOptions tunes a run. The zero value seeds everything.
type SeedOptions struct {
	DryRun bool
	Topics []string // subset of topic names; seeding order stays fixed
}

// SeedReport describes what a run wrote.
type SeedReport struct {
	RunID                string
	DryRun               bool
	Levels               int
	SubjectsInserted     int64
	BooksInserted        int64
	BookSubjectsInserted int64
	Topics               []TopicResult
	Duration             time.Duration
}

// Seeder writes a content catalog into the database, one step at a time.
type Seeder struct {
	catalog      *content.Catalog
	refRepo      domain.ReferenceRepository
	questionRepo domain.QuestionRepository
	txManager    domain.TransactionManager
	cache        domain.CacheInvalidator
	opts         SeedOptions
	logger       *zap.Logger
}

// NewSeeder creates a Seeder. txManager and cache may be nil.
func NewSeeder(
	catalog *content.Catalog,
	refRepo domain.ReferenceRepository,
	questionRepo domain.QuestionRepository,
	txManager domain.TransactionManager,
	cache domain.CacheInvalidator,
	opts SeedOptions,
	logger *zap.Logger,
) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{
		catalog:      catalog,
		refRepo:      refRepo,
		questionRepo: questionRepo,
		txManager:    txManager,
		cache:        cache,
		opts:         opts,
		logger:       logger,
	}
}

// Run seeds levels, the subject, the book, their link and then every topic in
// catalog order. Levels are upserted; subject, book and link rows are only
// inserted when missing. The first failing step aborts the run.
func (s *Seeder) Run(ctx context.Context) (SeedReport, error) {
	start := time.Now()
	report := SeedReport{RunID: util.NewULID(), DryRun: s.opts.DryRun}
	t := i18n.UseI18n(ctx)
	log := s.logger.With(zap.String("seed_run_id", report.RunID))

	topics, err := s.selectTopics()
	if err != nil {
		return report, domain.NewSeedStepError(StepValidate, err)
	}
	log.Info(t(i18n.KeySeedStart),
		zap.Bool("dry_run", s.opts.DryRun),
		zap.Int("levels", len(s.catalog.Levels)),
		zap.Int("topics", len(topics)),
	)

	if err := content.ValidateAll(topics); err != nil {
		return report, domain.NewSeedStepError(StepValidate, err)
	}
	levelIDs := make(domain.LevelIDs, len(s.catalog.Levels))
	for _, level := range s.catalog.Levels {
		levelIDs[level.Key] = level.ID
	}
	for _, topic := range topics {
		for i, q := range topic.Questions {
			if _, err := levelIDs.Resolve(q.Level); err != nil {
				return report, domain.NewSeedStepError(StepValidate, fmt.Errorf("topic %q question %d: %w", topic.Name, i, err))
			}
		}
	}
	log.Info(t(i18n.KeyContentChecked), zap.Int("topics", len(topics)))

	if s.opts.DryRun {
		for _, topic := range topics {
			report.Topics = append(report.Topics, TopicResult{
				Name:      topic.Name,
				TopicID:   TopicID(s.catalog.Book.ID, topic.Name),
				Questions: len(topic.Questions),
				Answers:   topic.AnswerCount(),
			})
		}
		report.Duration = time.Since(start)
		log.Info(t(i18n.KeyDryRun), zap.Duration("duration", report.Duration))
		return report, nil
	}

	for i := range s.catalog.Levels {
		level := s.catalog.Levels[i]
		if err := s.refRepo.UpsertLevel(ctx, &level); err != nil {
			return report, domain.NewSeedStepError(StepLevels, err)
		}
		report.Levels++
	}
	log.Info(t(i18n.KeyLevels), zap.Int("count", report.Levels))

	if report.SubjectsInserted, err = s.refRepo.CreateSubjects(ctx, []domain.Subject{s.catalog.Subject}); err != nil {
		return report, domain.NewSeedStepError(StepSubjects, err)
	}
	log.Info(t(i18n.KeySubjects), zap.Int64("inserted", report.SubjectsInserted), zap.String("subject_id", s.catalog.Subject.ID))

	if report.BooksInserted, err = s.refRepo.CreateBooks(ctx, []domain.Book{s.catalog.Book}); err != nil {
		return report, domain.NewSeedStepError(StepBooks, err)
	}
	log.Info(t(i18n.KeyBooks), zap.Int64("inserted", report.BooksInserted), zap.String("book_id", s.catalog.Book.ID))

	link := domain.BookSubject{BookID: s.catalog.Book.ID, SubjectID: s.catalog.Subject.ID}
	if report.BookSubjectsInserted, err = s.refRepo.CreateBookSubjects(ctx, []domain.BookSubject{link}); err != nil {
		return report, domain.NewSeedStepError(StepBookSubjects, err)
	}
	log.Info(t(i18n.KeyBookSubjects), zap.Int64("inserted", report.BookSubjectsInserted))

	topicIDs := make([]string, 0, len(topics))
	for _, topic := range topics {
		result, err := SeedQuestions(ctx, SeedQuestionsParams{
			Repo:      s.questionRepo,
			Tx:        s.txManager,
			Questions: topic.Questions,
			LevelIDs:  levelIDs,
			BookID:    s.catalog.Book.ID,
			TopicName: topic.Name,
			Title:     topic.Title,
		})
		if err != nil {
			return report, domain.NewSeedStepError("topic "+topic.Name, err)
		}
		report.Topics = append(report.Topics, result)
		topicIDs = append(topicIDs, result.TopicID)
		log.Info(t(i18n.KeyTopicSeeded),
			zap.String("topic", topic.Name),
			zap.String("topic_id", result.TopicID),
			zap.Int("questions", result.Questions),
			zap.Int("answers", result.Answers),
			zap.Int64("pruned_answers", result.Pruned),
			zap.Int64("pruned_questions", result.PrunedQuestions),
		)
	}

	s.invalidateCache(ctx, log, t, topicIDs)

	report.Duration = time.Since(start)
	log.Info(t(i18n.KeySeedCompleted),
		zap.Int("topics", len(report.Topics)),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// selectTopics applies the topic filter while keeping catalog order.
func (s *Seeder) selectTopics() ([]domain.Topic, error) {
	if len(s.opts.Topics) == 0 {
		return s.catalog.Topics, nil
	}

	wanted := make(map[string]bool, len(s.opts.Topics))
	for _, name := range s.opts.Topics {
		wanted[name] = false
	}
	var selected []domain.Topic
	for _, topic := range s.catalog.Topics {
		if _, ok := wanted[topic.Name]; ok {
			wanted[topic.Name] = true
			selected = append(selected, topic)
		}
	}
	for _, name := range s.opts.Topics {
		if !wanted[name] {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown topic %q", name))
		}
	}
	return selected, nil
}

// invalidateCache logs failures instead of returning them.
func (s *Seeder) invalidateCache(ctx context.Context, log *zap.Logger, t i18n.TranslateFunc, topicIDs []string) {
	if s.cache == nil || len(topicIDs) == 0 {
		return
	}
	if err := s.cache.InvalidateTopics(ctx, s.catalog.Book.ID, topicIDs); err != nil {
		log.Warn(t(i18n.KeyCacheFailed), zap.Error(err))
		return
	}
	log.Info(t(i18n.KeyCacheCleared), zap.Int("topics", len(topicIDs)))
}
