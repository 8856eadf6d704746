package service

import (
	"context"
	"fmt"
	"strconv"

	"quiz-seed/internal/domain"
	"quiz-seed/internal/util"
)

// TopicID derives the stable ID of a topic inside a book.
func TopicID(bookID, topicName string) string {
	return util.GenerateID("topic-" + bookID + "-" + topicName)
}

// QuestionID derives the stable ID of a question from its English text.
func QuestionID(topicID, textEn string) string {
	return util.GenerateID("question-" + topicID + "-" + textEn)
}

// AnswerID derives the stable ID of the answer at index.
func AnswerID(questionID string, index int) string {
	return util.GenerateID("answer-" + questionID + "-" + strconv.Itoa(index))
}

// SeedQuestionsParams carries everything SeedQuestions writes for one topic.
type SeedQuestionsParams struct {
	Repo      domain.QuestionRepository
	Tx        domain.TransactionManager // optional; writes run directly when nil
	Questions []domain.Question
	LevelIDs  domain.LevelIDs
	BookID    string
	TopicName string
	Title     domain.Localized
}

// TopicResult summarizes one persisted topic.
type TopicResult struct {
	Name      string
	TopicID   string
	Questions int
	Answers   int
	Pruned    int64 // answers removed
	// PrunedQuestions counts questions removed because the topic no longer
	// contains them.
	PrunedQuestions int64
}

// SeedQuestions upserts the topic header, then every question in order and
// its answers. Answers left over from a longer previous version are dropped,
// and so are questions the topic no longer contains (reworded or removed).
// Level keys are resolved before anything is written, so an unknown level
// leaves the store untouched.
func SeedQuestions(ctx context.Context, p SeedQuestionsParams) (TopicResult, error) {
	if p.Repo == nil {
		return TopicResult{}, domain.NewInvalidInputError("question repository is required")
	}
	if p.BookID == "" || p.TopicName == "" {
		return TopicResult{}, domain.NewInvalidInputError("book ID and topic name are required")
	}

	topicID := TopicID(p.BookID, p.TopicName)
	result := TopicResult{Name: p.TopicName, TopicID: topicID}

	levelIDs := make([]string, len(p.Questions))
	for i, q := range p.Questions {
		id, err := p.LevelIDs.Resolve(q.Level)
		if err != nil {
			return result, fmt.Errorf("question %d of topic %q: %w", i, p.TopicName, err)
		}
		levelIDs[i] = id
	}

	write := func(ctx context.Context) error {
		err := p.Repo.UpsertTopic(ctx, &domain.TopicRecord{
			ID:      topicID,
			BookID:  p.BookID,
			Name:    p.TopicName,
			TitleUk: p.Title.Uk,
			TitleEn: p.Title.En,
		})
		if err != nil {
			return err
		}

		questionIDs := make([]string, 0, len(p.Questions))
		for i, q := range p.Questions {
			questionID := QuestionID(topicID, q.Text.En)
			questionIDs = append(questionIDs, questionID)
			err := p.Repo.UpsertQuestion(ctx, &domain.QuestionRecord{
				ID:         questionID,
				TopicID:    topicID,
				LevelID:    levelIDs[i],
				TextUk:     q.Text.Uk,
				TextEn:     q.Text.En,
				TheoryUk:   q.Theory.Uk,
				TheoryEn:   q.Theory.En,
				OrderIndex: i,
			})
			if err != nil {
				return err
			}

			for j, a := range q.Answers {
				err := p.Repo.UpsertAnswer(ctx, &domain.AnswerRecord{
					ID:         AnswerID(questionID, j),
					QuestionID: questionID,
					TextUk:     a.Text.Uk,
					TextEn:     a.Text.En,
					TheoryUk:   a.Theory.Uk,
					TheoryEn:   a.Theory.En,
					IsCorrect:  a.IsCorrect,
					OrderIndex: j,
				})
				if err != nil {
					return err
				}
			}

			pruned, err := p.Repo.PruneAnswers(ctx, questionID, len(q.Answers))
			if err != nil {
				return err
			}
			result.Pruned += pruned
			result.Answers += len(q.Answers)
			result.Questions++
		}

		pruned, err := p.Repo.PruneQuestions(ctx, topicID, questionIDs)
		if err != nil {
			return err
		}
		result.PrunedQuestions = pruned
		return nil
	}

	var err error
	if p.Tx != nil {
		err = p.Tx.WithTransaction(ctx, write)
	} else {
		err = write(ctx)
	}
	if err != nil {
		return TopicResult{Name: p.TopicName, TopicID: topicID}, err
	}
	return result, nil
}
