package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"quiz-seed/internal/domain"
)

const upsertTopicQuery = `MERGE INTO topics t
USING (SELECT :1 AS id, :2 AS book_id, :3 AS name, :4 AS title_uk, :5 AS title_en FROM dual) s
ON (t.id = s.id)
WHEN MATCHED THEN UPDATE SET
	t.book_id = s.book_id,
	t.name = s.name,
	t.title_uk = s.title_uk,
	t.title_en = s.title_en,
	t.updated_at = SYSTIMESTAMP
WHEN NOT MATCHED THEN INSERT (id, book_id, name, title_uk, title_en)
	VALUES (s.id, s.book_id, s.name, s.title_uk, s.title_en)`

// Question and answer texts are CLOBs, which cannot go through SELECT ... FROM
// dual, so they are upserted as UPDATE followed by INSERT when nothing matched.

const updateQuestionQuery = `UPDATE questions SET
	topic_id = :1,
	level_id = :2,
	text_uk = :3,
	text_en = :4,
	theory_uk = :5,
	theory_en = :6,
	order_index = :7,
	updated_at = SYSTIMESTAMP
WHERE id = :8`

const insertQuestionQuery = `INSERT INTO questions (
	id, topic_id, level_id, text_uk, text_en, theory_uk, theory_en, order_index
) VALUES (
	:1, :2, :3, :4, :5, :6, :7, :8
)`

const updateAnswerQuery = `UPDATE answers SET
	question_id = :1,
	text_uk = :2,
	text_en = :3,
	theory_uk = :4,
	theory_en = :5,
	is_correct = :6,
	order_index = :7,
	updated_at = SYSTIMESTAMP
WHERE id = :8`

const insertAnswerQuery = `INSERT INTO answers (
	id, question_id, text_uk, text_en, theory_uk, theory_en, is_correct, order_index
) VALUES (
	:1, :2, :3, :4, :5, :6, :7, :8
)`

const pruneAnswersQuery = `DELETE FROM answers WHERE question_id = :1 AND order_index >= :2`

const pruneQuestionsQuery = `DELETE FROM questions WHERE topic_id = :1`

// Oracle rejects IN lists longer than this.
const maxInListSize = 1000

// buildPruneQuestionsQuery appends a NOT IN list with keep placeholders,
// numbered after the topic ID.
func buildPruneQuestionsQuery(keep int) string {
	if keep == 0 {
		return pruneQuestionsQuery
	}
	placeholders := make([]string, keep)
	for i := range placeholders {
		placeholders[i] = ":" + strconv.Itoa(i+2)
	}
	return pruneQuestionsQuery + " AND id NOT IN (" + strings.Join(placeholders, ", ") + ")"
}

// QuestionDatabaseAdapter implements domain.QuestionRepository on Oracle.
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// UpsertTopic implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) UpsertTopic(ctx context.Context, topic *domain.TopicRecord) error {
	if topic == nil {
		return fmt.Errorf("cannot upsert nil topic")
	}
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, upsertTopicQuery,
		topic.ID, topic.BookID, topic.Name, topic.TitleUk, topic.TitleEn)
	if err != nil {
		return fmt.Errorf("failed to upsert topic %s: %w", topic.Name, err)
	}
	return nil
}

// UpsertQuestion implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) UpsertQuestion(ctx context.Context, q *domain.QuestionRecord) error {
	if q == nil {
		return fmt.Errorf("cannot upsert nil question")
	}
	exec := GetExecutor(ctx, a.db)

	res, err := exec.ExecContext(ctx, updateQuestionQuery,
		q.TopicID, q.LevelID, q.TextUk, q.TextEn, q.TheoryUk, q.TheoryEn, q.OrderIndex, q.ID)
	if err != nil {
		return fmt.Errorf("failed to update question %s: %w", q.ID, err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result of question %s: %w", q.ID, err)
	}
	if updated > 0 {
		return nil
	}

	_, err = exec.ExecContext(ctx, insertQuestionQuery,
		q.ID, q.TopicID, q.LevelID, q.TextUk, q.TextEn, q.TheoryUk, q.TheoryEn, q.OrderIndex)
	if err != nil {
		return fmt.Errorf("failed to insert question %s: %w", q.ID, err)
	}
	return nil
}

// UpsertAnswer implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) UpsertAnswer(ctx context.Context, ans *domain.AnswerRecord) error {
	if ans == nil {
		return fmt.Errorf("cannot upsert nil answer")
	}
	exec := GetExecutor(ctx, a.db)

	res, err := exec.ExecContext(ctx, updateAnswerQuery,
		ans.QuestionID, ans.TextUk, ans.TextEn, ans.TheoryUk, ans.TheoryEn, boolToNumber(ans.IsCorrect), ans.OrderIndex, ans.ID)
	if err != nil {
		return fmt.Errorf("failed to update answer %s: %w", ans.ID, err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result of answer %s: %w", ans.ID, err)
	}
	if updated > 0 {
		return nil
	}

	_, err = exec.ExecContext(ctx, insertAnswerQuery,
		ans.ID, ans.QuestionID, ans.TextUk, ans.TextEn, ans.TheoryUk, ans.TheoryEn, boolToNumber(ans.IsCorrect), ans.OrderIndex)
	if err != nil {
		return fmt.Errorf("failed to insert answer %s: %w", ans.ID, err)
	}
	return nil
}

// PruneAnswers implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) PruneAnswers(ctx context.Context, questionID string, keep int) (int64, error) {
	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, pruneAnswersQuery, questionID, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune answers of question %s: %w", questionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// PruneQuestions implements domain.QuestionRepository. Answers of the deleted
// questions go with them through ON DELETE CASCADE.
func (a *QuestionDatabaseAdapter) PruneQuestions(ctx context.Context, topicID string, keepIDs []string) (int64, error) {
	if len(keepIDs) > maxInListSize {
		return 0, fmt.Errorf("cannot prune questions of topic %s: %d kept IDs exceed %d", topicID, len(keepIDs), maxInListSize)
	}
	args := make([]any, 0, len(keepIDs)+1)
	args = append(args, topicID)
	for _, id := range keepIDs {
		args = append(args, id)
	}

	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, buildPruneQuestionsQuery(len(keepIDs)), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to prune questions of topic %s: %w", topicID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}
