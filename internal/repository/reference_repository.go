package repository

import (
	"context"
	"fmt"

	"quiz-seed/internal/domain"
	"quiz-seed/internal/util"
)

const upsertLevelQuery = `MERGE INTO levels l
USING (SELECT :1 AS id, :2 AS level_key, :3 AS name_uk, :4 AS name_en, :5 AS is_active, :6 AS order_index FROM dual) s
ON (l.level_key = s.level_key)
WHEN MATCHED THEN UPDATE SET
	l.id = s.id,
	l.name_uk = s.name_uk,
	l.name_en = s.name_en,
	l.is_active = s.is_active,
	l.order_index = s.order_index,
	l.updated_at = SYSTIMESTAMP
WHEN NOT MATCHED THEN INSERT (id, level_key, name_uk, name_en, is_active, order_index)
	VALUES (s.id, s.level_key, s.name_uk, s.name_en, s.is_active, s.order_index)`

// The insert-only MERGE statements below never update an existing row.

const insertSubjectQuery = `MERGE INTO subjects t
USING (SELECT :1 AS id, :2 AS name_uk, :3 AS name_en, :4 AS description_uk, :5 AS description_en, :6 AS is_active FROM dual) s
ON (t.id = s.id)
WHEN NOT MATCHED THEN INSERT (id, name_uk, name_en, description_uk, description_en, is_active)
	VALUES (s.id, s.name_uk, s.name_en, s.description_uk, s.description_en, s.is_active)`

const insertBookQuery = `MERGE INTO books t
USING (SELECT :1 AS id, :2 AS title_uk, :3 AS title_en, :4 AS description_uk, :5 AS description_en, :6 AS is_active FROM dual) s
ON (t.id = s.id)
WHEN NOT MATCHED THEN INSERT (id, title_uk, title_en, description_uk, description_en, is_active)
	VALUES (s.id, s.title_uk, s.title_en, s.description_uk, s.description_en, s.is_active)`

const insertBookSubjectQuery = `MERGE INTO book_subjects t
USING (SELECT :1 AS book_id, :2 AS subject_id FROM dual) s
ON (t.book_id = s.book_id AND t.subject_id = s.subject_id)
WHEN NOT MATCHED THEN INSERT (book_id, subject_id)
	VALUES (s.book_id, s.subject_id)`

// ReferenceDatabaseAdapter implements domain.ReferenceRepository on Oracle.
type ReferenceDatabaseAdapter struct {
	db DBTX
}

// NewReferenceDatabaseAdapter creates a new instance of ReferenceDatabaseAdapter
func NewReferenceDatabaseAdapter(db DBTX) domain.ReferenceRepository {
	return &ReferenceDatabaseAdapter{db: db}
}

// UpsertLevel inserts the level or overwrites the row with the same key.
func (r *ReferenceDatabaseAdapter) UpsertLevel(ctx context.Context, level *domain.Level) error {
	if level == nil {
		return fmt.Errorf("cannot upsert nil level")
	}
	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, upsertLevelQuery,
		level.ID,
		string(level.Key),
		level.NameUk,
		level.NameEn,
		boolToNumber(level.IsActive),
		level.OrderIndex,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert level %s: %w", level.Key, err)
	}
	return nil
}

// CreateSubjects inserts subjects, skipping IDs that already exist.
// It returns the number of rows actually inserted.
func (r *ReferenceDatabaseAdapter) CreateSubjects(ctx context.Context, subjects []domain.Subject) (int64, error) {
	var inserted int64
	for _, s := range subjects {
		n, err := r.exec(ctx, insertSubjectQuery,
			s.ID, s.NameUk, s.NameEn,
			util.StringToNullString(s.DescriptionUk), util.StringToNullString(s.DescriptionEn),
			boolToNumber(s.IsActive))
		if err != nil {
			return inserted, fmt.Errorf("failed to insert subject %s: %w", s.ID, err)
		}
		inserted += n
	}
	return inserted, nil
}

// CreateBooks inserts books, skipping IDs that already exist.
func (r *ReferenceDatabaseAdapter) CreateBooks(ctx context.Context, books []domain.Book) (int64, error) {
	var inserted int64
	for _, b := range books {
		n, err := r.exec(ctx, insertBookQuery,
			b.ID, b.TitleUk, b.TitleEn,
			util.StringToNullString(b.DescriptionUk), util.StringToNullString(b.DescriptionEn),
			boolToNumber(b.IsActive))
		if err != nil {
			return inserted, fmt.Errorf("failed to insert book %s: %w", b.ID, err)
		}
		inserted += n
	}
	return inserted, nil
}

// CreateBookSubjects inserts links, skipping pairs that already exist.
func (r *ReferenceDatabaseAdapter) CreateBookSubjects(ctx context.Context, links []domain.BookSubject) (int64, error) {
	var inserted int64
	for _, l := range links {
		n, err := r.exec(ctx, insertBookSubjectQuery, l.BookID, l.SubjectID)
		if err != nil {
			return inserted, fmt.Errorf("failed to link book %s to subject %s: %w", l.BookID, l.SubjectID, err)
		}
		inserted += n
	}
	return inserted, nil
}

func (r *ReferenceDatabaseAdapter) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Not every driver reports affected rows for MERGE.
		return 0, nil
	}
	return n, nil
}
