package content

import (
	"errors"
	"testing"

	"quiz-seed/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTopic() domain.Topic {
	answer := func(en string, correct bool) domain.Answer {
		return domain.Answer{
			Text:      domain.Localized{Uk: en + " uk", En: en},
			Theory:    domain.Localized{Uk: "теорія", En: "theory"},
			IsCorrect: correct,
		}
	}
	return domain.Topic{
		Name:  "Symbol",
		Title: domain.Localized{Uk: "Символ", En: "Symbol"},
		Questions: []domain.Question{
			{
				Text:    domain.Localized{Uk: "Перше?", En: "First?"},
				Theory:  domain.Localized{Uk: "т", En: "t"},
				Level:   domain.LevelJunior,
				Answers: []domain.Answer{answer("a", true), answer("b", false)},
			},
			{
				Text:    domain.Localized{Uk: "Друге?", En: "Second?"},
				Theory:  domain.Localized{Uk: "т", En: "t"},
				Level:   domain.LevelSenior,
				Answers: []domain.Answer{answer("c", false), answer("d", true)},
			},
		},
	}
}

func fieldErrors(t *testing.T, err error) domain.ValidationErrors {
	t.Helper()
	require.Error(t, err)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrInvalidContent, domainErr.Code)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	return verrs
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validTopic()))
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Topic)
		want   []domain.FieldError
	}{
		{
			name:   "missing english title",
			mutate: func(tp *domain.Topic) { tp.Title.En = "" },
			want:   []domain.FieldError{{Topic: "Symbol", Question: -1, Answer: -1, Field: "Title.En", Reason: "is required"}},
		},
		{
			name:   "no questions",
			mutate: func(tp *domain.Topic) { tp.Questions = []domain.Question{} },
			want:   []domain.FieldError{{Topic: "Symbol", Question: -1, Answer: -1, Field: "Questions", Reason: "must not be empty"}},
		},
		{
			name:   "missing ukrainian question text",
			mutate: func(tp *domain.Topic) { tp.Questions[1].Text.Uk = "" },
			want:   []domain.FieldError{{Topic: "Symbol", Question: 1, Answer: -1, Field: "Text.Uk", Reason: "is required"}},
		},
		{
			name:   "unknown level",
			mutate: func(tp *domain.Topic) { tp.Questions[0].Level = "guru" },
			want: []domain.FieldError{{
				Topic: "Symbol", Question: 0, Answer: -1, Field: "Level",
				Reason: `must be one of [junior middle senior], got "guru"`,
			}},
		},
		{
			name:   "missing answer theory",
			mutate: func(tp *domain.Topic) { tp.Questions[1].Answers[0].Theory.En = "" },
			want:   []domain.FieldError{{Topic: "Symbol", Question: 1, Answer: 0, Field: "Theory.En", Reason: "is required"}},
		},
		{
			name:   "no correct answer",
			mutate: func(tp *domain.Topic) { tp.Questions[0].Answers[0].IsCorrect = false },
			want:   []domain.FieldError{{Topic: "Symbol", Question: 0, Answer: -1, Reason: "has no correct answer"}},
		},
		{
			name:   "duplicate english text",
			mutate: func(tp *domain.Topic) { tp.Questions[1].Text.En = "First?" },
			want:   []domain.FieldError{{Topic: "Symbol", Question: 1, Answer: -1, Field: "Text.En", Reason: "duplicates question[0]"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic := validTopic()
			tt.mutate(&topic)

			verrs := fieldErrors(t, Validate(topic))
			assert.Equal(t, domain.ValidationErrors(tt.want), verrs)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	topic := validTopic()
	topic.Questions[0].Text.En = ""
	topic.Questions[1].Answers = []domain.Answer{}

	verrs := fieldErrors(t, Validate(topic))
	require.Len(t, verrs, 2)
	assert.Equal(t, 0, verrs[0].Question)
	assert.Equal(t, "Text.En", verrs[0].Field)
	assert.Equal(t, 1, verrs[1].Question)
	assert.Equal(t, "Answers", verrs[1].Field)
	assert.Contains(t, verrs.Error(), "Symbol question[0] Text.En: is required; Symbol question[1] Answers: must not be empty")
}

func TestValidateAll(t *testing.T) {
	good := validTopic()
	bad := validTopic()
	bad.Name = "Boxing and Unboxing"
	bad.Questions[0].Level = ""

	assert.NoError(t, ValidateAll([]domain.Topic{good, good}))

	err := ValidateAll([]domain.Topic{good, bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `topic "Boxing and Unboxing" has invalid content`)
	assert.Contains(t, err.Error(), "question[0] Level: is required")
}
