package content

import "quiz-seed/internal/domain"

// AnswerMock is the on-disk shape of an answer.
type AnswerMock struct {
	TextUk    string `json:"textUk"`
	TextEn    string `json:"textEn"`
	TheoryUk  string `json:"theoryUk"`
	TheoryEn  string `json:"theoryEn"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuestionMock is the on-disk shape of a question.
type QuestionMock struct {
	TextUk   string       `json:"textUk"`
	TextEn   string       `json:"textEn"`
	TheoryUk string       `json:"theoryUk"`
	TheoryEn string       `json:"theoryEn"`
	Level    string       `json:"level"`
	Answers  []AnswerMock `json:"answers"`
}

// TopicMock is the on-disk shape of one topic collection.
type TopicMock struct {
	TitleUk   string         `json:"titleUk"`
	TitleEn   string         `json:"titleEn"`
	Questions []QuestionMock `json:"questions"`
}

// ToDomain converts the document into a domain.Topic named name.
func (m TopicMock) ToDomain(name string) domain.Topic {
	topic := domain.Topic{
		Name:      name,
		Title:     domain.Localized{Uk: m.TitleUk, En: m.TitleEn},
		Questions: make([]domain.Question, len(m.Questions)),
	}
	for i, q := range m.Questions {
		question := domain.Question{
			Text:    domain.Localized{Uk: q.TextUk, En: q.TextEn},
			Theory:  domain.Localized{Uk: q.TheoryUk, En: q.TheoryEn},
			Level:   domain.LevelKey(q.Level),
			Answers: make([]domain.Answer, len(q.Answers)),
		}
		for j, a := range q.Answers {
			question.Answers[j] = domain.Answer{
				Text:      domain.Localized{Uk: a.TextUk, En: a.TextEn},
				Theory:    domain.Localized{Uk: a.TheoryUk, En: a.TheoryEn},
				IsCorrect: a.IsCorrect,
			}
		}
		topic.Questions[i] = question
	}
	return topic
}
