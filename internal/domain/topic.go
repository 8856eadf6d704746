package domain

import "golang.org/x/text/language"

var ukrainianBase, _ = language.Ukrainian.Base()

// Localized holds the Ukrainian and English variants of a text.
type Localized struct {
	Uk string `json:"uk" validate:"required"`
	En string `json:"en" validate:"required"`
}

// Pick returns the variant for tag. Anything that is not Ukrainian gets English.
func (l Localized) Pick(tag language.Tag) string {
	if base, _ := tag.Base(); base == ukrainianBase && l.Uk != "" {
		return l.Uk
	}
	return l.En
}

// Topic is one quiz collection, e.g. "Symbol".
type Topic struct {
	Name      string     `validate:"required"`
	Title     Localized
	Questions []Question `validate:"required,min=1,dive"`
}

// Question is a single multiple-choice prompt. Level is resolved to a
// persisted level ID at seed time.
type Question struct {
	Text    Localized
	Theory  Localized
	Level   LevelKey `validate:"required,oneof=junior middle senior"`
	Answers []Answer `validate:"required,min=1,dive"`
}

// Answer is one selectable option. Display order is slice order.
type Answer struct {
	Text      Localized
	Theory    Localized
	IsCorrect bool
}

// HasCorrectAnswer reports whether at least one answer is marked correct.
func (q Question) HasCorrectAnswer() bool {
	for _, a := range q.Answers {
		if a.IsCorrect {
			return true
		}
	}
	return false
}

// AnswerCount returns the total number of answers across all questions.
func (t Topic) AnswerCount() int {
	n := 0
	for _, q := range t.Questions {
		n += len(q.Answers)
	}
	return n
}
