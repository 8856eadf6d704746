package content

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"quiz-seed/internal/domain"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var namespacePath = regexp.MustCompile(`^Topic\.Questions\[(\d+)\](?:\.Answers\[(\d+)\])?\.?(.*)$`)

// Validate checks one topic collection and reports every problem at once:
// missing bilingual texts, unknown levels, empty question or answer lists,
// questions without a correct answer and duplicated English question texts.
func Validate(topic domain.Topic) error {
	var errs domain.ValidationErrors

	if err := validate.Struct(topic); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.NewInternalError("content validation failed", err)
		}
		for _, fe := range verrs {
			errs = append(errs, toFieldError(topic.Name, fe))
		}
	}

	seen := make(map[string]int, len(topic.Questions))
	for i, q := range topic.Questions {
		if len(q.Answers) > 0 && !q.HasCorrectAnswer() {
			errs = append(errs, domain.FieldError{Topic: topic.Name, Question: i, Answer: -1, Reason: "has no correct answer"})
		}
		if q.Text.En == "" {
			continue
		}
		if prev, dup := seen[q.Text.En]; dup {
			errs = append(errs, domain.FieldError{Topic: topic.Name, Question: i, Answer: -1, Field: "Text.En", Reason: fmt.Sprintf("duplicates question[%d]", prev)})
			continue
		}
		seen[q.Text.En] = i
	}

	if len(errs) > 0 {
		return domain.NewInvalidContentError(topic.Name, errs)
	}
	return nil
}

// ValidateAll validates every topic and joins the failures.
func ValidateAll(topics []domain.Topic) error {
	var all []error
	for _, t := range topics {
		if err := Validate(t); err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}

func toFieldError(topic string, fe validator.FieldError) domain.FieldError {
	out := domain.FieldError{Topic: topic, Question: -1, Answer: -1, Reason: reason(fe)}

	ns := fe.Namespace()
	if m := namespacePath.FindStringSubmatch(ns); m != nil {
		out.Question, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			out.Answer, _ = strconv.Atoi(m[2])
		}
		out.Field = m[3]
		return out
	}
	out.Field = strings.TrimPrefix(ns, "Topic.")
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
