package evaluation

import (
	"errors"
	"strings"
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

const (
	MinScore = 1
	MaxScore = 5
)

var (
	ErrEvaluationIsNotConstructed = errors.New("Evaluation must be created via NewEvaluation constructor")
	ErrSelfEvaluation             = errs.NewValueIsInvalidErrorWithCause("evaluated", errors.New("users cannot evaluate themselves"))
)

// Subject is what the evaluation is about; both fields are optional.
type Subject struct {
	DeliveryID *kernel.UUID
	ServiceID  *kernel.UUID
}

// Evaluation is a score given by one user to another.
type Evaluation struct {
	id          kernel.UUID
	evaluatorID kernel.UUID
	evaluatedID kernel.UUID
	subject     Subject
	score       int
	comment     string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

func NewEvaluation(
	id, evaluatorID, evaluatedID kernel.UUID, subject Subject, score int, comment string, now time.Time,
) (*Evaluation, error) {
	var errList []error
	if score < MinScore || score > MaxScore {
		errList = append(errList, errs.NewValueIsOutOfRangeError("score", score, MinScore, MaxScore))
	}
	errList = append(errList, id.Validate(), evaluatorID.Validate(), evaluatedID.Validate())
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	if evaluatorID.IsEqual(evaluatedID) {
		return nil, ErrSelfEvaluation
	}

	return &Evaluation{
		id:          id,
		evaluatorID: evaluatorID,
		evaluatedID: evaluatedID,
		subject:     subject,
		score:       score,
		comment:     strings.TrimSpace(comment),
		createdAt:   now.UTC(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func RestoreEvaluation(
	id, evaluatorID, evaluatedID kernel.UUID, subject Subject, score int, comment string, createdAt time.Time,
) (*Evaluation, error) {
	e, err := NewEvaluation(id, evaluatorID, evaluatedID, subject, score, comment, createdAt)
	if err != nil {
		return nil, err
	}
	e.createdAt = createdAt
	return e, nil
}

func (e *Evaluation) Validate() error {
	if e == nil {
		return ErrEvaluationIsNotConstructed
	}
	return e.guard.Validate(ErrEvaluationIsNotConstructed)
}

func (e *Evaluation) ID() kernel.UUID {
	return e.id
}

func (e *Evaluation) EvaluatorID() kernel.UUID {
	return e.evaluatorID
}

func (e *Evaluation) EvaluatedID() kernel.UUID {
	return e.evaluatedID
}

func (e *Evaluation) Subject() Subject {
	return e.subject
}

func (e *Evaluation) Score() int {
	return e.score
}

func (e *Evaluation) Comment() string {
	return e.comment
}

func (e *Evaluation) CreatedAt() time.Time {
	return e.createdAt
}
