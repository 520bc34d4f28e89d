package commands

import (
	"errors"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/evaluation"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/pkg/guard"
)

var ErrSubmitEvaluationCommandIsNotConstructed = errors.New(
	"SubmitEvaluationCommand must be created via NewSubmitEvaluationCommand constructor",
)

type SubmitEvaluationCommand struct {
	evaluationID kernel.UUID
	evaluatorID  kernel.UUID
	evaluatedID  kernel.UUID
	subject      evaluation.Subject
	score        int
	comment      string

	guard guard.ConstructorGuard
}

func NewSubmitEvaluationCommand(
	evaluationID, evaluatorID, evaluatedID kernel.UUID, subject evaluation.Subject, score int, comment string,
) (SubmitEvaluationCommand, error) {
	if err := errors.Join(evaluationID.Validate(), evaluatorID.Validate(), evaluatedID.Validate()); err != nil {
		return SubmitEvaluationCommand{}, err
	}

	return SubmitEvaluationCommand{
		evaluationID: evaluationID,
		evaluatorID:  evaluatorID,
		evaluatedID:  evaluatedID,
		subject:      subject,
		score:        score,
		comment:      comment,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitEvaluationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitEvaluationCommandIsNotConstructed)
}

func (c SubmitEvaluationCommand) EvaluationID() kernel.UUID {
	return c.evaluationID
}

func (c SubmitEvaluationCommand) EvaluatorID() kernel.UUID {
	return c.evaluatorID
}

func (c SubmitEvaluationCommand) EvaluatedID() kernel.UUID {
	return c.evaluatedID
}

func (c SubmitEvaluationCommand) Subject() evaluation.Subject {
	return c.subject
}

func (c SubmitEvaluationCommand) Score() int {
	return c.score
}

func (c SubmitEvaluationCommand) Comment() string {
	return c.comment
}
