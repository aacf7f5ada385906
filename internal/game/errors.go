package game

import "fmt"

// ErrorKind is the closed set of error kinds an ActionResult may carry.
// Non-fatal kinds leave state unchanged; InvariantViolation is fatal and
// signals corrupt engine state.
type ErrorKind int

const (
	ErrIllegalTiming ErrorKind = iota
	ErrNotYourPriority
	ErrCannotPayCost
	ErrInvalidTarget
	ErrPendingDecisionPreempts
	ErrUnknownObject
	ErrGameOver
	ErrInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrIllegalTiming:
		return "IllegalTimingError"
	case ErrNotYourPriority:
		return "NotYourPriorityError"
	case ErrCannotPayCost:
		return "CannotPayCostError"
	case ErrInvalidTarget:
		return "InvalidTargetError"
	case ErrPendingDecisionPreempts:
		return "PendingDecisionPreemptsError"
	case ErrUnknownObject:
		return "UnknownObjectError"
	case ErrGameOver:
		return "GameOverError"
	case ErrInvariantViolation:
		return "InvariantViolation"
	default:
		return "UnknownError"
	}
}

// GameError is the structured error value returned on ActionResult.
// Surfaces render Kind plus Message; submitting an action that fails
// leaves state unchanged.
type GameError struct {
	Kind    ErrorKind
	Message string
}

func (e *GameError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newErr(kind ErrorKind, format string, args ...interface{}) *GameError {
	return &GameError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func errIllegalTiming(format string, args ...interface{}) *GameError {
	return newErr(ErrIllegalTiming, format, args...)
}

func errNotYourPriority(format string, args ...interface{}) *GameError {
	return newErr(ErrNotYourPriority, format, args...)
}

func errCannotPayCost(format string, args ...interface{}) *GameError {
	return newErr(ErrCannotPayCost, format, args...)
}

func errInvalidTarget(format string, args ...interface{}) *GameError {
	return newErr(ErrInvalidTarget, format, args...)
}

func errPendingDecisionPreempts(format string, args ...interface{}) *GameError {
	return newErr(ErrPendingDecisionPreempts, format, args...)
}

func errUnknownObject(format string, args ...interface{}) *GameError {
	return newErr(ErrUnknownObject, format, args...)
}

func errGameOver(format string, args ...interface{}) *GameError {
	return newErr(ErrGameOver, format, args...)
}

// panicInvariant reports a fatal, crash-loud invariant violation. The
// engine prefers loud failure over silent recovery for corrupted state.
func panicInvariant(format string, args ...interface{}) {
	panic(newErr(ErrInvariantViolation, format, args...))
}
