package symdq

import (
	"context"
	"time"
)

// Operation names reported in OperationEvent.
const (
	OpScrew     = "screw"
	OpTransform = "transform"
	OpNorm      = "norm"
	OpIsUnit    = "is_unit"
	OpAdd       = "add"
	OpMultiply  = "multiply"
	OpEvaluate  = "evaluate"
	OpTwist     = "twist"
	OpSave      = "save"
	OpLoad      = "load"
	OpList      = "list"
	OpDelete    = "delete"
)

// OperationEvent describes one finished engine call.
type OperationEvent struct {
	Operation string
	Domain    string
	Duration  time.Duration
	Err       error
}

// Hooks defines callbacks for engine observability.
type Hooks struct {
	OnOperation func(context.Context, *OperationEvent)
}
