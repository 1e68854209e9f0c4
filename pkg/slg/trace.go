package slg

import "go.uber.org/zap"

// EventKind identifies the shape of solver diagnostic event delivered to a
// Trace hook, mirroring the opt-in tracing the teacher package offers for
// its own fixpoint machinery (pkg/minikanren's wfsTracef), but typed and
// structured rather than a free-form log line.
type EventKind uint8

const (
	// EventTableCreated fires once per distinct canonical goal the first
	// time create_table builds its initial answers/work-list.
	EventTableCreated EventKind = iota
	// EventStrandForked fires whenever try_pull_next_answer_from_strand
	// forks a strand to move on to the next subgoal in its body.
	EventStrandForked
	// EventAnswerInserted fires whenever insert_answer is called, whether
	// or not the answer was new (Added distinguishes the two).
	EventAnswerInserted
	// EventCycleClosed fires when classifyCycle determines the current
	// table is the minimum of its strongly connected component and closes
	// it (spec.md section 4.7's termination condition).
	EventCycleClosed
)

// Event is delivered to a Solver's Trace hook (see WithTrace). TableGoal is
// always the canonicalized goal of the table the event concerns; Answer and
// Added are only meaningful for EventAnswerInserted; DFN is only meaningful
// for EventCycleClosed.
type Event struct {
	Kind      EventKind
	TableGoal Goal
	Answer    Substitution
	Added     bool
	DFN       DepthFirstNumber
}

// Trace is a callback a front-end may supply (via WithTrace) to observe
// the solver's derivation as it happens, e.g. to build a proof-tree
// visualizer without the engine depending on any rendering concern. It
// must not mutate the Solver; it runs synchronously on the same goroutine
// that called PullNextGoal.
type Trace func(Event)

// newLoggingTrace adapts a *zap.Logger into a Trace, so the Solver's
// built-in diagnostics (enabled via WithLogger) and a caller-supplied
// Trace hook (enabled via WithTrace) share one event shape.
func newLoggingTrace(logger *zap.Logger) Trace {
	return func(ev Event) {
		fields := []zap.Field{
			zap.String("goal", ev.TableGoal.String()),
		}
		switch ev.Kind {
		case EventTableCreated:
			logger.Debug("table created", fields...)
		case EventStrandForked:
			logger.Debug("strand forked", fields...)
		case EventAnswerInserted:
			fields = append(fields,
				zap.Int("bindings", ev.Answer.Len()),
				zap.Bool("added", ev.Added),
			)
			logger.Debug("answer considered", fields...)
		case EventCycleClosed:
			fields = append(fields, zap.Int("dfn", int(ev.DFN)))
			logger.Debug("cycle closed", fields...)
		}
	}
}
