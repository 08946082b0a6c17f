package peanobrain

import "github.com/unixpickle/peanobrain/exprtree"

// A Trace is the derivation of a reduction: the initial
// expression followed by every intermediate tree down to
// the normal form. It is immutable once produced.
type Trace []*exprtree.Tree

// Reduce applies Match and the resulting scripts until no
// rule fires, accumulating the derivation trace.
//
// The rule set is confluent and strictly decreasing in
// the operator count, so termination is guaranteed for
// well-formed inputs. A positive maxSteps guards against
// malformed input: exceeding it returns a
// *NonTerminatingError. maxSteps <= 0 disables the cap.
func Reduce(t *exprtree.Tree, maxSteps int) (Trace, error) {
	trace := Trace{t}
	for steps := 0; ; steps++ {
		if maxSteps > 0 && steps >= maxSteps {
			return nil, &NonTerminatingError{Steps: maxSteps}
		}
		script, _ := Match(t)
		if len(script) == 0 {
			return trace, nil
		}
		var err error
		if t, err = script.Apply(t); err != nil {
			// Match emits well-formed scripts for
			// well-formed trees.
			return nil, err
		}
		trace = append(trace, t)
	}
}
