package eval

// Kind discriminates the three possible evaluation outcomes.
type Kind uint8

const (
	// KindClear means the candidate collides with nothing: Loss is always 0.
	KindClear Kind = iota
	// KindCollision means the candidate collides with something; Loss > 0.
	KindCollision
	// KindInvalid means the sample was early-terminated because its loss
	// is already known to be no better than the caller's bound, or is
	// otherwise geometrically impossible. It is not an error: callers
	// must treat it as "not better than the bound", never "infeasible".
	KindInvalid
)

// SampleEval is the result of one evaluator call.
type SampleEval struct {
	Kind Kind
	Loss float64
}

// Clear is the zero-loss, no-hazards result.
func Clear() SampleEval { return SampleEval{Kind: KindClear} }

// Collision reports a positive loss from one or more collected hazards.
func Collision(loss float64) SampleEval { return SampleEval{Kind: KindCollision, Loss: loss} }

// Invalid is the early-terminated / impossible result.
func Invalid() SampleEval { return SampleEval{Kind: KindInvalid} }

// IsClear reports whether the result is Clear.
func (s SampleEval) IsClear() bool { return s.Kind == KindClear }

// IsCollision reports whether the result is Collision.
func (s SampleEval) IsCollision() bool { return s.Kind == KindCollision }

// IsInvalid reports whether the result is Invalid.
func (s SampleEval) IsInvalid() bool { return s.Kind == KindInvalid }
