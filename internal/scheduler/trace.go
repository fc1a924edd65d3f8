package scheduler

import "svw.info/nonogram/internal/domain"

// Recorder accumulates the inferences of the running solve, one pass
// at a time. Passes are immutable once ended.
type Recorder struct {
	trace domain.Trace
	cur   domain.Pass
}

func (r *Recorder) Record(inf domain.Inference) {
	r.cur = append(r.cur, inf)
}

// EndPass seals the current pass, including an empty or partial one.
func (r *Recorder) EndPass() {
	r.trace = append(r.trace, r.cur)
	r.cur = nil
}

// CurrentLen returns the number of inferences in the open pass.
func (r *Recorder) CurrentLen() int { return len(r.cur) }

// Trace returns the recorded passes.
func (r *Recorder) Trace() domain.Trace { return r.trace }
