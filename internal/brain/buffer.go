package brain

import "github.com/adavids/minibrain/internal/model"

// Buffer is the in-memory staging area for facts not yet merged into the
// durable document. Facts are kept in arrival order and are not deduped
// here; dedup happens at commit against long-term memory.
type Buffer struct {
	pending []model.Fact
}

// Append stages a fact at the end of the buffer.
func (b *Buffer) Append(f model.Fact) {
	b.pending = append(b.pending, f)
}

// DrainAll returns the staged facts in arrival order and empties the
// buffer in one step.
func (b *Buffer) DrainAll() []model.Fact {
	drained := b.pending
	b.pending = nil
	return drained
}

// Size returns the number of staged facts.
func (b *Buffer) Size() int {
	return len(b.pending)
}
