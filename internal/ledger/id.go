package ledger

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out expense ids. Ids are never reused.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues time-ordered UUIDv7 ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequenceGenerator issues increasing decimal ids starting after next.
// It is not safe for concurrent use.
type SequenceGenerator struct {
	next int64
}

// NewSequenceGenerator returns a generator whose first id is start+1.
func NewSequenceGenerator(start int64) *SequenceGenerator {
	return &SequenceGenerator{next: start}
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	return strconv.FormatInt(g.next, 10)
}
