package discord

// pageMax is the largest page size the API accepts per request.
const pageMax = 100

// Limit is how many messages a fetch should return: either a positive
// bound or unbounded (fetch until the channel is exhausted). The zero
// value is Bounded(0), which fetches nothing.
type Limit struct {
	n         int
	unbounded bool
}

func Bounded(n int) Limit {
	return Limit{n: n}
}

func Unbounded() Limit {
	return Limit{unbounded: true}
}

func (l Limit) IsUnbounded() bool {
	return l.unbounded
}

// pageSize returns the size of the next page request given how many
// messages are already fetched: min(remaining, pageMax).
func (l Limit) pageSize(fetched int) int {
	if l.unbounded {
		return pageMax
	}

	remaining := l.n - fetched
	if remaining > pageMax {
		return pageMax
	}

	return remaining
}

// reached reports whether fetched messages satisfy the limit.
func (l Limit) reached(fetched int) bool {
	return !l.unbounded && fetched >= l.n
}
