package pool

import "github.com/moharaka/thdpool/internal/events"

// balanceThreshold is the number of consecutive shrink-opportunity submits
// required before max is lowered by one.
const balanceThreshold = 100

// balanceDown applies shrink bias. Called with the lock held whenever a
// submit finds the free-list non-empty: the pool had surplus capacity.
// max only drops after balanceThreshold such observations in a row; any
// growth event in between resets the count. Never shrinks below min.
// The retirement itself is lazy: a worker discovers number > max at its next
// park attempt and self-retires.
func (p *Pool) balanceDown() {
	if p.max == p.min || p.inList <= p.min {
		p.balance = 0
		return
	}
	p.balance--
	if p.balance <= -balanceThreshold {
		p.balance = 0
		p.max--
		p.emit(events.NewEvent(events.PoolShrunk, p.name).WithPayload(p.max))
	}
}

// balanceUp applies grow bias. Called with the lock held whenever a submit
// finds the free-list empty. A single empty observation clears any
// accumulated shrink pressure, so oscillating workloads favour growth.
func (p *Pool) balanceUp() {
	if p.balance > 0 {
		p.balance++
	} else {
		p.balance = 0
	}
	p.max++
	p.emit(events.NewEvent(events.PoolGrew, p.name).WithPayload(p.max))
}
