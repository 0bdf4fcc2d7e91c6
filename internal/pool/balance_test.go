package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// bare constructs a pool with just the counters the balancer reads.
func bare(min, max, inList, balance int) *Pool {
	return &Pool{min: min, max: max, inList: inList, balance: balance}
}

func TestBalanceDown_NoShrinkAtMin(t *testing.T) {
	p := bare(3, 3, 3, -50)
	p.balanceDown()
	assert.Equal(t, 0, p.balance)
	assert.Equal(t, 3, p.max)
}

func TestBalanceDown_NoShrinkWhenLean(t *testing.T) {
	// in_list at or below min: the pool is not carrying surplus.
	p := bare(3, 9, 3, -50)
	p.balanceDown()
	assert.Equal(t, 0, p.balance)
	assert.Equal(t, 9, p.max)
}

func TestBalanceDown_DecrementsTowardThreshold(t *testing.T) {
	p := bare(3, 9, 5, 0)
	for i := 0; i < balanceThreshold-1; i++ {
		p.balanceDown()
	}
	assert.Equal(t, -(balanceThreshold - 1), p.balance)
	assert.Equal(t, 9, p.max)

	p.balanceDown()
	assert.Equal(t, 0, p.balance)
	assert.Equal(t, 8, p.max)
}

func TestBalanceUp_ClearsShrinkPressure(t *testing.T) {
	p := bare(3, 9, 0, -99)
	p.balanceUp()
	assert.Equal(t, 0, p.balance)
	assert.Equal(t, 10, p.max)

	// One burst observation undid 99 accumulated surplus observations:
	// oscillating workloads favour growth.
}

func TestBalanceUp_TracksGrowStreak(t *testing.T) {
	p := bare(3, 9, 0, 2)
	p.balanceUp()
	assert.Equal(t, 3, p.balance)
	assert.Equal(t, 10, p.max)
}
