package ddsolver_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/fjspdd/ddsolver"
	"github.com/stretchr/testify/assert"
)

func TestNoCutoffNeverFires(t *testing.T) {
	for i := 0; i < 5000; i++ {
		assert.False(t, ddsolver.NoCutoff.Poll())
	}
}

func TestTimeBudgetFiresAfterDeadline(t *testing.T) {
	cutoff := ddsolver.TimeBudget(time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	var fired bool
	for i := 0; i < 1<<13; i++ {
		if cutoff.Poll() {
			fired = true
			break
		}
	}
	assert.True(t, fired, "expired budget should eventually report true")
}

func TestTimeBudgetDoesNotFireImmediately(t *testing.T) {
	cutoff := ddsolver.TimeBudget(time.Hour)
	assert.False(t, cutoff.Poll())
}
