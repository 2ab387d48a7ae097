package trigger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Trigger_FireAndConsume(t *testing.T) {
	trig := New()

	assert.False(t, trig.Pending())
	assert.False(t, trig.Consume())

	assert.True(t, trig.Fire())
	assert.True(t, trig.Pending())

	assert.True(t, trig.Consume())
	assert.False(t, trig.Pending())
	assert.False(t, trig.Consume())
}

func Test_Trigger_CoalescesRepeatedFires(t *testing.T) {
	trig := New()

	assert.True(t, trig.Fire())
	assert.False(t, trig.Fire())
	assert.False(t, trig.Fire())

	assert.True(t, trig.Consume())
	assert.False(t, trig.Consume())
}

func Test_Trigger_FireAfterConsumeIsNotLost(t *testing.T) {
	trig := New()

	assert.True(t, trig.Fire())
	assert.True(t, trig.Consume())

	assert.True(t, trig.Fire())
	assert.True(t, trig.Consume())
}

func Test_Trigger_ConcurrentFires(t *testing.T) {
	trig := New()

	var wg sync.WaitGroup

	fired := make(chan bool, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			fired <- trig.Fire()
		}()
	}

	wg.Wait()
	close(fired)

	wins := 0
	for ok := range fired {
		if ok {
			wins++
		}
	}

	// Exactly one fire transitions the trigger; the rest coalesce.
	assert.Equal(t, 1, wins)
	assert.True(t, trig.Consume())
}
