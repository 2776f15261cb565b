package bloom

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuardedFilterConcurrentUse(t *testing.T) {
	filter, err := NewString(8192, 400)
	require.NoError(t, err)
	guarded := NewGuarded(filter)

	wg := &sync.WaitGroup{}
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(shift int) {
			defer wg.Done()
			for i := shift * 100; i < (shift+1)*100; i++ {
				guarded.Add(strconv.Itoa(i))
				guarded.Contains(strconv.Itoa(i))
			}
		}(worker)
	}
	wg.Wait()

	for i := 0; i < 400; i++ {
		require.True(t, guarded.Contains(strconv.Itoa(i)))
	}
	require.True(t, guarded.ContainsAll("1", "2", "3"))
	require.True(t, guarded.ContainsAny("badstring", "1"))
	require.True(t, guarded.ContainsAll())
	require.False(t, guarded.ContainsAny())
	require.InDelta(t, filter.FalsePositiveProbability(), guarded.FalsePositiveProbability(), 0)
}
