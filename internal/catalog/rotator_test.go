package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatorAdvanceWrapsAround(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		initial int
		ticks   int
		want    int
	}{
		{"один шаг", 3, 0, 1, 1},
		{"полный круг", 3, 0, 3, 0},
		{"переход через край", 3, 2, 1, 0},
		{"много тиков", 4, 1, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRotator(time.Second)
			r.Resize(tt.size)
			require.NoError(t, r.Select(tt.initial))

			for i := 0; i < tt.ticks; i++ {
				r.Advance()
			}

			// После k тиков индекс равен (initial + k) mod n
			assert.Equal(t, (tt.initial+tt.ticks)%tt.size, r.Index())
			assert.Equal(t, tt.want, r.Index())
		})
	}
}

func TestRotatorDoesNotAdvanceForSmallSets(t *testing.T) {
	for _, size := range []int{0, 1} {
		r := NewRotator(time.Second)
		r.Resize(size)
		for i := 0; i < 5; i++ {
			r.Advance()
		}
		assert.Equal(t, 0, r.Index(), "размер %d", size)
	}
}

func TestRotatorResizeResetsIndex(t *testing.T) {
	r := NewRotator(time.Second)
	r.Resize(5)
	require.NoError(t, r.Select(3))

	// Тот же размер не сбрасывает индекс
	r.Resize(5)
	assert.Equal(t, 3, r.Index())

	// Изменение размера сбрасывает
	r.Resize(2)
	assert.Equal(t, 0, r.Index())
}

func TestRotatorSelect(t *testing.T) {
	r := NewRotator(time.Second)
	r.Resize(3)

	require.NoError(t, r.Select(2))
	assert.Equal(t, 2, r.Index())

	assert.ErrorIs(t, r.Select(3), ErrIndexOutOfRange)
	assert.ErrorIs(t, r.Select(-1), ErrIndexOutOfRange)
	assert.Equal(t, 2, r.Index())
}

func TestRotatorStartAdvancesByTimer(t *testing.T) {
	r := NewRotator(10 * time.Millisecond)
	r.Resize(2)
	r.Start()
	defer r.Stop()

	assert.Eventually(t, func() bool {
		return r.Index() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRotatorStopIsIdempotent(t *testing.T) {
	r := NewRotator(time.Second)
	r.Start()
	r.Stop()
	r.Stop()
}
