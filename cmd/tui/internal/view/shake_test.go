package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/leaveatip/internal/tip"
)

var _ tip.Effect = (*Shake)(nil)

func TestShake_Lifecycle(t *testing.T) {
	s := NewShake(400*time.Millisecond, 3, 3)
	require.Equal(t, 12, s.frames)

	assert.Nil(t, s.Start())
	assert.False(t, s.Active())

	s.Trigger(1)
	assert.True(t, s.Active())
	assert.Zero(t, s.Offset())
	assert.NotNil(t, s.Start())
	assert.Nil(t, s.Start())

	assert.NotNil(t, s.Update(shakeFrameMsg{key: 1, frame: 3}))
	assert.Equal(t, 2, s.Offset())

	assert.Nil(t, s.Update(shakeFrameMsg{key: 1, frame: 12}))
	assert.False(t, s.Active())
	assert.Zero(t, s.Offset())
}

func TestShake_NewTriggerDropsStaleFrames(t *testing.T) {
	s := NewShake(400*time.Millisecond, 3, 3)

	s.Trigger(1)
	s.Start()
	s.Update(shakeFrameMsg{key: 1, frame: 5})

	s.Trigger(2)
	assert.Zero(t, s.Offset())
	assert.Nil(t, s.Update(shakeFrameMsg{key: 1, frame: 6}))
	assert.True(t, s.Active())
	assert.NotNil(t, s.Update(shakeFrameMsg{key: 2, frame: 1}))
}

func TestShake_OffsetBounded(t *testing.T) {
	s := NewShake(time.Second, 4, 3)
	s.Trigger(1)

	for f := 1; f < s.frames; f++ {
		s.Update(shakeFrameMsg{key: 1, frame: f})
		assert.LessOrEqual(t, s.Offset(), s.Travel())
		assert.GreaterOrEqual(t, s.Offset(), -s.Travel())
	}
}

func TestShake_TinyDuration(t *testing.T) {
	s := NewShake(time.Millisecond, 3, 3)
	assert.Equal(t, 1, s.frames)
	assert.Positive(t, s.interval)
}
