package usecase

import (
	"testing"
	"time"

	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/notification/domain"
	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCenter() (*Center, *clock.Mock) {
	clk := clock.NewMock()
	clk.Set(time.Date(2025, 4, 10, 8, 0, 0, 0, time.UTC))
	return NewCenter(clk, logger.Nop()), clk
}

func TestPushAppendsInOrder(t *testing.T) {
	c, _ := newTestCenter()

	first := c.Success("one")
	second := c.Error("two")
	third := c.Info("three")

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{first, second, third}, []string{list[0].ID, list[1].ID, list[2].ID})
	assert.Equal(t, domain.KindError, list[1].Kind)
	assert.Equal(t, 1.0, list[0].RemainingTimeFraction)
	assert.NotEqual(t, first, second)
}

func TestAutoDismissAfterDuration(t *testing.T) {
	c, clk := newTestCenter()
	id := c.Push(domain.KindSuccess, "saved", domain.WithDuration(5000*time.Millisecond))

	clk.Add(4900 * time.Millisecond)
	n, ok := c.Get(id)
	require.True(t, ok)
	assert.InDelta(t, 0.02, n.RemainingTimeFraction, 1e-9)

	clk.Add(100 * time.Millisecond)
	_, ok = c.Get(id)
	assert.False(t, ok)
	assert.Empty(t, c.List())
}

func TestRemainingFractionDecreasesInSteps(t *testing.T) {
	c, clk := newTestCenter()
	id := c.Warning("careful")

	prev := 1.0
	for i := 0; i < 49; i++ {
		clk.Add(DefaultStep)
		n, ok := c.Get(id)
		require.True(t, ok)
		assert.Less(t, n.RemainingTimeFraction, prev)
		prev = n.RemainingTimeFraction
	}
	clk.Add(DefaultStep)
	_, ok := c.Get(id)
	assert.False(t, ok)
}

func TestDurationNotMultipleOfStep(t *testing.T) {
	c, clk := newTestCenter()
	id := c.Push(domain.KindInfo, "odd", domain.WithDuration(250*time.Millisecond))

	clk.Add(249 * time.Millisecond)
	_, ok := c.Get(id)
	require.True(t, ok)

	clk.Add(time.Millisecond)
	_, ok = c.Get(id)
	assert.False(t, ok)
}

func TestDismissCancelsCountdown(t *testing.T) {
	c, clk := newTestCenter()
	id := c.Error("boom")
	e := c.items[0]

	require.True(t, c.Dismiss(id))
	assert.False(t, e.timer.Stop(), "countdown still armed")
	assert.False(t, c.Dismiss(id))

	clk.Add(10 * time.Second)
	assert.Empty(t, c.List())
}

func TestDismissLeavesOtherTimersUntouched(t *testing.T) {
	c, clk := newTestCenter()
	ids := []string{c.Info("a"), c.Info("b"), c.Info("c"), c.Info("d")}

	clk.Add(time.Second)
	require.True(t, c.Dismiss(ids[1]))

	list := c.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{ids[0], ids[2], ids[3]}, []string{list[0].ID, list[1].ID, list[2].ID})
	for _, n := range list {
		assert.InDelta(t, 0.8, n.RemainingTimeFraction, 1e-9)
	}

	clk.Add(2 * time.Second)
	for _, n := range c.List() {
		assert.InDelta(t, 0.4, n.RemainingTimeFraction, 1e-9)
	}

	clk.Add(2 * time.Second)
	assert.Empty(t, c.List())
}

func TestStaggeredNotificationsExpireIndependently(t *testing.T) {
	c, clk := newTestCenter()
	early := c.Info("early")
	clk.Add(2 * time.Second)
	late := c.Info("late")

	clk.Add(3 * time.Second)
	_, ok := c.Get(early)
	assert.False(t, ok)
	n, ok := c.Get(late)
	require.True(t, ok)
	assert.InDelta(t, 0.4, n.RemainingTimeFraction, 1e-9)
}

func TestWithoutAutoCloseStaysUntilDismissed(t *testing.T) {
	c, clk := newTestCenter()
	id := c.Push(domain.KindInfo, "sticky", domain.WithoutAutoClose())

	assert.Nil(t, c.items[0].timer)
	clk.Add(time.Minute)
	n, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, 1.0, n.RemainingTimeFraction)
	assert.True(t, c.Dismiss(id))
}

func TestCustomDefaults(t *testing.T) {
	clk := clock.NewMock()
	c := NewCenter(clk, logger.Nop(), WithDefaultDuration(time.Second), WithStep(500*time.Millisecond))
	id := c.Info("short")

	clk.Add(500 * time.Millisecond)
	n, ok := c.Get(id)
	require.True(t, ok)
	assert.InDelta(t, 0.5, n.RemainingTimeFraction, 1e-9)

	clk.Add(500 * time.Millisecond)
	_, ok = c.Get(id)
	assert.False(t, ok)
}

func TestInvalidKindFallsBackToInfo(t *testing.T) {
	c, _ := newTestCenter()
	id := c.Push(domain.Kind("loud"), "?")
	n, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, domain.KindInfo, n.Kind)
}

func TestCloseCancelsEverything(t *testing.T) {
	c, clk := newTestCenter()
	c.Info("a")
	c.Info("b")
	armed := []*entry{c.items[0], c.items[1]}

	c.Close()
	for _, e := range armed {
		assert.False(t, e.timer.Stop())
	}
	assert.Empty(t, c.List())
	assert.Empty(t, c.Push(domain.KindInfo, "late"))

	clk.Add(10 * time.Second)
	assert.Empty(t, c.List())
}
