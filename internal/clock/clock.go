// internal/clock/clock.go
package clock

import "time"

// Clock отдаёт монотонное время в миллисекундах.
// Все кулдауны и таймеры симуляции читают время только через него.
type Clock interface {
	Now() int64
}

// Monotonic - реальные часы, отсчёт от момента создания.
type Monotonic struct {
	start time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (c *Monotonic) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// Manual - часы, которые двигаются только вручную.
// Используются в тестах и в headless-прогонах.
type Manual struct {
	now int64
}

func NewManual(start int64) *Manual {
	return &Manual{now: start}
}

func (c *Manual) Now() int64 {
	return c.now
}

// Advance сдвигает время вперёд на ms миллисекунд.
func (c *Manual) Advance(ms int64) {
	c.now += ms
}

// Set устанавливает текущее время.
func (c *Manual) Set(ms int64) {
	c.now = ms
}
