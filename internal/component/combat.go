// internal/component/combat.go
package component

// Cannon - таймер стрельбы: выстрел разрешён, когда с прошлого прошло больше Delay+Jitter мс.
type Cannon struct {
	Delay  int64
	Jitter int64 // добавка к следующей задержке, чтобы залпы не синхронизировались
	Last   int64
}

// NewCannon создаёт пушку, готовую стрелять сразу.
func NewCannon(delay int64, now int64) Cannon {
	return Cannon{Delay: delay, Last: now - delay - 1}
}

// Ready проверяет, истекла ли задержка.
func (c *Cannon) Ready(now int64) bool {
	return now-c.Last > c.Delay+c.Jitter
}

// Fire фиксирует выстрел; jitter задаёт разброс до следующего.
func (c *Cannon) Fire(now, jitter int64) {
	c.Last = now
	c.Jitter = jitter
}
