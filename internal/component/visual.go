// internal/component/visual.go
package component

// DamageFlashDuration - сколько мс сущность подсвечивается после попадания.
const DamageFlashDuration = 80

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Until int64
}

// Trigger включает вспышку с момента now.
func (f *DamageFlash) Trigger(now int64) {
	f.Until = now + DamageFlashDuration
}

// Active - активна ли вспышка.
func (f DamageFlash) Active(now int64) bool {
	return now < f.Until
}
