// internal/sound/sound.go
package sound

import "go-space-fighter/internal/event"

// Имена звуков, которые запрашивает ядро. Синтез и воспроизведение - забота реализации Player.
const (
	Shoot      = "shoot"
	EnemyShoot = "enemy_shoot"
	Hit        = "hit"
	Explosion  = "explosion"
	PlayerHit  = "player_hit"
	PowerUp    = "powerup"
	Dash       = "dash"
	BossSpawn  = "boss_spawn"
	BossDeath  = "boss_death"
	Portal     = "portal"
	Purchase   = "purchase"
	Deflect    = "deflect"
	GameOver   = "game_over"
	Victory    = "victory"
)

// Player воспроизводит звук по имени.
type Player interface {
	Play(name string)
}

// Nop ничего не играет.
type Nop struct{}

func (Nop) Play(string) {}

// Recorder запоминает запрошенные звуки.
type Recorder struct {
	Played []string
}

func (r *Recorder) Play(name string) { r.Played = append(r.Played, name) }

// Count - сколько раз звучал name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, p := range r.Played {
		if p == name {
			n++
		}
	}
	return n
}

// Bridge передаёт события SoundRequested в Player.
type Bridge struct {
	player Player
}

// Attach подписывает плеер на запросы звука диспетчера.
func Attach(d *event.Dispatcher, p Player) *Bridge {
	b := &Bridge{player: p}
	d.Subscribe(event.SoundRequested, b)
	return b
}

func (b *Bridge) OnEvent(e event.Event) {
	if name, ok := e.Data.(string); ok {
		b.player.Play(name)
	}
}
