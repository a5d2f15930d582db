// internal/event/types.go
package event

import (
	"go-space-fighter/internal/defs"
	"go-space-fighter/internal/types"
)

const (
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен, Data: Kill
	BossSpawned      EventType = "BossSpawned"      // Data: BossInfo
	BossDefeated     EventType = "BossDefeated"     // Босс сектора уничтожен, Data: BossInfo
	MiniBossDefeated EventType = "MiniBossDefeated" // Data: BossInfo
	WaveStarted      EventType = "WaveStarted"      // Data: Wave
	WaveCleared      EventType = "WaveCleared"      // Data: Wave
	PlayerDied       EventType = "PlayerDied"       // Анимация гибели закончилась
	PortalEntered    EventType = "PortalEntered"    // Data: Portal
	SectorAdvanced   EventType = "SectorAdvanced"   // Data: int (новый сектор)
	Victory          EventType = "Victory"          // Финал пройден
	SoundRequested   EventType = "SoundRequested"   // Data: string (имя звука)
)

// Kill - данные о гибели обычного врага.
type Kill struct {
	ID    types.EntityID
	Type  defs.EnemyType
	X, Y  float64
	Score int
}

// BossInfo - данные о боссе или мини-боссе.
type BossInfo struct {
	ID     types.EntityID
	Name   string
	Sector int
	X, Y   float64
}

// Wave - номер волны в секторе.
type Wave struct {
	Sector int
	Wave   int
}

// Portal - вход в портал магазина.
type Portal struct {
	ID       types.EntityID
	Advances bool
}
