package entity

import (
	"go-space-fighter/internal/component"
	"go-space-fighter/internal/defs"
	"testing"
)

func TestSpawnIsDeferredUntilFlush(t *testing.T) {
	ecs := NewECS(component.NewGameState(defs.DifficultyNormal))
	id := ecs.SpawnEnemy(&component.Enemy{Body: component.Body{Rect: component.Rect{X: 10, Y: 10, W: 40, H: 40}}, Health: 10})

	if _, ok := ecs.Enemies[id]; ok {
		t.Fatal("enemy must not be in the registry before Flush")
	}
	if ecs.LiveEnemyCount() != 1 {
		t.Errorf("pending enemy must count for wave clear, got %d", ecs.LiveEnemyCount())
	}
	ecs.Flush()
	if _, ok := ecs.Enemies[id]; !ok {
		t.Fatal("enemy must be registered after Flush")
	}
}

func TestProjectilesRoutedByKind(t *testing.T) {
	ecs := NewECS(component.NewGameState(defs.DifficultyNormal))
	own := ecs.SpawnProjectile(&component.Projectile{Kind: component.KindBullet})
	hostile := ecs.SpawnProjectile(&component.Projectile{Kind: component.KindEnemySpreadBullet})
	ecs.Flush()

	if _, ok := ecs.Bullets[own]; !ok {
		t.Error("player bullet must land in Bullets")
	}
	if _, ok := ecs.EnemyBullets[hostile]; !ok {
		t.Error("enemy bullet must land in EnemyBullets")
	}
}

func TestSweepRemovesDeadAndFarOffscreen(t *testing.T) {
	ecs := NewECS(component.NewGameState(defs.DifficultyNormal))
	dead := ecs.SpawnEnemy(&component.Enemy{Body: component.Body{Rect: component.Rect{X: 100, Y: 100, W: 40, H: 40}}})
	far := ecs.SpawnPowerUp(&component.PowerUp{Body: component.Body{Rect: component.Rect{X: 100, Y: 1200, W: 25, H: 25}}})
	near := ecs.SpawnPowerUp(&component.PowerUp{Body: component.Body{Rect: component.Rect{X: 100, Y: 950, W: 25, H: 25}}})
	ecs.Flush()
	ecs.Enemies[dead].Kill()

	ecs.Sweep()

	if _, ok := ecs.Enemies[dead]; ok {
		t.Error("dead enemy survived Sweep")
	}
	if _, ok := ecs.PowerUps[far]; ok {
		t.Error("power-up 300px below the screen survived Sweep")
	}
	if _, ok := ecs.PowerUps[near]; !ok {
		t.Error("power-up inside the margin was removed")
	}
}

func TestSweepKeepsEnemiesWaitingAboveScreen(t *testing.T) {
	ecs := NewECS(component.NewGameState(defs.DifficultyNormal))
	above := ecs.SpawnEnemy(&component.Enemy{Body: component.Body{Rect: component.Rect{X: 100, Y: -150, W: 40, H: 40}}})
	bullet := ecs.SpawnProjectile(&component.Projectile{Kind: component.KindBullet, Body: component.Body{Rect: component.Rect{X: 100, Y: -150, W: 5, H: 15}}})
	ecs.Flush()
	ecs.Sweep()

	if _, ok := ecs.Enemies[above]; !ok {
		t.Error("enemy spawned above the screen must not be swept")
	}
	if _, ok := ecs.Bullets[bullet]; ok {
		t.Error("player bullet far above the screen must be swept")
	}
}

func TestRemoveProjectilesOwnedBy(t *testing.T) {
	ecs := NewECS(component.NewGameState(defs.DifficultyNormal))
	a := ecs.SpawnProjectile(&component.Projectile{Kind: component.KindEnemyBullet, OwnerID: 7})
	b := ecs.SpawnProjectile(&component.Projectile{Kind: component.KindEnemyBullet, OwnerID: 8})
	ecs.Flush()
	c := ecs.SpawnProjectile(&component.Projectile{Kind: component.KindEnemyBullet, OwnerID: 7})

	if n := ecs.RemoveProjectilesOwnedBy(7); n != 2 {
		t.Errorf("Expected 2 removed projectiles, got %d", n)
	}
	ecs.Flush()
	ecs.Sweep()
	if _, ok := ecs.EnemyBullets[a]; ok {
		t.Error("owned bullet survived")
	}
	if _, ok := ecs.EnemyBullets[c]; ok {
		t.Error("pending owned bullet survived")
	}
	if _, ok := ecs.EnemyBullets[b]; !ok {
		t.Error("foreign bullet was removed")
	}
}

func TestNearestSkipsDeadTargets(t *testing.T) {
	ecs := NewECS(component.NewGameState(defs.DifficultyNormal))
	nearID := ecs.SpawnEnemy(&component.Enemy{Body: component.Body{Rect: component.NewRectCentered(100, 100, 10, 10)}})
	farID := ecs.SpawnBoss(&component.Boss{Body: component.Body{Rect: component.NewRectCentered(500, 100, 10, 10)}})
	ecs.Flush()

	if tgt, ok := ecs.Nearest(90, 100); !ok || tgt.ID != nearID {
		t.Fatalf("Expected nearest %d, got %+v", nearID, tgt)
	}
	ecs.Enemies[nearID].Kill()
	if tgt, ok := ecs.Nearest(90, 100); !ok || tgt.ID != farID {
		t.Fatalf("dead target must be skipped, got %+v", tgt)
	}
	ecs.Bosses[farID].Kill()
	if _, ok := ecs.Nearest(90, 100); ok {
		t.Error("no live targets must report false")
	}
}
