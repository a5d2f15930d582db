// internal/defs/waves.go
package defs

// SpawnTables - состав волн по секторам, по возрастанию FromSector.
// Новые типы врагов открываются по мере продвижения.
var SpawnTables = []SpawnTable{
	{FromSector: 1, Entries: []SpawnEntry{
		{Type: EnemyBasic, Weight: 85}, {Type: EnemyElite, Weight: 15},
	}},
	{FromSector: 2, Entries: []SpawnEntry{
		{Type: EnemyBasic, Weight: 55}, {Type: EnemyElite, Weight: 15},
		{Type: EnemyCloakedAmbusher, Weight: 15}, {Type: EnemyShieldBearer, Weight: 15},
	}},
	{FromSector: 3, Entries: []SpawnEntry{
		{Type: EnemyBasic, Weight: 35}, {Type: EnemyElite, Weight: 20},
		{Type: EnemyCloakedAmbusher, Weight: 15}, {Type: EnemyShieldBearer, Weight: 15},
		{Type: EnemySplitterDrone, Weight: 15},
	}},
	{FromSector: 4, Entries: []SpawnEntry{
		{Type: EnemyBasic, Weight: 25}, {Type: EnemyElite, Weight: 20},
		{Type: EnemyCloakedAmbusher, Weight: 10}, {Type: EnemyShieldBearer, Weight: 15},
		{Type: EnemySplitterDrone, Weight: 15}, {Type: EnemyEnergySapper, Weight: 15},
	}},
	{FromSector: 5, Entries: []SpawnEntry{
		{Type: EnemyBasic, Weight: 20}, {Type: EnemyElite, Weight: 15},
		{Type: EnemyCloakedAmbusher, Weight: 10}, {Type: EnemyShieldBearer, Weight: 15},
		{Type: EnemySplitterDrone, Weight: 15}, {Type: EnemyEnergySapper, Weight: 10},
		{Type: EnemyBladeSpinner, Weight: 15},
	}},
}

// SpawnTableFor возвращает самую позднюю таблицу, открытую к этому сектору.
func SpawnTableFor(sector int) []SpawnEntry {
	entries := SpawnTables[0].Entries
	for _, t := range SpawnTables {
		if sector >= t.FromSector {
			entries = t.Entries
		}
	}
	return entries
}
