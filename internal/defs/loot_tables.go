// internal/defs/loot_tables.go
package defs

// SpawnEntry представляет одну запись в таблице появления врагов.
// Weight - её "вес" или относительный шанс.
type SpawnEntry struct {
	Type   EnemyType `yaml:"type"`
	Weight int       `yaml:"weight"`
}

// SpawnTable - набор врагов, доступных начиная с сектора FromSector.
type SpawnTable struct {
	FromSector int          `yaml:"from_sector"`
	Entries    []SpawnEntry `yaml:"entries"`
}
