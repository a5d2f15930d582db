// internal/app/stats.go
package app

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"go-space-fighter/internal/defs"
)

// Stats - сводка забега, собирается из событий ядра.
type Stats struct {
	Ticks              int
	Kills              map[defs.EnemyType]int
	BossesDefeated     int
	MiniBossesDefeated int
	WavesCleared       int
	MaxSector          int
	Victory            bool
	Died               bool
}

func newStats() *Stats {
	s := &Stats{}
	s.reset()
	return s
}

func (s *Stats) reset() {
	*s = Stats{Kills: make(map[defs.EnemyType]int), MaxSector: 1}
}

// TotalKills - все уничтоженные обычные враги.
func (s *Stats) TotalKills() int {
	n := 0
	for _, k := range s.Kills {
		n += k
	}
	return n
}

// WriteTo печатает сводку в человекочитаемом виде.
func (s *Stats) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}
	if err := write("ticks=%d sector=%d waves=%d bosses=%d minibosses=%d victory=%v died=%v\n",
		s.Ticks, s.MaxSector, s.WavesCleared, s.BossesDefeated, s.MiniBossesDefeated, s.Victory, s.Died); err != nil {
		return total, err
	}
	for _, t := range slices.Sorted(maps.Keys(s.Kills)) {
		if err := write("  %-18s %d\n", t, s.Kills[t]); err != nil {
			return total, err
		}
	}
	return total, nil
}
