// internal/input/input.go
package input

// State - снимок ввода за один тик. Удерживаемые клавиши читаются как уровни,
// одиночные нажатия (Dash, Enter, Pause...) - как фронты.
type State struct {
	Left, Right, Up, Down bool
	Shoot                 bool
	Shield                bool

	Dash     bool
	Enter    bool // вход в портал
	Pause    bool
	Back     bool
	MenuUp   bool
	MenuDown bool
	Confirm  bool
}

// Reader отдаёт снимок ввода на текущий тик.
type Reader interface {
	Read() State
}

// Script - заранее записанная последовательность снимков, для тестов и headless.
// После конца записи возвращает пустой снимок.
type Script struct {
	Frames []State
	pos    int
}

func (s *Script) Read() State {
	if s.pos >= len(s.Frames) {
		return State{}
	}
	st := s.Frames[s.pos]
	s.pos++
	return st
}

// AnyPressed - было ли хоть одно одиночное нажатие.
func (s State) AnyPressed() bool {
	return s.Dash || s.Enter || s.Pause || s.Back || s.MenuUp || s.MenuDown || s.Confirm
}
