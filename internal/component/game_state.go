package component

// Phase — состояние раунда
type Phase int

const (
	Playing Phase = iota
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "PLAYING"
	case Won:
		return "WON"
	case Lost:
		return "LOST"
	}
	return "UNKNOWN"
}

// Terminal — из WON и LOST выходит только сброс.
func (p Phase) Terminal() bool {
	return p == Won || p == Lost
}
