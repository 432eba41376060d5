package terminal

// Mode represents the current input mode
type Mode int

const (
	ModeNormal Mode = iota // Moving, painting and filling
	ModeBrush              // Next rune becomes the brush
)

// String returns the mode name for display
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeBrush:
		return "BRUSH"
	default:
		return "UNKNOWN"
	}
}
