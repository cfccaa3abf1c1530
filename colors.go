package svcadapters

// ANSI escape sequences used by the console encoder.
const (
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	BoldRed = "\x1b[31;1m"

	// Reset restores the terminal's default attributes.
	Reset = "\x1b[0m"
)

// ColorConfig controls colored text output.
type ColorConfig struct {
	// Enable turns colors on. Colors are only applied to terminals unless ForceTTY is set.
	Enable bool
	// ForceTTY applies colors whatever the output is.
	ForceTTY bool
	// LevelColors maps levels to escape sequences. Nil uses DefaultLevelColors.
	LevelColors map[Level]string
}

// DefaultColorConfig enables colors for terminals.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Enable:      true,
		LevelColors: DefaultLevelColors(),
	}
}

// DefaultLevelColors returns the escape sequence used for each level.
func DefaultLevelColors() map[Level]string {
	return map[Level]string{
		AuditLevel:   BoldRed,
		ErrorLevel:   Red,
		WarningLevel: Yellow,
		InfoLevel:    Green,
		DebugLevel:   Blue,
		TraceLevel:   Magenta,
	}
}

// ColorFor returns the escape sequence for level, or false when colors are
// disabled or the level has none.
func (c ColorConfig) ColorFor(level Level) (string, bool) {
	if !c.Enable {
		return "", false
	}

	colors := c.LevelColors
	if colors == nil {
		colors = DefaultLevelColors()
	}

	seq, ok := colors[level]

	return seq, ok && seq != ""
}
