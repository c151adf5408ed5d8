package state

import "regexp"

// Theme action types.
const (
	ActionSetThemeMode   ActionType = "SET_THEME_MODE"
	ActionToggleTheme    ActionType = "TOGGLE_THEME"
	ActionSetAccentColor ActionType = "SET_ACCENT_COLOR"
	ActionSetFontScale   ActionType = "SET_FONT_SCALE"
)

// ThemeMode selects the color scheme.
type ThemeMode string

// Theme modes.
const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// Valid reports whether m is a known mode.
func (m ThemeMode) Valid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Font scale bounds.
const (
	MinFontScale = 0.75
	MaxFontScale = 1.5
)

const defaultAccentColor = "#4f46e5"

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ThemeState holds display preferences.
type ThemeState struct {
	Mode        ThemeMode `json:"mode"`
	AccentColor string    `json:"accentColor"`
	FontScale   float64   `json:"fontScale"`
}

// ThemeDomain builds the theme domain.
func ThemeDomain(Deps) Domain[ThemeState] {
	return Domain[ThemeState]{
		Key:     KeyTheme,
		Initial: defaultTheme,
		Reducer: reduceTheme,
		Repair: func(s ThemeState) ThemeState {
			def := defaultTheme()
			if !s.Mode.Valid() {
				s.Mode = def.Mode
			}
			if !hexColor.MatchString(s.AccentColor) {
				s.AccentColor = def.AccentColor
			}
			if s.FontScale == 0 {
				s.FontScale = def.FontScale
			}
			s.FontScale = clampFontScale(s.FontScale)
			return s
		},
	}
}

func defaultTheme() ThemeState {
	return ThemeState{Mode: ThemeSystem, AccentColor: defaultAccentColor, FontScale: 1}
}

func clampFontScale(v float64) float64 {
	return min(max(v, MinFontScale), MaxFontScale)
}

func reduceTheme(s *ThemeState, a Action) (*ThemeState, error) {
	switch a.Type {
	case ActionSetThemeMode:
		mode, err := payloadAs[ThemeMode](a)
		if err != nil {
			return nil, err
		}
		if !mode.Valid() {
			return nil, invalid(a, "unknown theme mode "+string(mode))
		}
		if s.Mode == mode {
			return s, nil
		}
		next := *s
		next.Mode = mode
		return &next, nil

	case ActionToggleTheme:
		next := *s
		if s.Mode == ThemeDark {
			next.Mode = ThemeLight
		} else {
			next.Mode = ThemeDark
		}
		return &next, nil

	case ActionSetAccentColor:
		color, err := payloadAs[string](a)
		if err != nil {
			return nil, err
		}
		if !hexColor.MatchString(color) {
			return nil, invalid(a, "accent color must be a hex color")
		}
		if s.AccentColor == color {
			return s, nil
		}
		next := *s
		next.AccentColor = color
		return &next, nil

	case ActionSetFontScale:
		scale, err := payloadAs[float64](a)
		if err != nil {
			return nil, err
		}
		scale = clampFontScale(scale)
		if s.FontScale == scale {
			return s, nil
		}
		next := *s
		next.FontScale = scale
		return &next, nil
	}

	return s, nil
}
