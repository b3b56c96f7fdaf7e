// Package theme models the dual light/dark theme document and projects the
// active variant onto the CSS custom properties the site templates consume.
package theme

import "fmt"

// The two known modes. ActiveMode is always one of these; anything else is
// collapsed to dark before lookup.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// Variant is one named bundle of color, shape and font values.
type Variant struct {
	PrimaryColor      string `json:"primaryColor"`
	SecondaryColor    string `json:"secondaryColor"`
	BackgroundColor   string `json:"backgroundColor"`
	SurfaceColor      string `json:"surfaceColor"`
	SurfaceLightColor string `json:"surfaceLightColor"`
	AccentColor       string `json:"accentColor"`
	TextColor         string `json:"textColor"`
	TextMutedColor    string `json:"textMutedColor"`
	GlassColor        string `json:"glassColor,omitempty"`
	BorderRadius      string `json:"borderRadius"`
	CardRadius        string `json:"cardRadius"`
	ButtonRadius      string `json:"buttonRadius"`
	FontFamily        string `json:"fontFamily"`
}

// Config is the theme document: both variants plus the active selector.
type Config struct {
	ActiveMode string   `json:"activeMode"`
	Dark       *Variant `json:"dark,omitempty"`
	Light      *Variant `json:"light,omitempty"`
}

// Mode returns the active mode collapsed to one of the two known names.
func (c *Config) Mode() string {
	if c.ActiveMode == ModeLight {
		return ModeLight
	}
	return ModeDark
}

// Resolve returns the variant for the active mode. A document missing that
// variant falls back to the compiled-in default for the mode; ok is false in
// that case so callers can surface a notice instead of silently skipping.
func (c *Config) Resolve() (v Variant, mode string, ok bool) {
	mode = c.Mode()

	var p *Variant
	switch mode {
	case ModeLight:
		p = c.Light
	default:
		p = c.Dark
	}
	if p == nil {
		return defaultVariant(mode), mode, false
	}
	return *p, mode, true
}

// Toggle flips the active mode between the two known modes and returns the
// new mode. Applying and persisting the change is the caller's job; local
// state stays authoritative regardless of whether a remote save succeeds.
func (c *Config) Toggle() string {
	if c.Mode() == ModeDark {
		c.ActiveMode = ModeLight
	} else {
		c.ActiveMode = ModeDark
	}
	return c.ActiveMode
}

// SetVariant stores v as the variant for the given mode.
func (c *Config) SetVariant(mode string, v Variant) {
	if mode == ModeLight {
		c.Light = &v
		return
	}
	c.Dark = &v
}

// CSSVar is one CSS custom property produced from a variant.
type CSSVar struct {
	Name  string
	Value string
}

// Overlay fallbacks used when a variant carries no glass color.
const (
	glassFallbackDark  = "rgba(30, 41, 59, 0.7)"
	glassFallbackLight = "rgba(255, 255, 255, 0.8)"
)

// CSSVars projects a variant onto the style-variable registry. The order is
// fixed so rendered pages are byte-stable across requests.
func CSSVars(v Variant, mode string) []CSSVar {
	glass := v.GlassColor
	if glass == "" {
		if mode == ModeLight {
			glass = glassFallbackLight
		} else {
			glass = glassFallbackDark
		}
	}

	return []CSSVar{
		{"--color-primary", v.PrimaryColor},
		{"--color-secondary", v.SecondaryColor},
		{"--color-bg", v.BackgroundColor},
		{"--color-surface", v.SurfaceColor},
		{"--color-surface-light", v.SurfaceLightColor},
		{"--color-accent", v.AccentColor},
		{"--color-text", v.TextColor},
		{"--color-text-muted", v.TextMutedColor},
		{"--glass-bg", glass},
		{"--radius-global", v.BorderRadius},
		{"--radius-card", v.CardRadius},
		{"--radius-button", v.ButtonRadius},
		{"--font-family-base", v.FontFamily},
	}
}

// ToggleIcon names the icon shown on the mode toggle control.
func ToggleIcon(mode string) string {
	if mode == ModeLight {
		return "sun"
	}
	return "moon"
}

// Validate rejects documents whose active mode is not one of the two known
// names.
func (c *Config) Validate() error {
	if c.ActiveMode != ModeDark && c.ActiveMode != ModeLight {
		return fmt.Errorf("unknown active mode %q", c.ActiveMode)
	}
	return nil
}
