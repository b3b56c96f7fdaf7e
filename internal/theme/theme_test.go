package theme

import (
	"reflect"
	"testing"
)

func TestResolveActiveVariant(t *testing.T) {
	cfg := Default()
	cfg.ActiveMode = ModeLight

	v, mode, ok := cfg.Resolve()
	if !ok {
		t.Fatal("expected present variant")
	}
	if mode != ModeLight {
		t.Errorf("expected light mode, got %s", mode)
	}
	if v.PrimaryColor != "#0f766e" {
		t.Errorf("unexpected primary color %s", v.PrimaryColor)
	}
}

func TestResolveMissingVariantFallsBack(t *testing.T) {
	cfg := &Config{ActiveMode: ModeLight, Dark: Default().Dark}

	v, mode, ok := cfg.Resolve()
	if ok {
		t.Error("expected ok=false for missing variant")
	}
	if mode != ModeLight {
		t.Errorf("expected light mode, got %s", mode)
	}
	if v != *Default().Light {
		t.Errorf("expected compiled-in light defaults, got %+v", v)
	}
}

func TestUnknownModeCollapsesToDark(t *testing.T) {
	cfg := Default()
	cfg.ActiveMode = "sepia"

	_, mode, _ := cfg.Resolve()
	if mode != ModeDark {
		t.Errorf("unknown mode should collapse to dark, got %s", mode)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown mode")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	cfg := Default()
	before, _, _ := cfg.Resolve()
	original := cfg.ActiveMode

	cfg.Toggle()
	if cfg.ActiveMode == original {
		t.Fatal("toggle should flip the mode")
	}
	cfg.Toggle()
	if cfg.ActiveMode != original {
		t.Errorf("double toggle should restore the mode, got %s", cfg.ActiveMode)
	}

	after, _, _ := cfg.Resolve()
	if !reflect.DeepEqual(CSSVars(before, original), CSSVars(after, cfg.ActiveMode)) {
		t.Error("double toggle should reapply the original variable values")
	}
}

func TestCSSVarsGlassFallback(t *testing.T) {
	v := *Default().Dark
	v.GlassColor = ""

	vars := CSSVars(v, ModeDark)
	found := false
	for _, cv := range vars {
		if cv.Name == "--glass-bg" {
			found = true
			if cv.Value != glassFallbackDark {
				t.Errorf("expected dark glass fallback, got %s", cv.Value)
			}
		}
	}
	if !found {
		t.Fatal("--glass-bg missing from projection")
	}

	vars = CSSVars(v, ModeLight)
	for _, cv := range vars {
		if cv.Name == "--glass-bg" && cv.Value != glassFallbackLight {
			t.Errorf("expected light glass fallback, got %s", cv.Value)
		}
	}
}

func TestCSSVarsComplete(t *testing.T) {
	vars := CSSVars(*Default().Dark, ModeDark)
	if len(vars) != 13 {
		t.Fatalf("expected 13 variables, got %d", len(vars))
	}
	for _, cv := range vars {
		if cv.Value == "" {
			t.Errorf("%s projected empty", cv.Name)
		}
	}
}

func TestToggleIcon(t *testing.T) {
	if ToggleIcon(ModeDark) != "moon" {
		t.Error("dark mode shows the moon icon")
	}
	if ToggleIcon(ModeLight) != "sun" {
		t.Error("light mode shows the sun icon")
	}
}
