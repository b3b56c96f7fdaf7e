package theme

// Default returns the compiled-in theme document. It seeds the engine before
// the first remote fetch and is the terminal fallback when neither the
// remote endpoint nor the cache can supply a theme.
func Default() *Config {
	return &Config{
		ActiveMode: ModeDark,
		Dark: &Variant{
			PrimaryColor:      "#64ffda",
			SecondaryColor:    "#22c55e",
			BackgroundColor:   "#0a192f",
			SurfaceColor:      "#112240",
			SurfaceLightColor: "#233554",
			AccentColor:       "#f97316",
			TextColor:         "#e6f1ff",
			TextMutedColor:    "#8892b0",
			GlassColor:        "rgba(30, 41, 59, 0.7)",
			BorderRadius:      "4px",
			CardRadius:        "8px",
			ButtonRadius:      "999px",
			FontFamily:        "'Poppins', system-ui, sans-serif",
		},
		Light: &Variant{
			PrimaryColor:      "#0f766e",
			SecondaryColor:    "#0284c7",
			BackgroundColor:   "#e0e3e6",
			SurfaceColor:      "#ffffff",
			SurfaceLightColor: "#e2e8f0",
			AccentColor:       "#e11d48",
			TextColor:         "#0f172a",
			TextMutedColor:    "#475569",
			GlassColor:        "rgba(255, 255, 255, 0.8)",
			BorderRadius:      "8px",
			CardRadius:        "20px",
			ButtonRadius:      "12px",
			FontFamily:        "'Inter', sans-serif",
		},
	}
}

func defaultVariant(mode string) Variant {
	def := Default()
	if mode == ModeLight {
		return *def.Light
	}
	return *def.Dark
}
