package tokens

var defaultSpacing = map[string]string{
	"xs":  "4px",
	"sm":  "8px",
	"md":  "16px",
	"lg":  "24px",
	"xl":  "32px",
	"2xl": "48px",
}

// No "base" entry: text(base) passes through as a literal.
var defaultFont = map[string]string{
	"xs":  "12px",
	"sm":  "14px",
	"md":  "16px",
	"lg":  "20px",
	"xl":  "24px",
	"2xl": "32px",
	"3xl": "40px",
}

var defaultRadius = map[string]string{
	"sm":   "4px",
	"md":   "8px",
	"lg":   "12px",
	"xl":   "16px",
	"full": "9999px",
}

var defaultShadow = map[string]string{
	"sm": "0 2px 4px -1px rgb(0 0 0 / 0.06), 0 1px 2px -1px rgb(0 0 0 / 0.04)",
	"md": "0 4px 8px -2px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.06)",
	"lg": "0 12px 16px -4px rgb(0 0 0 / 0.08), 0 4px 6px -2px rgb(0 0 0 / 0.03)",
	"xl": "0 20px 24px -4px rgb(0 0 0 / 0.08), 0 8px 8px -4px rgb(0 0 0 / 0.03)",
}

var defaultWeight = map[string]string{
	"thin":     "100",
	"light":    "300",
	"normal":   "400",
	"medium":   "500",
	"semibold": "600",
	"bold":     "700",
	"black":    "900",
}

var colorSteps = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

var colorScales = map[string][]string{
	"gray":   {"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280", "#4b5563", "#374151", "#1f2937", "#111827"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"yellow": {"#fefce8", "#fef9c3", "#fef08a", "#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
}

// Default returns a fresh table with the built-in design tokens.
func Default() *Table {
	t := NewTable()
	for name, v := range defaultSpacing {
		t.Set(Spacing, name, v)
	}
	for name, v := range defaultFont {
		t.Set(Font, name, v)
	}
	for name, v := range defaultRadius {
		t.Set(Radius, name, v)
	}
	for name, v := range defaultShadow {
		t.Set(Shadow, name, v)
	}
	for name, v := range defaultWeight {
		t.Set(Weight, name, v)
	}

	t.Set(Color, "white", "#ffffff")
	t.Set(Color, "black", "#000000")
	for hue, values := range colorScales {
		for i, step := range colorSteps {
			t.Set(Color, hue+"-"+step, values[i])
		}
	}
	return t
}
