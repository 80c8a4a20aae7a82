package html

import "encoding/json"

// basePalette is the chart color cycle. It is repeated as needed for models
// with more topics than the palette has colors.
var basePalette = []string{
	"#2563eb", "#7c3aed", "#db2777", "#dc2626", "#ea580c",
	"#d97706", "#ca8a04", "#65a30d", "#16a34a", "#059669",
	"#0d9488", "#0891b2", "#0284c7", "#2563eb", "#4f46e5",
	"#7c3aed", "#9333ea", "#c026d3", "#db2777", "#e11d48",
	"#ef4444", "#f97316", "#eab308", "#84cc16", "#22c55e",
	"#14b8a6", "#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1",
	"#8b5cf6", "#a855f7", "#d946ef", "#ec4899", "#f43f5e",
	"#fb7185", "#fda4af", "#fecdd3", "#ffe4e6", "#fecaca",
	"#fed7aa", "#fef08a", "#d9f99d", "#bbf7d0", "#99f6e4",
}

// paletteJSON returns a JSON array of at least 25 colors with one color per
// topic, cycling through the base palette for large models.
func paletteJSON(topicCount int) (string, error) {
	n := topicCount
	if n < 25 {
		n = 25
	}
	colors := make([]string, n)
	for i := range colors {
		colors[i] = basePalette[i%len(basePalette)]
	}
	out, err := json.Marshal(colors)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
