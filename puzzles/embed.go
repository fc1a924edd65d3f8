package puzzles

import (
	"embed"
	"strings"
)

//go:embed samples/*.nono
var assets embed.FS

// Samples returns the embedded demo puzzles, one encoded puzzle per
// element.
func Samples() []string {
	var out []string
	ents, err := assets.ReadDir("samples")
	if err != nil {
		// The directory is embedded at build time; this should not fail.
		return nil
	}
	for _, e := range ents {
		data, err := assets.ReadFile("samples/" + e.Name())
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			out = append(out, line)
		}
	}
	return out
}
