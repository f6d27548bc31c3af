// Package labelfont loads the embedded bold typefaces used for figure labels.
//
// Figures must render identically on every machine, so only fonts compiled
// into the binary are offered; there is no system font lookup.
package labelfont

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Embedded families. Unknown names resolve to FamilyGo.
const (
	FamilyGo     = "go"
	FamilyGoMono = "go mono"
)

var (
	fontMu    sync.Mutex
	fontCache = map[string]*sfnt.Font{}
)

func parsed(name string, ttf []byte) (*sfnt.Font, error) {
	fontMu.Lock()
	defer fontMu.Unlock()
	if f, ok := fontCache[name]; ok {
		return f, nil
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	fontCache[name] = f
	return f, nil
}

// Face returns a bold face of the requested family at size pixels. Faces keep
// per-use rasterizer state and are not safe for concurrent use, so each call
// constructs a fresh one over the cached parsed font.
func Face(family string, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	name := FamilyGo
	ttf := gobold.TTF
	switch strings.ToLower(strings.TrimSpace(family)) {
	case FamilyGoMono, "gomono", "mono":
		name = FamilyGoMono
		ttf = gomonobold.TTF
	}
	f, err := parsed(name, ttf)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s %v: %w", name, size, err)
	}
	return face, nil
}
