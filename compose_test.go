package confocal

import (
	"bytes"
	"errors"
	"testing"
)

func TestComposeFigureLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetWidth, cfg.TargetHeight = 40, 30
	cfg.Padding = 7
	cfg.ShowLabels = false

	ch1 := uniformRaster(40, 30, 10)
	ch2 := uniformRaster(40, 30, 20)
	merged := uniformRaster(40, 30, 30)

	fig, err := ComposeFigure(ch1, ch2, merged, cfg, "row", true)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if fig.Width != 40*3+7*2 || fig.Height != 30 {
		t.Fatalf("figure %dx%d, want 134x30", fig.Width, fig.Height)
	}

	probes := []struct {
		name string
		x, y int
		want uint8
	}{
		{name: "channel 1 panel", x: 0, y: 0, want: 10},
		{name: "padding after channel 1", x: 43, y: 15, want: 255},
		{name: "channel 2 panel", x: 47, y: 29, want: 20},
		{name: "padding after channel 2", x: 90, y: 0, want: 255},
		{name: "merged panel", x: 94, y: 0, want: 30},
		{name: "merged bottom-right", x: 133, y: 29, want: 30},
	}
	for _, tc := range probes {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			i := fig.PixOffset(tc.x, tc.y)
			if fig.Pix[i] != tc.want || fig.Pix[i+1] != tc.want || fig.Pix[i+2] != tc.want {
				t.Fatalf("pixel (%d,%d) = %v, want gray %d", tc.x, tc.y, fig.Pix[i:i+4], tc.want)
			}
		})
	}
}

func TestComposeFigureRowLabel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetWidth, cfg.TargetHeight = 120, 60
	cfg.Padding = 4
	cfg.RowLabelFontSize = 16

	dark := uniformRaster(120, 60, 0)

	labeled, err := ComposeFigure(dark, dark, dark, cfg, "t = 5 min", false)
	if err != nil {
		t.Fatalf("labeled: %v", err)
	}
	cfg.ShowLabels = false
	plain, err := ComposeFigure(dark, dark, dark, cfg, "t = 5 min", false)
	if err != nil {
		t.Fatalf("plain: %v", err)
	}
	if bytes.Equal(labeled.Pix, plain.Pix) {
		t.Fatal("row label drew nothing")
	}

	// White glyph pixels near the bottom-left anchor.
	found := false
	for y := labeled.Height - 2*cfg.RowLabelFontSize; y < labeled.Height && !found; y++ {
		for x := 0; x < cfg.TargetWidth && !found; x++ {
			i := labeled.PixOffset(x, y)
			if labeled.Pix[i] > 200 && labeled.Pix[i+1] > 200 && labeled.Pix[i+2] > 200 {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("no bright glyph pixels near the bottom-left corner")
	}
}

func TestComposeFigureColumnLabels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetWidth, cfg.TargetHeight = 120, 60
	cfg.Padding = 4
	cfg.ColumnLabelFontSize = 14

	dark := uniformRaster(120, 60, 0)

	first, err := ComposeFigure(dark, dark, dark, cfg, "", true)
	if err != nil {
		t.Fatalf("first row: %v", err)
	}
	later, err := ComposeFigure(dark, dark, dark, cfg, "", false)
	if err != nil {
		t.Fatalf("later row: %v", err)
	}
	if bytes.Equal(first.Pix, later.Pix) {
		t.Fatal("column labels drew nothing on the first row")
	}

	// Each panel gets its own label near the top-left inset.
	step := cfg.TargetWidth + cfg.Padding
	for panel := 0; panel < 3; panel++ {
		found := false
		for y := 0; y < labelInset+2*cfg.ColumnLabelFontSize && !found; y++ {
			for x := panel * step; x < panel*step+cfg.TargetWidth && !found; x++ {
				if i := first.PixOffset(x, y); first.Pix[i] > 200 {
					found = true
				}
			}
		}
		if !found {
			t.Fatalf("panel %d has no column label", panel+1)
		}
	}

	// Anything but exactly three labels draws none.
	cfg.ColumnLabels = []string{"GFP", "RFP"}
	pair, err := ComposeFigure(dark, dark, dark, cfg, "", true)
	if err != nil {
		t.Fatalf("two labels: %v", err)
	}
	if !bytes.Equal(pair.Pix, later.Pix) {
		t.Fatal("incomplete column labels should draw nothing")
	}
}

func TestComposeFigureRejectsBadPanels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetWidth, cfg.TargetHeight = 20, 20

	ok := uniformRaster(20, 20, 0)
	bad := uniformRaster(19, 20, 0)

	if _, err := ComposeFigure(ok, bad, ok, cfg, "", false); !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}

	cfg.Padding = -1
	if _, err := ComposeFigure(ok, ok, ok, cfg, "", false); !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("got %v, want ErrDegenerateGeometry", err)
	}
}
