package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pubkit/pubfig/pkg/figure"
	"github.com/pubkit/pubfig/pkg/figure/styles"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		format string
		multi  bool
		want   string
	}{
		{"default pdf", "", "pdf", false, "plot.pdf"},
		{"default svg", "", "svg", false, "plot.svg"},
		{"explicit single", "fig.pdf", "pdf", false, "fig.pdf"},
		{"multi replaces extension", "fig.pdf", "svg", true, "fig.svg"},
		{"multi without extension", "fig", "png", true, "fig.png"},
		{"default multi", "", "tex", true, "plot.tex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.format, tt.multi)
			if got != tt.want {
				t.Errorf("outputPath(%q, %q, %v) = %q, want %q",
					tt.output, tt.format, tt.multi, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to pdf", "", []string{"pdf"}},
		{"single", "svg", []string{"svg"}},
		{"several", "pdf,svg,png", []string{"pdf", "svg", "png"}},
		{"whitespace and case", " PDF , Svg ", []string{"pdf", "svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"pdf", "svg", "png", "tex"}); err != nil {
		t.Errorf("validateFormats() error for valid formats: %v", err)
	}
	if err := validateFormats([]string{"pdf", "bmp"}); err == nil {
		t.Error("validateFormats() should reject unknown format")
	}
}

func TestResolveStyleDefault(t *testing.T) {
	style, err := resolveStyle("", 1.0)
	if err != nil {
		t.Fatalf("resolveStyle() error: %v", err)
	}
	if style != styles.Default() {
		t.Errorf("resolveStyle(\"\", 1.0) = %+v, want defaults", style)
	}
}

func TestResolveStyleScaled(t *testing.T) {
	style, err := resolveStyle("", 2.0)
	if err != nil {
		t.Fatalf("resolveStyle() error: %v", err)
	}
	if style.BaseSize != 2*styles.Default().BaseSize {
		t.Errorf("BaseSize = %v, want doubled default", style.BaseSize)
	}
	// Line width is geometry, not typography; scaling leaves it alone.
	if style.LineWidth != styles.Default().LineWidth {
		t.Errorf("LineWidth = %v, should not scale", style.LineWidth)
	}
}

func TestResolveStyleInvalidScale(t *testing.T) {
	if _, err := resolveStyle("", 0); err == nil {
		t.Error("resolveStyle() should reject zero font scale")
	}
	if _, err := resolveStyle("", -1); err == nil {
		t.Error("resolveStyle() should reject negative font scale")
	}
}

func TestResolveStyleFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte("base_size = 14.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	style, err := resolveStyle(path, 1.0)
	if err != nil {
		t.Fatalf("resolveStyle() error: %v", err)
	}
	if style.BaseSize != 14.0 {
		t.Errorf("BaseSize = %v, want 14.0 from config", style.BaseSize)
	}
	if style.TickSize != styles.Default().TickSize {
		t.Errorf("TickSize = %v, unset keys should keep defaults", style.TickSize)
	}
}

func TestResolveStyleMissingConfig(t *testing.T) {
	if _, err := resolveStyle(filepath.Join(t.TempDir(), "nope.toml"), 1.0); err == nil {
		t.Error("resolveStyle() should fail for missing config file")
	}
}

func TestDemoSeries(t *testing.T) {
	xs, ys := demoSeries(100)
	if len(xs) != 100 || len(ys) != 100 {
		t.Fatalf("demoSeries(100) lengths = %d, %d", len(xs), len(ys))
	}
	if xs[0] != 0 {
		t.Errorf("first sample x = %v, want 0", xs[0])
	}
	if xs[99] != 10 {
		t.Errorf("last sample x = %v, want 10", xs[99])
	}
	// sin(0)*cos(0) = 0
	if ys[0] != 0 {
		t.Errorf("first sample y = %v, want 0", ys[0])
	}
}

func TestFillDemo(t *testing.T) {
	fig, err := figure.New(styles.Default(), figure.GridShape{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("figure.New() error: %v", err)
	}
	if err := fillDemo(fig); err != nil {
		t.Fatalf("fillDemo() error: %v", err)
	}

	for _, p := range fig.Panels() {
		if p.XLabel() != "$t$, сек" {
			t.Errorf("XLabel = %q, want %q", p.XLabel(), "$t$, сек")
		}
		if p.YLabel() != "$A$, рад" {
			t.Errorf("YLabel = %q, want %q", p.YLabel(), "$A$, рад")
		}
	}
}
