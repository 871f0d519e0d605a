package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/proctex"
)

func TestSampleGraphRenders(t *testing.T) {
	data, err := sampleGraph()
	if err != nil {
		t.Fatal(err)
	}
	def, err := proctex.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	img, err := def.PixelsRGB(64, 64, false, 1)
	if err != nil {
		t.Fatalf("PixelsRGB: %v", err)
	}
	if len(img.Pix) != 64*64 {
		t.Errorf("got %d pixels", len(img.Pix))
	}
}

func TestParseIDs(t *testing.T) {
	tests := []struct {
		args    []string
		want    []int
		wantErr bool
	}{
		{[]string{"1", "20"}, []int{1, 20}, false},
		{nil, nil, true},
		{[]string{"x"}, nil, true},
		{[]string{"-3"}, nil, true},
	}
	for _, tt := range tests {
		got, err := parseIDs(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseIDs(%v) error = %v", tt.args, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseIDs(%v) = %v, want %v", tt.args, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseIDs(%v) = %v, want %v", tt.args, got, tt.want)
			}
		}
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PROCTEX_WIDTH", "64")
	t.Setenv("PROCTEX_SMALL", "true")
	t.Setenv("PROCTEX_LOG_LEVEL", "DEBUG")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 64 || cfg.Height != 256 {
		t.Errorf("size = %dx%d, want 64x256", cfg.Width, cfg.Height)
	}
	if !cfg.Small {
		t.Error("Small = false")
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.Workers <= 0 {
		t.Errorf("Workers = %d, want GOMAXPROCS", cfg.Workers)
	}
}

func TestRunSampleAndRender(t *testing.T) {
	t.Cleanup(func() { proctex.SetLogger(nil) })
	dir := t.TempDir()
	if err := run([]string{"sample", filepath.Join(dir, "7.ptx")}); err != nil {
		t.Fatalf("sample: %v", err)
	}
	out := filepath.Join(dir, "out")
	if err := run([]string{"render", "-dir", dir, "-out", out, "-width", "32", "-height", "32", "7"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "7.png")); err != nil {
		t.Errorf("output missing: %v", err)
	}
	if err := run([]string{"render", "-dir", dir, "-out", out, "8"}); err == nil {
		t.Error("render of a missing texture succeeded")
	}
}
