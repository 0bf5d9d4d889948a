package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"whitted-tracer/internal/config"
	"whitted-tracer/internal/imageout"
	"whitted-tracer/internal/scene"
	"whitted-tracer/internal/sceneio"
)

const frameDoc = `{
  "nbounces": 3,
  "rendermode": "phong",
  "camera": {
    "type": "pinhole", "width": 8, "height": 6,
    "position": [0, 0, 0], "lookAt": [0, 0, 1], "upVector": [0, 1, 0],
    "fov": 60, "exposure": 1
  },
  "scene": {
    "backgroundcolor": [0, 0, 0],
    "lightsources": [{"type": "pointlight", "position": [0, 5, 0], "intensity": [1, 1, 1]}],
    "shapes": [
      {"type": "sphere", "center": [0, 0, 5], "radius": 1,
       "material": {"diffusecolor": [0.9, 0.2, 0.2], "specularcolor": [1, 1, 1], "specularexponent": 16}}
    ]
  }
}`

func writeFrames(t *testing.T, docs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, doc := range docs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newTestConfig(t *testing.T, cfg config.Config) Config {
	t.Helper()
	cfg.Resolve(config.Flags{})
	bc, err := NewConfig(cfg, nil)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	return bc
}

func TestDiscover(t *testing.T) {
	dir := writeFrames(t, map[string]string{
		"frame_0002.json": frameDoc,
		"frame_0001.json": frameDoc,
		"notes.json":      "{}",
	})
	frames, err := Discover(dir, "")
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("Expected 2 frames, got %d", len(frames))
	}
	if frames[0].Name != "frame_0001" || frames[1].Name != "frame_0002" {
		t.Errorf("unexpected order %+v", frames)
	}

	if _, err := Discover(dir, "["); err == nil {
		t.Error("Expected bad pattern error")
	}
}

func TestRunWritesImagesAndManifest(t *testing.T) {
	broken := strings.Replace(frameDoc, `"type": "sphere"`, `"type": "torus"`, 1)
	dir := writeFrames(t, map[string]string{
		"frame_0001.json": frameDoc,
		"frame_0002.json": broken,
		"frame_0003.json": frameDoc,
	})
	out := filepath.Join(t.TempDir(), "out")
	cfg := newTestConfig(t, config.Config{OutputDir: out, Preview: 4, FrameWorkers: 2, Workers: 2})

	frames, err := Discover(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	results := Run(context.Background(), cfg, frames)
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	for _, i := range []int{0, 2} {
		r := results[i]
		if !r.Success {
			t.Fatalf("frame %s failed: %s", r.Name, r.Error)
		}
		for _, p := range []string{r.Image, r.Preview} {
			if _, err := os.Stat(p); err != nil {
				t.Errorf("missing output %s: %v", p, err)
			}
		}
	}
	if r := results[1]; r.Success || !strings.Contains(r.Error, "shape 0") {
		t.Errorf("Expected configuration failure for frame_0002, got %+v", r)
	}

	m := NewManifest(cfg, results)
	if m.Rendered != 2 || m.Failed != 1 {
		t.Errorf("Expected 2 rendered / 1 failed, got %d / %d", m.Rendered, m.Failed)
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		t.Errorf("invalid run id %q: %v", m.RunID, err)
	}
	if m.Frames[0].Image != "frame_0001.png" {
		t.Errorf("Expected relative image path, got %q", m.Frames[0].Image)
	}

	path := filepath.Join(out, "manifest.json")
	if err := WriteManifest(path, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var back Manifest
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if back.RunID != m.RunID || len(back.Frames) != 3 || back.Frames[1].Error == "" {
		t.Errorf("unexpected manifest %+v", back)
	}
}

func TestRenderFrameBinaryPGM(t *testing.T) {
	dir := writeFrames(t, map[string]string{"frame_0001.json": frameDoc})
	out := t.TempDir()
	cfg := newTestConfig(t, config.Config{OutputDir: out, Format: "ppm", RenderMode: "binary"})

	r := RenderFrame(context.Background(), cfg, NewFrame(filepath.Join(dir, "frame_0001.json")))
	if !r.Success {
		t.Fatalf("RenderFrame: %s", r.Error)
	}
	data, err := os.ReadFile(r.Image)
	if err != nil {
		t.Fatal(err)
	}
	header := "P5\n8 6\n255\n"
	if !bytes.HasPrefix(data, []byte(header)) || len(data) != len(header)+8*6 {
		t.Fatalf("unexpected PGM output (%d bytes)", len(data))
	}
	pix := data[len(header):]
	if pix[3*8+4] != 255 || pix[0] != 0 {
		t.Errorf("Expected white centre and black corner, got %d / %d", pix[3*8+4], pix[0])
	}
}

func TestRenderFrameDepthOverride(t *testing.T) {
	dir := writeFrames(t, map[string]string{"frame_0001.json": frameDoc})
	depth := 0
	cfg := newTestConfig(t, config.Config{OutputDir: t.TempDir(), MaxDepth: &depth})

	opts, err := cfg.renderOptions(mustLoad(t, cfg, filepath.Join(dir, "frame_0001.json")))
	if err != nil {
		t.Fatal(err)
	}
	if opts.Tracer.MaxDepth != 0 {
		t.Errorf("Expected depth override 0, got %d", opts.Tracer.MaxDepth)
	}
}

func TestRenderFrameCancelled(t *testing.T) {
	dir := writeFrames(t, map[string]string{"frame_0001.json": frameDoc})
	cfg := newTestConfig(t, config.Config{OutputDir: t.TempDir()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := RenderFrame(ctx, cfg, NewFrame(filepath.Join(dir, "frame_0001.json")))
	if r.Success || !strings.Contains(r.Error, "interrupted") {
		t.Errorf("Expected interrupted render, got %+v", r)
	}
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"format", config.Config{Format: "gif"}},
		{"shadow mode", config.Config{ShadowMode: "soft"}},
		{"render mode", config.Config{RenderMode: "wire"}},
		{"shadow factor", config.Config{ShadowFactor: ptr(2.0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Resolve(config.Flags{})
			if _, err := NewConfig(tt.cfg, nil); err == nil {
				t.Error("Expected error")
			}
		})
	}

	cfg := config.Config{ShadowMode: "soft"}
	cfg.Resolve(config.Flags{})
	if _, err := NewConfig(cfg, nil); !errors.Is(err, scene.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewConfigFormat(t *testing.T) {
	cfg := newTestConfig(t, config.Config{Format: "webp"})
	if cfg.Format != imageout.WebP {
		t.Errorf("Expected webp, got %q", cfg.Format)
	}
	if cfg.outputPath("frame_0001") != "frame_0001.webp" {
		t.Errorf("unexpected output path %q", cfg.outputPath("frame_0001"))
	}
}

func mustLoad(t *testing.T, cfg Config, path string) *sceneio.Job {
	t.Helper()
	job, err := sceneio.Load(path, cfg.Load)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return job
}

func ptr[T any](v T) *T { return &v }
