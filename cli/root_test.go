package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soocke/rti-preview/config"
)

type captured struct {
	cfg    *config.Config
	logger *slog.Logger
	calls  int
}

func (c *captured) run(cfg *config.Config, logger *slog.Logger) error {
	c.cfg, c.logger = cfg, logger
	c.calls++
	return nil
}

func execute(t *testing.T, args ...string) (*captured, *bytes.Buffer, error) {
	t.Helper()
	got := &captured{}
	out := &bytes.Buffer{}
	cmd := NewRootCmd(out, got.run)
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return got, out, cmd.Execute()
}

func TestRootCmd_Defaults(t *testing.T) {
	dir := t.TempDir()
	got, _, err := execute(t, "--config", filepath.Join(dir, "none.json"), "--env-file", filepath.Join(dir, "none.env"))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.calls != 1 || got.cfg == nil {
		t.Fatalf("runner not called: %+v", got)
	}
	if got.cfg.FrameTimeoutMs != 50 || got.cfg.Camera != config.CameraScreen || got.cfg.Debug {
		t.Fatalf("unexpected defaults %+v", got.cfg)
	}
}

func TestRootCmd_PrecedenceFileEnvFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cfg.json")
	file := config.DefaultConfig()
	file.FrameTimeoutMs = 40
	file.SelectCorner = 9
	file.JPEGQuality = 70
	if err := file.Save(cfgPath); err != nil {
		t.Fatalf("save: %v", err)
	}
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("PREVIEW_SELECT_CORNER=11\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("PREVIEW_SELECT_CORNER", "")
	os.Unsetenv("PREVIEW_SELECT_CORNER")
	t.Setenv("PREVIEW_JPEG_QUALITY", "60")
	t.Setenv("PREVIEW_CAMERA", config.CameraGDI)

	frames := filepath.Join(dir, "frames")
	got, _, err := execute(t, "--config", cfgPath, "--env-file", envPath, "--camera", "dir", "--camera-dir", frames, "--live")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	c := got.cfg
	if c.FrameTimeoutMs != 40 {
		t.Fatalf("file value lost: %d", c.FrameTimeoutMs)
	}
	if c.SelectCorner != 11 {
		t.Fatalf(".env should override file: %d", c.SelectCorner)
	}
	if c.JPEGQuality != 60 {
		t.Fatalf("environment should override file: %d", c.JPEGQuality)
	}
	if c.Camera != config.CameraDir || c.CameraDir != frames || !c.StartLive {
		t.Fatalf("flags should override environment: %+v", c)
	}
}

func TestRootCmd_InvalidCamera(t *testing.T) {
	dir := t.TempDir()
	got, _, err := execute(t, "--config", filepath.Join(dir, "none.json"), "--env-file", "", "--camera", "webcam")
	if err == nil {
		t.Fatalf("expected error for unknown camera")
	}
	if got.calls != 0 {
		t.Fatalf("runner should not be called on invalid config")
	}
}

func TestRootCmd_DebugLoggerAndSession(t *testing.T) {
	dir := t.TempDir()
	got, out, err := execute(t, "--config", filepath.Join(dir, "none.json"), "--env-file", "", "--debug")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !got.cfg.Debug {
		t.Fatalf("--debug not applied")
	}
	log := out.String()
	if !strings.Contains(log, `"msg":"config resolved"`) || !strings.Contains(log, `"session":"`) {
		t.Fatalf("expected debug line with session id, got %s", log)
	}
}

func TestRootCmd_SaveWritesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "out.json")
	if _, _, err := execute(t, "--config", cfgPath, "--env-file", "", "--camera", "gdi", "--save"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	saved, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("load saved: %v", err)
	}
	if saved.Camera != config.CameraGDI {
		t.Fatalf("saved camera = %q", saved.Camera)
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info logger should drop debug lines: %s", buf.String())
	}
	NewLogger(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug logger should emit debug lines")
	}
}
