package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	report2docx "github.com/alnah/go-report2docx"
	"github.com/alnah/go-report2docx/internal/config"
)

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clinic.yaml")
	yaml := "report:\n  title: 클리닉 리포트\n  fontSize: 12\ngeneration:\n  model: from-config\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("config from environment", func(t *testing.T) {
		t.Setenv("REPORT2DOCX_CONFIG", path)
		t.Setenv("REPORT2DOCX_MODEL", "from-env")
		t.Setenv("REPORT2DOCX_OUTPUT_DIR", "/reports")

		var stderr bytes.Buffer
		s, err := loadSettings(commonFlags{}, &stderr)
		if err != nil {
			t.Fatalf("loadSettings() error = %v", err)
		}
		if s.cfg.Report.Title != "클리닉 리포트" || s.cfg.Report.FontSize != 12 {
			t.Errorf("report = %+v", s.cfg.Report)
		}
		if s.cfg.Generation.Model != "from-config" {
			t.Errorf("Model = %q, config file should win over env", s.cfg.Generation.Model)
		}
		if s.cfg.Output.DefaultDir != "/reports" {
			t.Errorf("DefaultDir = %q, want /reports", s.cfg.Output.DefaultDir)
		}
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv("REPORT2DOCX_CONFIG", filepath.Join(dir, "missing.yaml"))

		var stderr bytes.Buffer
		if _, err := loadSettings(commonFlags{config: path}, &stderr); err != nil {
			t.Fatalf("loadSettings() error = %v", err)
		}
	})

	t.Run("missing named config adds hint", func(t *testing.T) {
		t.Chdir(dir)
		var stderr bytes.Buffer
		_, err := loadSettings(commonFlags{config: "nowhere"}, &stderr)
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint: use --config") {
			t.Errorf("error = %q, want hint", err)
		}
	})
}

func TestMergeLayoutFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Report.Title = "from config"
	cfg.Report.Font = "Noto Sans KR"

	mergeLayoutFlags(layoutFlags{title: "from flag", tableWidth: 6}, cfg)

	want := config.ReportConfig{Title: "from flag", Font: "Noto Sans KR", TableWidth: 6}
	if diff := cmp.Diff(want, cfg.Report); diff != "" {
		t.Errorf("Report mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererOptions(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Report = config.ReportConfig{
		Title:          "식단 리포트",
		FontSize:       11,
		TableWidth:     6,
		FileNamePrefix: "clinic",
		DateFormat:     "iso",
	}
	now := func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }

	r, err := report2docx.NewRenderer(rendererOptions(cfg, zap.NewNop(), now)...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	res, err := r.Render(report2docx.Input{Report: "| a | b |"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if res.FileName != "clinic_2026-10-19.docx" {
		t.Errorf("FileName = %q, want clinic_2026-10-19.docx", res.FileName)
	}
	if res.Document.Title.Text != "식단 리포트" {
		t.Errorf("Title = %q", res.Document.Title.Text)
	}
	if res.Document.FontSize != 11 {
		t.Errorf("FontSize = %v, want 11", res.Document.FontSize)
	}
	if res.Document.Font.Name != report2docx.DefaultFont {
		t.Errorf("Font = %q, want default", res.Document.Font.Name)
	}
}
