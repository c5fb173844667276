package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SheetName != "Condos" {
		t.Errorf("sheet name = %q, want default Condos", cfg.SheetName)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Port)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
spreadsheet_id: sheet-123
sheet_name: Dati_Condomini
maps_api_key: maps-key
s3_bucket: condo-photos
aws_region: eu-south-1
port: 9090
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SpreadsheetID != "sheet-123" {
		t.Errorf("spreadsheet id = %q, want sheet-123", cfg.SpreadsheetID)
	}
	if cfg.SheetName != "Dati_Condomini" {
		t.Errorf("sheet name = %q, want Dati_Condomini", cfg.SheetName)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if !cfg.UploadEnabled() {
		t.Error("expected uploads enabled")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "spreadsheet_id: from-file\n")
	t.Setenv("CR_SPREADSHEET_ID", "from-env")
	t.Setenv("CR_PORT", "7000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SpreadsheetID != "from-env" {
		t.Errorf("spreadsheet id = %q, want from-env", cfg.SpreadsheetID)
	}
	if cfg.Port != 7000 {
		t.Errorf("port = %d, want 7000", cfg.Port)
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "port: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestValidateStore(t *testing.T) {
	if err := (Config{}).ValidateStore(); err == nil {
		t.Error("expected error without spreadsheet id")
	}
	if err := (Config{SpreadsheetID: "x"}).ValidateStore(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestUploadDisabledWithoutBucket(t *testing.T) {
	if (Config{AWSRegion: "eu-south-1"}).UploadEnabled() {
		t.Error("expected uploads disabled without bucket")
	}
}
