package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestReadConfig(t *testing.T) {
	var (
		err         error
		projectRoot string
	)

	// Get the project root by going up from internal/config
	projectRoot, err = filepath.Abs("../../")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	configPath := filepath.Join(projectRoot, "etc") + string(filepath.Separator)

	var cfg Config

	cfg, err = ReadConfig(configPath)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	// Test basic config fields
	if cfg.Title == "" {
		t.Error("Config.Title should not be empty")
	}

	if cfg.Webserver.Port == 0 {
		t.Error("Webserver.Port should not be 0")
	}

	if cfg.Webserver.URL == "" {
		t.Error("Webserver.URL should not be empty")
	}

	// Test DB config
	if cfg.DB.GormEngine == "" {
		t.Error("DB.GormEngine should not be empty")
	}

	if cfg.Log.AppName == "" {
		t.Error("Log.AppName should not be empty")
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				DevMode: true,
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: false,
		},
		{
			name: "valid config with token",
			config: Config{
				Webserver: Webserver{
					Port:     8080,
					URL:      "http://localhost:8080",
					APIToken: "secret",
				},
			},
			wantErr: false,
		},
		{
			name: "missing port",
			config: Config{
				DevMode: true,
				Webserver: Webserver{
					Port: 0,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: true,
		},
		{
			name: "missing URL",
			config: Config{
				DevMode: true,
				Webserver: Webserver{
					Port: 8080,
					URL:  "",
				},
			},
			wantErr: true,
		},
		{
			name: "missing token outside dev mode",
			config: Config{
				Webserver: Webserver{
					Port: 8080,
					URL:  "http://localhost:8080",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaultsShutDownTime(t *testing.T) {
	cfg := Config{
		DevMode: true,
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	if err := validate(&cfg); err != nil {
		t.Fatalf("validate() error = %v", err)
	}

	// the default must land on the config the daemon keeps, not a copy
	if cfg.Webserver.ShutDownTime != 5 {
		t.Errorf("ShutDownTime = %d, want 5", cfg.Webserver.ShutDownTime)
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{
		Title: "GoGameSettings-Admin",
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	out, err := DumpConfig(cfg)
	if err != nil {
		t.Fatalf("DumpConfig() error = %v", err)
	}

	if !strings.Contains(out, "GoGameSettings-Admin") {
		t.Error("DumpConfig() output should contain the title")
	}

	jsonOut, err := DumpConfigJSON(cfg)
	if err != nil {
		t.Fatalf("DumpConfigJSON() error = %v", err)
	}

	if !strings.Contains(jsonOut, "8080") {
		t.Error("DumpConfigJSON() output should contain the port")
	}
}

func TestDecodeAndMergeConfig(t *testing.T) {
	base := Config{
		Title: "base",
		Webserver: Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
	}

	merged, err := decodeAndMergeConfig(base, `{"Title":"overridden"}`)
	if err != nil {
		t.Fatalf("decodeAndMergeConfig() error = %v", err)
	}

	if merged.Title != "overridden" {
		t.Errorf("Title = %q, want %q", merged.Title, "overridden")
	}

	// fields absent from the JSON keep their file values
	if merged.Webserver.Port != 8080 {
		t.Errorf("Port = %d, want 8080", merged.Webserver.Port)
	}

	if _, err := decodeAndMergeConfig(base, `{not json`); err == nil {
		t.Error("decodeAndMergeConfig() should fail on invalid JSON")
	}
}
