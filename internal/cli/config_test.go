package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// nonexistent file: defaults apply, no error
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Listen != ":8086" {
		t.Fatalf("listen = %q", cfg.Listen)
	}
	if cfg.PolicyPath != "rbac.yaml" {
		t.Fatalf("policy_path = %q", cfg.PolicyPath)
	}
	if !cfg.UseOperatorGroups {
		t.Fatal("use_operator_groups default should be true")
	}
	if cfg.EnableCORS {
		t.Fatal("enable_cors default should be false")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
listen: ":9000"
policy_path: /etc/rbacd/rbac.yaml
use_operator_groups: false
accounts:
  - name: alice
  - name: bob
    roles: [VIEWER]
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Listen != ":9000" || cfg.PolicyPath != "/etc/rbacd/rbac.yaml" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.UseOperatorGroups {
		t.Fatal("use_operator_groups should be false")
	}
	if len(cfg.Accounts) != 2 || cfg.Accounts[1].Name != "bob" || cfg.Accounts[1].Roles[0] != "VIEWER" {
		t.Fatalf("accounts = %+v", cfg.Accounts)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("RBAC_LISTEN", ":7070")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Listen != ":7070" {
		t.Fatalf("listen = %q, want env override", cfg.Listen)
	}
}
