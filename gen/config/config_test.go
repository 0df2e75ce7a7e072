package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firestore-gen.yaml")
	content := `input: mobile/google-services.json
output: build/generated/FirestoreConfig.java
javaPackage: com.example.mobile
className: MobileConfig
builtins:
  - printer
  - system/
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.EqualValues(t, &Config{
		Input:       "mobile/google-services.json",
		Output:      "build/generated/FirestoreConfig.java",
		JavaPackage: "com.example.mobile",
		ClassName:   "MobileConfig",
		Builtins:    []string{"printer", "system/"},
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: [unterminated"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestConfig_Init(t *testing.T) {
	cfg := &Config{}
	cfg.Init()
	assert.EqualValues(t, DefaultInput, cfg.Input)
	assert.EqualValues(t, "com.google.bazel.example.android", cfg.JavaPackage)
	assert.EqualValues(t, "FirestoreConfig", cfg.ClassName)
	assert.Empty(t, cfg.Output)
	assert.EqualValues(t, []string{"*"}, cfg.Builtins)

	cfg = &Config{Input: "gs://bucket/google-services.json", ClassName: "Custom"}
	cfg.Init()
	assert.EqualValues(t, "gs://bucket/google-services.json", cfg.Input)
	assert.EqualValues(t, "Custom", cfg.ClassName)
}

func TestValidateTarget(t *testing.T) {
	var testCases = []struct {
		pkg       string
		className string
		valid     bool
	}{
		{"", "", true},
		{"com.google.bazel.example.android", "FirestoreConfig", true},
		{"app", "Config_2", true},
		{"com.example.", "Config", false},
		{"com..example", "Config", false},
		{"com.1example", "Config", false},
		{"com.example", "2Config", false},
		{"com.example", "Firestore Config", false},
		{"com.example", "Config;", false},
		{"com.example", "class", false},
		{"com.example", "var", false},
		{"com.example", "null", false},
		{"com.int.x", "Config", false},
		{"com.example.true", "Config", false},
		{"_", "Config", false},
		{"com.var.record", "Config", true},
		{"com.example", "Classic", true},
	}
	for i, tc := range testCases {
		err := ValidateTarget(tc.pkg, tc.className)
		if tc.valid {
			assert.NoError(t, err, "case %d", i)
		} else {
			assert.Error(t, err, "case %d", i)
		}
	}
}
