package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/firestore-gen/gen"
	"github.com/viant/firestore-gen/gen/credentials"
)

// setup captures command output and runs the test from a working directory
// holding android/google-services.json when withInput is set.
func setup(t *testing.T, withInput bool) (*bytes.Buffer, string) {
	t.Helper()
	resetSingletons()
	t.Cleanup(resetSingletons)

	var out bytes.Buffer
	stdout = &out
	t.Cleanup(func() { stdout = os.Stdout })

	dir := t.TempDir()
	if withInput {
		data, err := os.ReadFile("testdata/google-services.json")
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "android"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "android", "google-services.json"), data, 0o644))
	}
	golden, err := filepath.Abs("testdata/FirestoreConfig.java.golden")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return &out, golden
}

func TestRunE_NoArguments(t *testing.T) {
	out, golden := setup(t, true)
	want, err := os.ReadFile(golden)
	require.NoError(t, err)

	require.NoError(t, RunE(nil))
	if diff := cmp.Diff(string(want), out.String()); diff != "" {
		t.Fatalf("generated source mismatch (-want +got):\n%s", diff)
	}
}

func TestRunE_Generate(t *testing.T) {
	out, _ := setup(t, true)
	require.NoError(t, RunE([]string{"generate", "--class", "CliConfig", "--package", "com.example.cli"}))
	assert.Contains(t, out.String(), "package com.example.cli;")
	assert.Contains(t, out.String(), "public final class CliConfig {")
	assert.Contains(t, out.String(), `.setStorageBucket("myproj.appspot.com").build();`)
}

func TestRunE_GenerateToFile(t *testing.T) {
	out, _ := setup(t, true)
	require.NoError(t, RunE([]string{"generate", "-o", "build/FirestoreConfig.java"}))
	assert.Zero(t, out.Len())

	data, err := os.ReadFile(filepath.Join("build", "FirestoreConfig.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `.setApplicationId("1:123:android:abc")`)
}

func TestRunE_ConfigFile(t *testing.T) {
	out, _ := setup(t, true)
	cfg := "input: android/google-services.json\nclassName: ConfiguredConfig\n"
	require.NoError(t, os.WriteFile("firestore-gen.yaml", []byte(cfg), 0o644))

	require.NoError(t, RunE([]string{"-f", "firestore-gen.yaml"}))
	assert.Contains(t, out.String(), "public final class ConfiguredConfig {")
}

func TestRunE_Failures(t *testing.T) {
	out, _ := setup(t, false)
	err := RunE(nil)
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, gen.ErrInputNotFound), err.Error())
		assert.Contains(t, err.Error(), "android/google-services.json")
	}
	assert.Zero(t, out.Len())

	resetSingletons()
	require.NoError(t, os.MkdirAll("android", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("android", "google-services.json"), []byte(`{"client": [`), 0o644))
	err = RunE(nil)
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, credentials.ErrMalformedInput), err.Error())
	}
	assert.Zero(t, out.Len())

	resetSingletons()
	require.NoError(t, os.WriteFile(filepath.Join("android", "google-services.json"), []byte(`{"client": [], "project_info": {}}`), 0o644))
	err = RunE(nil)
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, credentials.ErrMissingField), err.Error())
		assert.Contains(t, err.Error(), "client[0]")
	}
	assert.Zero(t, out.Len())
}

func TestRunE_ConfigFileForms(t *testing.T) {
	cfg := "className: ConfiguredConfig\n"
	for i, args := range [][]string{
		{"-ffirestore-gen.yaml"},
		{"--config=firestore-gen.yaml"},
		{"generate", "-f", "firestore-gen.yaml"},
	} {
		out, _ := setup(t, true)
		require.NoError(t, os.WriteFile("firestore-gen.yaml", []byte(cfg), 0o644))
		require.NoError(t, RunE(args), "case %d", i)
		assert.Contains(t, out.String(), "public final class ConfiguredConfig {", "case %d", i)
	}
}

func TestRunE_RunWorkflow(t *testing.T) {
	location, err := filepath.Abs(filepath.Join("testdata", "build.yaml"))
	require.NoError(t, err)
	out, _ := setup(t, true)

	require.NoError(t, RunE([]string{"run", "-l", location, "--timeout", "30"}))
	assert.Contains(t, out.String(), "public final class CliWorkflowConfig {")
}

func TestRunE_RunWorkflowErrors(t *testing.T) {
	out, _ := setup(t, true)
	assert.Error(t, RunE([]string{"run", "-l", "missing.yaml"}))
	assert.Error(t, RunE([]string{"run", "-l", "missing.yaml", "-s", "{not json"}))
	assert.Zero(t, out.Len())
}

func TestRunE_ListActions(t *testing.T) {
	out, _ := setup(t, true)
	require.NoError(t, RunE([]string{"list-actions"}))
	text := out.String()
	assert.True(t, strings.HasPrefix(text, "firestore/config (generator)\n"), text)
	assert.Contains(t, text, "  generate\t[tool firestore_config-generate]\t")
	assert.Contains(t, text, "\nprinter\n")
	assert.Contains(t, text, "\nsystem/exec\n")
}

func TestRunE_ListActionsJSON(t *testing.T) {
	out, _ := setup(t, true)
	require.NoError(t, RunE([]string{"list-actions", "--json"}))

	var entries []actionEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.NotEmpty(t, entries)
	assert.EqualValues(t, actionEntry{
		Service:     "firestore/config",
		Method:      "generate",
		Description: "Generate the FirestoreConfig Java source from a google-services.json document",
		Tool:        "firestore_config-generate",
	}, entries[0])
	for _, entry := range entries[1:] {
		assert.Empty(t, entry.Tool, entry.Service)
	}
}

func TestRunE_UnknownFlag(t *testing.T) {
	out, _ := setup(t, true)
	assert.Error(t, RunE([]string{"generate", "--unknown"}))
	assert.Zero(t, out.Len())
}

func TestRunE_ShowJSON(t *testing.T) {
	out, _ := setup(t, true)
	require.NoError(t, RunE([]string{"show", "--json"}))

	var project credentials.Project
	require.NoError(t, json.Unmarshal(out.Bytes(), &project))
	assert.EqualValues(t, "myproj", project.ProjectID)
	assert.EqualValues(t, "1:123:android:abc", project.ApplicationID)
	assert.EqualValues(t, "AIza***", project.APIKey)
}

func TestRunE_ShowReveal(t *testing.T) {
	out, _ := setup(t, true)
	require.NoError(t, RunE([]string{"show", "--reveal"}))
	assert.Contains(t, out.String(), "APIKey        : AIzaKey\n")
	assert.Contains(t, out.String(), "StorageBucket : myproj.appspot.com\n")
}

func TestRunE_Action(t *testing.T) {
	out, _ := setup(t, true)
	require.NoError(t, RunE([]string{"action"}))
	assert.Contains(t, out.String(), "Service : firestore/config\n")
	assert.Contains(t, out.String(), "Method  : generate\n")
	assert.Contains(t, out.String(), "Input   : *gen.Request\n")
	assert.Contains(t, out.String(), "ClassName string")
}

func TestFirstCommand(t *testing.T) {
	cases := []struct {
		args []string
		out  string
	}{
		{nil, ""},
		{[]string{"show", "--json"}, "show"},
		{[]string{"-f", "generate.yaml", "serve"}, "serve"},
		{[]string{"--log-level", "debug", "generate"}, "generate"},
		{[]string{"--config=cfg.yaml", "run", "-l", "build.yaml"}, "run"},
		{[]string{"-f", "cfg.yaml"}, ""},
		{[]string{"--", "show"}, ""},
	}
	for i, tc := range cases {
		assert.EqualValues(t, tc.out, firstCommand(tc.args), "case %d", i)
	}
}

func TestMask(t *testing.T) {
	assert.EqualValues(t, "", mask(""))
	assert.EqualValues(t, "***", mask("abc"))
	assert.EqualValues(t, "****", mask("AIza"))
	assert.EqualValues(t, "AIza****", mask("AIzaSyAB"))
}
