package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/ballot/pkg/votingsdk"
	"github.com/stretchr/testify/require"
)

func TestAuditCommandOnEmptyLedger(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"audit", "--db", filepath.Join(dir, "ballot.db")})
	require.NoError(t, cmd.Execute())

	var report votingsdk.LedgerVerifyResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	require.True(t, report.Valid)
	require.Zero(t, report.Entries)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "ballot v")
}

func TestMissingEnvFileFails(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"version", "--env-file", filepath.Join(t.TempDir(), "nope.env")})
	require.Error(t, cmd.Execute())
}
