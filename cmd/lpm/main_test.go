// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTableFile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "astab.txt")
	table := `10.0.0.0/8      100
10.1.0.0/16     101
10.1.2.0/24     102
192.168.0.0/16  200
2001:db8::/32   600
2001:db8:1::/48 601
`
	require.NoError(t, os.WriteFile(path, []byte(table), 0o644))
	return path
}

func TestRootCmd(t *testing.T) {
	path := writeTableFile(t)

	queries := "10.1.2.3\n10.1.3.4\n11.0.0.1\n2001:db8:1::1\n2002::1\n"
	want := "102\n101\n-\n601\n-\n"

	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetArgs([]string{"-i", path})
	cmd.SetIn(strings.NewReader(queries))
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, want, out.String())
}

func TestRootCmdMissingInput(t *testing.T) {
	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(&out)

	require.Error(t, cmd.Execute())

	// malformed invocation prints the usage on stdout
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-i,")
}

func TestRootCmdUnknownFlag(t *testing.T) {
	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetArgs([]string{"--bogus"})
	cmd.SetOut(&out)

	require.Error(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
}

func TestRootCmdInputFromEnv(t *testing.T) {
	path := writeTableFile(t)
	t.Setenv("LPM_INPUT", path)

	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetArgs([]string{})
	cmd.SetIn(strings.NewReader("10.2.0.1\n"))
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "100\n", out.String())
}

func TestRootCmdLoadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("10.0.0.0/33 100\n"), 0o644))

	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetArgs([]string{"-i", path})
	cmd.SetOut(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorContains(t, err, "10.0.0.0/33")
}

func TestRootCmdQueryError(t *testing.T) {
	path := writeTableFile(t)

	cmd := newRootCmd()
	var out strings.Builder
	cmd.SetArgs([]string{"-i", path})
	cmd.SetIn(strings.NewReader("10.1.2.3\nnot-an-address\n"))
	cmd.SetOut(&out)

	require.Error(t, cmd.Execute())
}
