package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	for _, path := range [][]string{
		{"migrate"},
		{"recurring", "run"},
		{"import", "csv"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, strings.Join(path, " "))
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRootCmd_RequiresProfile(t *testing.T) {
	t.Setenv("APP_PROFILE", "")

	root := newRootCmd()
	root.SetArgs([]string{"migrate"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile is required")
}

func TestRecurringRun_RejectsBadDate(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	root.SetArgs([]string{"--profile", "local", "recurring", "run", "--date", "31/12/2026"})
	root.SetOut(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--date")
}

func TestImportCSV_RequiresFlags(t *testing.T) {
	t.Parallel()

	root := newRootCmd()
	root.SetArgs([]string{"--profile", "local", "import", "csv", "--file", "x.csv"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user")
}

func TestPrintRunResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printRunResult(&buf, &ports.RecurringRunResult{
		Due:      3,
		Created:  1,
		Skipped:  1,
		Failures: []ports.RecurringFailure{{ExpenseID: 9, Err: errors.New("goal missing")}},
	})

	want := "due: 3  created: 1  skipped: 1  failed: 1\n  expense 9: goal missing\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintImportResult(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printImportResult(&buf, &ports.ImportResult{
		BatchID:  "b-1",
		Imported: 4,
		Failed:   1,
		Errors:   []ports.ImportRowError{{Line: 3, Message: "invalid amount"}},
	})

	want := "batch b-1: imported 4, skipped 0, failed 1\n  line 3: invalid amount\n"
	assert.Equal(t, want, buf.String())
}
