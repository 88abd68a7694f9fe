package main_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	main "github.com/emurenMRz/emailparser/cmd/emailparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMbox = "From a@example.com Mon Apr 28 10:00:00 2025\n" +
	"From: a@example.com\n" +
	"Subject: first\n" +
	"\n" +
	"Your invoice is attached.\n" +
	"\n" +
	"From b@example.com Tue Apr 29 10:00:00 2025\n" +
	"Subject: second\n" +
	"\n" +
	"Reset your password at https://b.example.com/reset\n"

func writeMbox(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "INBOX")
	require.NoError(t, os.WriteFile(path, []byte(testMbox), 0o644))
	return path
}

func TestMboxCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("parses messages in order", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		cmd := &main.MboxCmd{File: writeMbox(t), Concurrency: 2, JSON: true}

		require.NoError(t, cmd.Run(deps))

		var results []struct {
			Index  int `json:"index"`
			Result struct {
				Subject string `json:"subject"`
				Type    string `json:"type"`
				URLs    string `json:"urls"`
			} `json:"result"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
		require.Len(t, results, 2)
		assert.Equal(t, 0, results[0].Index)
		assert.Equal(t, "first", results[0].Result.Subject)
		assert.Equal(t, "Transaction/Receipt", results[0].Result.Type)
		assert.Equal(t, "second", results[1].Result.Subject)
		assert.Equal(t, "Security/Password Reset", results[1].Result.Type)
		assert.Equal(t, "https://b.example.com/reset", results[1].Result.URLs)
	})

	t.Run("prints text sections", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps("")
		cmd := &main.MboxCmd{File: writeMbox(t), Concurrency: 1, Raw: true}

		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "=== Message 0 ===\nsubject: first\n")
		assert.Contains(t, stdout.String(), "=== Message 1 ===\nsubject: second\n")
	})
}
