package commands

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/moneywiz-decoder/internal/testutil"
)

func seededPath(t *testing.T) string {
	t.Helper()
	db, path := testutil.NewDB(t)
	require.NoError(t, testutil.Seed(db))
	return path
}

func run(t *testing.T, args ...string) (string, *logtest.Hook, error) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	var out bytes.Buffer
	app := &App{Logger: logger, Writer: &out}

	err := app.CLI().Run(append([]string{"moneywiz-decoder"}, args...))
	return out.String(), hook, err
}

// -- decode tests --

func TestDecode_Summary(t *testing.T) {
	path := seededPath(t)

	out, hook, err := run(t, "--db", path, "decode")

	require.NoError(t, err)
	assert.Contains(t, out, "Group: decoded 1, skipped 0, failed 0")
	assert.Contains(t, out, "Holding: decoded 1, skipped 0, failed 1")
	assert.Contains(t, out, "Transaction: decoded 9, skipped 1, failed 1")
	assert.Contains(t, out, "FAILED InvestmentBuyTransaction 111: INVARIANT_VIOLATION amount_matches_cost")
	assert.Contains(t, out, "FAILED InvestmentHolding 202: INVALID_ENUMERATION ZINVESTMENTOBJECTTYPE")
	assert.Equal(t, "Command.Decode.Complete", hook.LastEntry().Message)
}

func TestDecode_JSONLines(t *testing.T) {
	path := seededPath(t)

	out, _, err := run(t, "--db", path, "--workers", "2", "decode", "--json")

	require.NoError(t, err)
	var lines []map[string]any
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.Len(t, lines, 11)
	assert.Equal(t, "Banks", lines[0]["name"])
	assert.Equal(t, "owner@example.com", lines[0]["owner_login"])
	assert.Equal(t, "Investment", lines[1]["investment_object_type"])
	assert.NotContains(t, lines[1], "cost_basis_of_missing_ob_shares")
	for _, line := range lines[2:] {
		assert.Contains(t, line, "kind")
	}
}

func TestDecode_Strict(t *testing.T) {
	path := seededPath(t)

	_, hook, err := run(t, "--db", path, "decode", "--strict")

	assert.EqualError(t, err, "2 rows failed to decode")
	assert.Equal(t, "Command.Decode.Error", hook.LastEntry().Message)
}

func TestDecode_NoDatabase(t *testing.T) {
	_, _, err := run(t, "decode")

	assert.ErrorIs(t, err, errNoDatabase)
}

func TestDecode_BadLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "loud", "decode")

	assert.ErrorContains(t, err, "log level")
}

// -- inspect tests --

func TestInspect(t *testing.T) {
	path := seededPath(t)

	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "by id",
			args:     []string{"--id", "101"},
			contains: []string{"DepositTransaction", `"description": (string) (len=6) "Salary"`},
		},
		{
			name:     "by gid",
			args:     []string{"--gid", testutil.GID(testutil.SampleGroup)},
			contains: []string{"Group", `"name": (string) (len=5) "Banks"`},
		},
		{
			name:     "invariant failure",
			args:     []string{"--id", "111"},
			contains: []string{"decode error:", "invariant=amount_matches_cost", `"symbol"`},
		},
		{
			name:     "unimplemented",
			args:     []string{"--id", "110"},
			contains: []string{"TransferBudgetTransaction", "decode error: decoding not implemented"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"--db", path, "inspect"}, tt.args...)...)

			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestInspect_Errors(t *testing.T) {
	path := seededPath(t)

	_, _, err := run(t, "--db", path, "inspect")
	assert.ErrorContains(t, err, "exactly one of --id or --gid")

	_, _, err = run(t, "--db", path, "inspect", "--id", "9999")
	assert.ErrorContains(t, err, "record not found")
}

// -- entities tests --

func TestEntities(t *testing.T) {
	path := seededPath(t)

	out, _, err := run(t, "--db", path, "entities")

	require.NoError(t, err)
	assert.Contains(t, out, "  37 DepositTransaction *\n")
	assert.Contains(t, out, "  22 Group *\n")
	assert.Less(t, strings.Index(out, "  22 Group"), strings.Index(out, "  47 WithdrawTransaction"))
}
