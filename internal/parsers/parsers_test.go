package parsers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/watchedliteral/cdcl/internal/sat"
)

func writeCNF(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "instance.cnf")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDIMACSSAT(t *testing.T) {
	path := writeCNF(t, "c a trivial instance\np cnf 3 3\n1 2 0\n-1 3 0\n-2 -3 0\n")

	s, ok, err := LoadDIMACS(path, false, sat.DefaultOptions)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, s.NumVariables())
	require.Equal(t, 3, s.NumClausesDeclared())
}

func TestLoadDIMACSUnsatAtIngest(t *testing.T) {
	path := writeCNF(t, "p cnf 1 2\n1 0\n-1 0\n")

	s, ok, err := LoadDIMACS(path, false, sat.DefaultOptions)
	require.NoError(t, err)
	require.False(t, ok)
	require.True(t, s.IsUnsat())
}

func TestLoadDIMACSRejectsNonCNFProblem(t *testing.T) {
	path := writeCNF(t, "p wcnf 1 1\n1 0\n")

	_, _, err := LoadDIMACS(path, false, sat.DefaultOptions)
	require.Error(t, err)
}
