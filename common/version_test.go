package common_test

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/netsepio/erebrus-registry/common"
	"github.com/stretchr/testify/require"
)

func readVersionFile(t *testing.T) int {
	data, err := os.ReadFile("../VERSION")
	require.NoError(t, err)

	parts := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(data), "v")), ".")
	require.Len(t, parts, 3)

	var res int
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		require.NoError(t, err)
		require.Less(t, n, 1_000)
		res = res*1_000 + n
	}
	return res
}

func TestVersionFile(t *testing.T) {
	require.Equal(t, common.Version, readVersionFile(t),
		"VERSION file and common.Version differ")
	require.LessOrEqual(t, common.PrevVersion, common.Version)
}

func TestAppendVersion(t *testing.T) {
	require.Equal(t, []any{common.Version}, common.AppendVersion(nil))
	require.Equal(t, []any{"a", 1, common.Version}, common.AppendVersion([]any{"a", 1}))
}
