package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vpn5Hex    = "aa645be10ebc5a5399a5f118802b0cee1bb577a83c15a1c86c4dd2ccb01f3f92"
	vpn5Base58 = "CU94rr7e6ca863VnVWbDFsQJ3A6VVwJ83QK2efCabmKF"
	vpn5Seq2   = "685fc31b9bcac2d01554fcb5319d74e43bb49aec44142885fcca6f524208d20d"
)

func execute(t *testing.T, args ...string) (string, error) {
	cmd := newRootCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{"info", "node", "nodes", "checkpoints", "node-id", "checkpoint-address"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := newRootCommand()

	for name, def := range map[string]string{
		"rpc":         "",
		"contract":    "",
		"timeout":     "15s",
		"format":      "text",
		"id-encoding": "hex",
		"debug":       "false",
	} {
		f := cmd.PersistentFlags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
	}
}

func TestNodeIDCommand(t *testing.T) {
	out, err := execute(t, "node-id", "vpn", "5")
	require.NoError(t, err)
	require.Equal(t, vpn5Hex+"\n", out)

	out, err = execute(t, "node-id", "--id-encoding", "base58", "VPN", "5")
	require.NoError(t, err)
	require.Equal(t, vpn5Base58+"\n", out)

	out, err = execute(t, "node-id", "--format", "json", "2", "5")
	require.NoError(t, err)
	var res map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, vpn5Hex, res["id"])

	_, err = execute(t, "node-id", "router", "5")
	require.ErrorContains(t, err, "unknown node type")

	_, err = execute(t, "node-id", "wifi", "first")
	require.ErrorContains(t, err, "invalid ordinal")
}

func TestCheckpointAddressCommand(t *testing.T) {
	for _, id := range []string{vpn5Hex, "0x" + vpn5Hex, vpn5Base58} {
		out, err := execute(t, "checkpoint-address", id, "2")
		require.NoError(t, err, id)
		require.Equal(t, vpn5Seq2+"\n", out, id)
	}

	_, err := execute(t, "checkpoint-address", "abcd", "0")
	require.Error(t, err)
}

func TestInvalidGlobalOptions(t *testing.T) {
	_, err := execute(t, "--format", "yaml", "node-id", "wifi", "0")
	require.ErrorContains(t, err, "invalid format")

	_, err = execute(t, "--id-encoding", "base64", "node-id", "wifi", "0")
	require.ErrorContains(t, err, "invalid ID encoding")
}

func TestOnlineCommandsRequireConfig(t *testing.T) {
	_, err := execute(t, "info")
	require.ErrorIs(t, err, errMissingRPC)

	_, err = execute(t, "--rpc", "http://localhost:30333", "nodes")
	require.ErrorIs(t, err, errMissingContract)

	_, err = execute(t, "--rpc", "http://localhost:30333", "--contract", "not a hash", "checkpoints", vpn5Hex)
	require.ErrorContains(t, err, "invalid contract")
}

func TestConfigSources(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		t.Setenv("EREBRUS_ID_ENCODING", "base58")
		out, err := execute(t, "node-id", "vpn", "5")
		require.NoError(t, err)
		require.Equal(t, vpn5Base58+"\n", out)

		// Flags take precedence.
		out, err = execute(t, "--id-encoding", "hex", "node-id", "vpn", "5")
		require.NoError(t, err)
		require.Equal(t, vpn5Hex+"\n", out)
	})
	t.Run("file", func(t *testing.T) {
		cfg := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(cfg, []byte("format: json\nid-encoding: base58\n"), 0o600))

		out, err := execute(t, "--config", cfg, "node-id", "vpn", "5")
		require.NoError(t, err)
		require.True(t, strings.Contains(out, `"id": "`+vpn5Base58+`"`), out)

		_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "node-id", "vpn", "5")
		require.ErrorContains(t, err, "read config file")
	})
}
