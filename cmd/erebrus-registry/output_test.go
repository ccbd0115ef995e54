package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/netsepio/erebrus-registry/contracts/registry/nodetype"
	rpcregistry "github.com/netsepio/erebrus-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestDecodeID(t *testing.T) {
	id, err := hex.DecodeString(vpn5Hex)
	require.NoError(t, err)

	for _, s := range []string{vpn5Hex, "0x" + vpn5Hex, vpn5Base58} {
		got, err := decodeID(s)
		require.NoError(t, err, s)
		require.Equal(t, id, got, s)
	}

	for _, s := range []string{"", "0x", "zz", vpn5Hex[:62], "0OIl"} {
		_, err := decodeID(s)
		require.Error(t, err, s)
	}

	require.Equal(t, vpn5Base58, idBase58.encode(id))
	require.Equal(t, vpn5Hex, idHex.encode(id))
}

func TestVersionString(t *testing.T) {
	require.Equal(t, "0.1.0", versionString(1_000))
	require.Equal(t, "1.20.3", versionString(1_020_003))
}

func TestPrintNode(t *testing.T) {
	owner := util.Uint160{1, 2, 3}
	id := rpcregistry.NodeID(nodetype.WiFi, 0)
	v := &rpcregistry.NodeView{
		RegistryNode: rpcregistry.RegistryNode{
			ID:          id,
			Type:        rpcregistry.TypeWiFi,
			Owner:       owner,
			DeviceID:    "dev",
			DID:         "did:erebrus:1",
			Location:    "Berlin",
			Active:      true,
			Checkpoints: big.NewInt(4),
		},
		Details: rpcregistry.WiFiDetails{SSID: "free", PricePerMinute: big.NewInt(100)},
	}

	buf := new(bytes.Buffer)
	p := &printer{format: formatJSON, ids: idHex, w: buf}
	require.NoError(t, p.node(v))

	var n nodeInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &n))
	require.Equal(t, nodeInfo{
		ID:          hex.EncodeToString(id),
		Type:        "wifi",
		Owner:       address.Uint160ToString(owner),
		DeviceID:    "dev",
		DID:         "did:erebrus:1",
		Location:    "Berlin",
		Active:      true,
		Checkpoints: 4,
		WiFi:        &wifiInfo{SSID: "free", PricePerMinute: "100"},
	}, n)

	buf.Reset()
	p.format = formatText
	v.Details = rpcregistry.VPNDetails{Name: "relay", IPAddress: "10.0.0.1", ISPInfo: "isp", Region: "eu"}
	v.Type = rpcregistry.TypeVPN
	require.NoError(t, p.node(v))
	require.Contains(t, buf.String(), "Type:")
	require.Contains(t, buf.String(), "vpn")
	require.Contains(t, buf.String(), "10.0.0.1")
	require.NotContains(t, buf.String(), "SSID")
}

func TestPrintCheckpoints(t *testing.T) {
	id := rpcregistry.NodeID(nodetype.VPN, 5)
	addr, err := rpcregistry.CheckpointAddress(id, 2)
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	p := &printer{format: formatJSON, ids: idHex, w: buf}
	require.NoError(t, p.checkpoints([]rpcregistry.NodeCheckpoint{{
		RegistryCheckpoint: rpcregistry.RegistryCheckpoint{Node: id, Submitter: util.Uint160{7}, DataHash: "h"},
		Sequence:           2,
		Address:            addr,
	}}))

	var res []checkpointInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	require.Equal(t, []checkpointInfo{{
		Sequence:  2,
		Address:   vpn5Seq2,
		Submitter: address.Uint160ToString(util.Uint160{7}),
		DataHash:  "h",
	}}, res)
}
