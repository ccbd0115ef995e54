package registry

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/netsepio/erebrus-registry/contracts/registry/nodetype"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err   error
	res   *result.Invoke
	byOp  map[string]*result.Invoke
	calls []string
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	t.calls = append(t.calls, operation)
	if r, ok := t.byOp[operation]; ok {
		return r, t.err
	}
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func halt(items ...stackitem.Item) *result.Invoke {
	return &result.Invoke{State: "HALT", Stack: items}
}

func nodeItem(id []byte, typ nodetype.Type, owner util.Uint160, active bool, checkpoints int) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(id),
		stackitem.Make(int(typ)),
		stackitem.NewByteArray(owner.BytesBE()),
		stackitem.Make("device"),
		stackitem.Make("did:erebrus:1"),
		stackitem.Make("Berlin"),
		stackitem.NewBool(active),
		stackitem.Make(checkpoints),
	})
}

func TestGetNode(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetNode(make([]byte, 32))
	require.Error(t, err)

	ti.err = nil
	ti.res = halt(stackitem.Make([]stackitem.Item{stackitem.Make(1)}))
	_, err = r.GetNode(make([]byte, 32))
	require.Error(t, err)

	ti.res = &result.Invoke{State: "FAULT", FaultException: "at instruction 10 (THROW): node not found"}
	_, err = r.GetNode(make([]byte, 32))
	require.ErrorContains(t, err, ErrorNodeNotFound)

	id := NodeID(nodetype.VPN, 7)
	owner := util.Uint160{9, 8, 7}
	ti.res = halt(nodeItem(id, nodetype.VPN, owner, true, 2))
	n, err := r.GetNode(id)
	require.NoError(t, err)
	require.Equal(t, id, n.ID)
	require.Equal(t, TypeVPN, n.Type)
	require.Equal(t, owner, n.Owner)
	require.Equal(t, "device", n.DeviceID)
	require.Equal(t, "did:erebrus:1", n.DID)
	require.Equal(t, "Berlin", n.Location)
	require.True(t, n.Active)
	require.Equal(t, big.NewInt(2), n.Checkpoints)
}

func TestDecodersRejectMalformed(t *testing.T) {
	t.Run("bad owner", func(t *testing.T) {
		item := stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray(make([]byte, 32)),
			stackitem.Make(1),
			stackitem.NewByteArray([]byte{1, 2, 3}),
			stackitem.Make(""), stackitem.Make(""), stackitem.Make(""),
			stackitem.NewBool(true),
			stackitem.Make(0),
		})
		require.ErrorContains(t, new(RegistryNode).FromStackItem(item), "field Owner")
	})
	t.Run("bad price", func(t *testing.T) {
		item := stackitem.NewStruct([]stackitem.Item{
			stackitem.Make("ssid"),
			stackitem.NewArray(nil),
		})
		require.ErrorContains(t, new(RegistryWiFi).FromStackItem(item), "field PricePerMinute")
	})
	t.Run("invalid UTF-8", func(t *testing.T) {
		item := stackitem.NewStruct([]stackitem.Item{
			stackitem.NewByteArray([]byte{0xff, 0xfe}),
			stackitem.Make(""), stackitem.Make(""), stackitem.Make(""),
		})
		require.ErrorContains(t, new(RegistryVPN).FromStackItem(item), "field Name")
	})
	t.Run("wrong length", func(t *testing.T) {
		item := stackitem.NewStruct([]stackitem.Item{stackitem.Make("x")})
		require.Error(t, new(RegistryCheckpoint).FromStackItem(item))
	})
	t.Run("not an array", func(t *testing.T) {
		require.Error(t, new(RegistryVPN).FromStackItem(stackitem.Make(1)))
	})
}

func TestNodeView(t *testing.T) {
	owner := util.Uint160{1}

	t.Run("wifi", func(t *testing.T) {
		id := NodeID(nodetype.WiFi, 0)
		ti := &testInv{byOp: map[string]*result.Invoke{
			"getNode": halt(nodeItem(id, nodetype.WiFi, owner, true, 0)),
			"getWiFi": halt(stackitem.NewStruct([]stackitem.Item{
				stackitem.Make("erebrus-free"),
				stackitem.Make(100),
			})),
		}}
		v, err := NewReader(ti, util.Uint160{}).NodeView(id)
		require.NoError(t, err)
		require.Equal(t, []string{"getNode", "getWiFi"}, ti.calls)
		require.Equal(t, nodetype.WiFi, v.Details.NodeType())
		require.Equal(t, WiFiDetails{SSID: "erebrus-free", PricePerMinute: big.NewInt(100)}, v.Details)
	})
	t.Run("vpn", func(t *testing.T) {
		id := NodeID(nodetype.VPN, 0)
		ti := &testInv{byOp: map[string]*result.Invoke{
			"getNode": halt(nodeItem(id, nodetype.VPN, owner, false, 1)),
			"getVPN": halt(stackitem.NewStruct([]stackitem.Item{
				stackitem.Make("relay"),
				stackitem.Make("10.0.0.1"),
				stackitem.Make("isp"),
				stackitem.Make("eu"),
			})),
		}}
		v, err := NewReader(ti, util.Uint160{}).NodeView(id)
		require.NoError(t, err)
		require.False(t, v.Active)
		require.Equal(t, VPNDetails{Name: "relay", IPAddress: "10.0.0.1", ISPInfo: "isp", Region: "eu"}, v.Details)
	})
	t.Run("unknown type", func(t *testing.T) {
		id := NodeID(nodetype.VPN, 0)
		ti := &testInv{byOp: map[string]*result.Invoke{
			"getNode": halt(nodeItem(id, nodetype.Type(5), owner, true, 0)),
		}}
		_, err := NewReader(ti, util.Uint160{}).NodeView(id)
		require.ErrorContains(t, err, "unknown node type")
	})
}

func TestCheckpoints(t *testing.T) {
	id := NodeID(nodetype.WiFi, 3)
	submitter := util.Uint160{4, 2}
	cpItem := stackitem.NewStruct([]stackitem.Item{
		stackitem.NewByteArray(id),
		stackitem.NewByteArray(submitter.BytesBE()),
		stackitem.Make("hash"),
	})

	ti := &testInv{byOp: map[string]*result.Invoke{
		"getNode":       halt(nodeItem(id, nodetype.WiFi, util.Uint160{}, true, 2)),
		"getCheckpoint": halt(cpItem),
	}}
	r := NewReader(ti, util.Uint160{})

	cps, err := r.Checkpoints(id)
	require.NoError(t, err)
	require.Len(t, cps, 2)
	for i, cp := range cps {
		addr, err := CheckpointAddress(id, uint64(i))
		require.NoError(t, err)
		require.Equal(t, uint64(i), cp.Sequence)
		require.Equal(t, addr, cp.Address)
		require.Equal(t, submitter, cp.Submitter)
		require.Equal(t, "hash", cp.DataHash)
	}

	ti.byOp["getCheckpoint"] = &result.Invoke{
		State:          "FAULT",
		FaultException: `at instruction 412 (THROW): unhandled exception: "` + ErrorCheckpointNotFound + `"`,
	}
	_, err = r.Checkpoints(id)
	require.ErrorIs(t, err, ErrCheckpointGap)

	ti.byOp["getCheckpoint"] = &result.Invoke{State: "FAULT", FaultException: "gas limit exceeded"}
	_, err = r.Checkpoints(id)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrCheckpointGap)
}

func TestEventsFromApplicationLog(t *testing.T) {
	_, err := NodeRegisteredEventsFromApplicationLog(nil)
	require.Error(t, err)

	id := NodeID(nodetype.WiFi, 0)
	owner := util.Uint160{5}
	addr, err := CheckpointAddress(id, 0)
	require.NoError(t, err)

	log := &result.ApplicationLog{
		Executions: []state.Execution{{
			Events: []state.NotificationEvent{
				{Name: "NodeRegistered", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(id),
					stackitem.Make(int(nodetype.WiFi)),
					stackitem.NewByteArray(owner.BytesBE()),
				})},
				{Name: "CheckpointSubmitted", Item: stackitem.NewArray([]stackitem.Item{
					stackitem.NewByteArray(id),
					stackitem.Make(0),
					stackitem.NewByteArray(addr),
				})},
			},
		}},
	}

	regs, err := NodeRegisteredEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*NodeRegisteredEvent{{NodeID: id, NodeType: TypeWiFi, Owner: owner}}, regs)

	cps, err := CheckpointSubmittedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*CheckpointSubmittedEvent{{NodeID: id, Sequence: big.NewInt(0), Address: addr}}, cps)

	deacts, err := NodeDeactivatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Empty(t, deacts)

	log.Executions[0].Events[0].Item = stackitem.NewArray([]stackitem.Item{stackitem.Make(1)})
	_, err = NodeRegisteredEventsFromApplicationLog(log)
	require.Error(t, err)
}
