package registry

import (
	"github.com/netsepio/erebrus-registry/common"
	"github.com/netsepio/erebrus-registry/contracts/registry/nodetype"
	cst "github.com/netsepio/erebrus-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// Registry is a singleton holding the deployment owner and the number of
	// registered nodes per category.
	Registry struct {
		Owner     interop.Hash160
		WiFiCount int
		VPNCount  int
	}

	// Node groups data shared by all node categories.
	Node struct {
		ID          []byte
		Type        nodetype.Type
		Owner       interop.Hash160
		DeviceID    string
		DID         string
		Location    string
		Active      bool
		Checkpoints int
	}

	// WiFi groups data stored for nodetype.WiFi nodes only.
	WiFi struct {
		SSID           string
		PricePerMinute int
	}

	// VPN groups data stored for nodetype.VPN nodes only.
	VPN struct {
		Name      string
		IPAddress string
		ISPInfo   string
		Region    string
	}

	// Checkpoint is an immutable activity attestation submitted for a node.
	Checkpoint struct {
		Node      []byte
		Submitter interop.Hash160
		DataHash  string
	}
)

const (
	registryKey = "r"

	nodeKeyPrefix       = 'n'
	wifiKeyPrefix       = 'w'
	vpnKeyPrefix        = 'v'
	ownerKeyPrefix      = 'o'
	checkpointKeyPrefix = 'c'
)

// _deploy initializes the registry if the owner account is passed in data.
// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	if data != nil {
		// Deploy data comes as a Buffer, stored owner must be a ByteString
		// as it is after Initialize.
		owner := interop.Hash160(convert.ToString(data))
		if len(owner) != interop.Hash160Len {
			panic(cst.ErrInvalidOwner)
		}
		initialize(ctx, owner)
	}

	runtime.Log("registry contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the registry owner.
func Update(script []byte, manifest []byte, data any) {
	ctx := storage.GetReadOnlyContext()
	common.CheckWitness(getRegistry(ctx).Owner, cst.ErrUnauthorized)

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("registry contract updated")
}

// Initialize creates the registry owned by the given account. The transaction
// must be witnessed by owner. Registry can be initialized only once, either
// here or on deployment.
func Initialize(owner interop.Hash160) {
	ctx := storage.GetContext()
	common.CheckWitness(owner, cst.ErrUnauthorized)
	initialize(ctx, owner)
}

func initialize(ctx storage.Context, owner interop.Hash160) {
	if storage.Get(ctx, registryKey) != nil {
		panic(cst.ErrAlreadyInitialized)
	}

	common.SetSerialized(ctx, registryKey, Registry{
		Owner:     owner,
		WiFiCount: 0,
		VPNCount:  0,
	})

	runtime.Notify("RegistryInitialized", owner)
}

// Owner returns the account allowed to deactivate nodes and update the
// contract.
func Owner() interop.Hash160 {
	return getRegistry(storage.GetReadOnlyContext()).Owner
}

// NodeCount returns the number of nodes ever registered in the category.
// Deactivated nodes are counted too.
func NodeCount(typ int) int {
	reg := getRegistry(storage.GetReadOnlyContext())
	switch nodetype.Type(typ) {
	case nodetype.WiFi:
		return reg.WiFiCount
	case nodetype.VPN:
		return reg.VPNCount
	default:
		panic(cst.ErrInvalidNodeType)
	}
}

// RegisterWiFiNode registers a new active Wi-Fi node owned by owner and
// returns its identifier. The transaction must be witnessed by owner.
// Produces NodeRegistered notification.
func RegisterWiFiNode(owner interop.Hash160, deviceID, did, ssid, location string, pricePerMinute int) []byte {
	ctx := storage.GetContext()

	checkPrice(pricePerMinute)

	id := registerNode(ctx, nodetype.WiFi, owner, deviceID, did, location)
	common.SetSerialized(ctx, variantKey(wifiKeyPrefix, id), WiFi{
		SSID:           ssid,
		PricePerMinute: pricePerMinute,
	})

	return id
}

// RegisterVPNNode registers a new active VPN node owned by owner and returns
// its identifier. The transaction must be witnessed by owner.
// Produces NodeRegistered notification.
func RegisterVPNNode(owner interop.Hash160, deviceID, did, nodeName, ipAddress, ispInfo, region, location string) []byte {
	ctx := storage.GetContext()

	id := registerNode(ctx, nodetype.VPN, owner, deviceID, did, location)
	common.SetSerialized(ctx, variantKey(vpnKeyPrefix, id), VPN{
		Name:      nodeName,
		IPAddress: ipAddress,
		ISPInfo:   ispInfo,
		Region:    region,
	})

	return id
}

func registerNode(ctx storage.Context, typ nodetype.Type, owner interop.Hash160, deviceID, did, location string) []byte {
	common.CheckWitness(owner, cst.ErrUnauthorized)

	ordinal := reserveSlot(ctx, typ)
	id := nodeIDFor(typ, ordinal)

	common.SetSerialized(ctx, nodeKey(id), Node{
		ID:          id,
		Type:        typ,
		Owner:       owner,
		DeviceID:    deviceID,
		DID:         did,
		Location:    location,
		Active:      true,
		Checkpoints: 0,
	})
	storage.Put(ctx, ownerIndexKey(owner, id), id)

	runtime.Notify("NodeRegistered", id, int(typ), owner)

	return id
}

// reserveSlot takes the next ordinal of the category from the registry.
func reserveSlot(ctx storage.Context, typ nodetype.Type) int {
	reg := getRegistry(ctx)

	var ordinal int
	if typ == nodetype.WiFi {
		ordinal = reg.WiFiCount
	} else {
		ordinal = reg.VPNCount
	}

	if ordinal >= cst.MaxNodes {
		panic(cst.ErrCapacityExceeded)
	}

	if typ == nodetype.WiFi {
		reg.WiFiCount = ordinal + 1
	} else {
		reg.VPNCount = ordinal + 1
	}
	common.SetSerialized(ctx, registryKey, reg)

	return ordinal
}

// UpdateWiFiNode overwrites those Wi-Fi node fields which are not Null.
// The node must be active, the transaction must be witnessed by the node
// owner. Produces NodeUpdated notification.
func UpdateWiFiNode(nodeID []byte, ssid, location, pricePerMinute any) {
	ctx := storage.GetContext()

	node := getMutableNode(ctx, nodeID, nodetype.WiFi)
	wifi := getWiFi(ctx, nodeID)

	if pricePerMinute != nil {
		price := pricePerMinute.(int)
		checkPrice(price)
		wifi.PricePerMinute = price
	}
	if ssid != nil {
		wifi.SSID = ssid.(string)
	}
	if location != nil {
		node.Location = location.(string)
		common.SetSerialized(ctx, nodeKey(nodeID), node)
	}
	common.SetSerialized(ctx, variantKey(wifiKeyPrefix, nodeID), wifi)

	runtime.Notify("NodeUpdated", nodeID)
}

// UpdateVPNNode overwrites those VPN node fields which are not Null.
// The node must be active, the transaction must be witnessed by the node
// owner. Produces NodeUpdated notification.
func UpdateVPNNode(nodeID []byte, nodeName, ipAddress, ispInfo, region, location any) {
	ctx := storage.GetContext()

	node := getMutableNode(ctx, nodeID, nodetype.VPN)
	vpn := getVPN(ctx, nodeID)

	if nodeName != nil {
		vpn.Name = nodeName.(string)
	}
	if ipAddress != nil {
		vpn.IPAddress = ipAddress.(string)
	}
	if ispInfo != nil {
		vpn.ISPInfo = ispInfo.(string)
	}
	if region != nil {
		vpn.Region = region.(string)
	}
	if location != nil {
		node.Location = location.(string)
		common.SetSerialized(ctx, nodeKey(nodeID), node)
	}
	common.SetSerialized(ctx, variantKey(vpnKeyPrefix, nodeID), vpn)

	runtime.Notify("NodeUpdated", nodeID)
}

// getMutableNode returns the node if it can be updated by the transaction
// signers as a node of the given category.
func getMutableNode(ctx storage.Context, nodeID []byte, typ nodetype.Type) Node {
	node := getNode(ctx, nodeID)

	if !node.Active {
		panic(cst.ErrNodeNotActive)
	}
	common.CheckWitness(node.Owner, cst.ErrUnauthorized)
	if node.Type != typ {
		panic(cst.ErrInvalidNodeType)
	}

	return node
}

// DeactivateNode marks the node inactive. It can be invoked only by the
// registry owner. Deactivation is final, repeated calls do nothing.
// Produces NodeDeactivated notification on the first call.
func DeactivateNode(nodeID []byte) {
	ctx := storage.GetContext()

	common.CheckWitness(getRegistry(ctx).Owner, cst.ErrUnauthorized)

	node := getNode(ctx, nodeID)
	if !node.Active {
		return
	}

	node.Active = false
	common.SetSerialized(ctx, nodeKey(nodeID), node)

	runtime.Notify("NodeDeactivated", nodeID)
}

// DeviceCheckpoint stores a new checkpoint for the node and returns its
// address. The address is derived from the node identifier and the number of
// checkpoints stored before, see CheckpointAddress. The transaction must be
// witnessed by submitter. Checkpoints are accepted for inactive nodes too.
// Produces CheckpointSubmitted notification.
func DeviceCheckpoint(nodeID []byte, submitter interop.Hash160, dataHash string) []byte {
	ctx := storage.GetContext()

	node := getNode(ctx, nodeID)
	common.CheckWitness(submitter, cst.ErrUnauthorized)

	seq := node.Checkpoints
	addr := checkpointAddress(nodeID, seq)
	key := append([]byte{checkpointKeyPrefix}, addr...)
	if storage.Get(ctx, key) != nil {
		panic(cst.ErrCheckpointExists)
	}

	common.SetSerialized(ctx, key, Checkpoint{
		Node:      nodeID,
		Submitter: submitter,
		DataHash:  dataHash,
	})

	node.Checkpoints = seq + 1
	common.SetSerialized(ctx, nodeKey(nodeID), node)

	runtime.Notify("CheckpointSubmitted", nodeID, seq, addr)

	return addr
}

// GetNode returns data shared by all node categories.
//
// If the node doesn't exist, it panics with ErrNodeNotFound.
func GetNode(nodeID []byte) Node {
	return getNode(storage.GetReadOnlyContext(), nodeID)
}

// GetWiFi returns Wi-Fi specific data of the node.
//
// It panics with ErrInvalidNodeType if the node is not a Wi-Fi one.
func GetWiFi(nodeID []byte) WiFi {
	ctx := storage.GetReadOnlyContext()
	if getNode(ctx, nodeID).Type != nodetype.WiFi {
		panic(cst.ErrInvalidNodeType)
	}
	return getWiFi(ctx, nodeID)
}

// GetVPN returns VPN specific data of the node.
//
// It panics with ErrInvalidNodeType if the node is not a VPN one.
func GetVPN(nodeID []byte) VPN {
	ctx := storage.GetReadOnlyContext()
	if getNode(ctx, nodeID).Type != nodetype.VPN {
		panic(cst.ErrInvalidNodeType)
	}
	return getVPN(ctx, nodeID)
}

// NodesOf iterates over identifiers of all nodes owned by the specified
// account. If owner is empty, it iterates over all nodes. Any other owner
// must be a valid Hash160.
func NodesOf(owner []byte) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	key := []byte{ownerKeyPrefix}
	if len(owner) != 0 {
		if len(owner) != interop.Hash160Len {
			panic(cst.ErrInvalidOwner)
		}
		key = append(key, owner...)
	}
	return storage.Find(ctx, key, storage.ValuesOnly)
}

// GetCheckpoint returns the checkpoint stored at the given address.
//
// If there is no such checkpoint, it panics with ErrCheckpointNotFound.
func GetCheckpoint(address []byte) Checkpoint {
	ctx := storage.GetReadOnlyContext()
	v := common.GetSerialized(ctx, append([]byte{checkpointKeyPrefix}, address...))
	if v == nil {
		panic(cst.ErrCheckpointNotFound)
	}
	return v.(Checkpoint)
}

// CheckpointAddress returns the address of the checkpoint number seq of the
// node. It doesn't depend on the contract state.
func CheckpointAddress(nodeID []byte, seq int) []byte {
	checkNodeID(nodeID)
	if seq < 0 {
		panic("invalid sequence number")
	}
	return checkpointAddress(nodeID, seq)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getRegistry(ctx storage.Context) Registry {
	v := common.GetSerialized(ctx, registryKey)
	if v == nil {
		panic(cst.ErrNotInitialized)
	}
	return v.(Registry)
}

func getNode(ctx storage.Context, nodeID []byte) Node {
	checkNodeID(nodeID)
	v := common.GetSerialized(ctx, nodeKey(nodeID))
	if v == nil {
		panic(cst.ErrNodeNotFound)
	}
	return v.(Node)
}

func getWiFi(ctx storage.Context, nodeID []byte) WiFi {
	return common.GetSerialized(ctx, variantKey(wifiKeyPrefix, nodeID)).(WiFi)
}

func getVPN(ctx storage.Context, nodeID []byte) VPN {
	return common.GetSerialized(ctx, variantKey(vpnKeyPrefix, nodeID)).(VPN)
}

func checkNodeID(nodeID []byte) {
	if len(nodeID) != cst.IDLength {
		panic(cst.ErrInvalidNodeID)
	}
}

func checkPrice(price int) {
	if price < 0 {
		panic(cst.ErrInvalidPrice)
	}
}

func nodeKey(nodeID []byte) []byte {
	return append([]byte{nodeKeyPrefix}, nodeID...)
}

func variantKey(prefix byte, nodeID []byte) []byte {
	return append([]byte{prefix}, nodeID...)
}

func ownerIndexKey(owner interop.Hash160, nodeID []byte) []byte {
	key := append([]byte{ownerKeyPrefix}, owner...)
	return append(key, nodeID...)
}

// nodeIDFor derives identifier of the node registered under the ordinal of
// its category.
func nodeIDFor(typ nodetype.Type, ordinal int) []byte {
	buf := []byte(cst.NodeIDDomain)
	buf = append(buf, 0)
	buf = append(buf, byte(typ))
	buf = append(buf, seqBytes(ordinal)...)
	return crypto.Sha256(buf)
}

// checkpointAddress derives address of the checkpoint number seq of the node.
func checkpointAddress(nodeID []byte, seq int) []byte {
	buf := []byte(cst.CheckpointDomain)
	buf = append(buf, 0)
	buf = append(buf, nodeID...)
	buf = append(buf, seqBytes(seq)...)
	return crypto.Sha256(buf)
}

// seqBytes encodes non-negative n as a fixed-width little-endian integer.
func seqBytes(n int) []byte {
	b := convert.ToBytes(n)
	for len(b) < cst.SequenceLength {
		b = append(b, 0)
	}
	return b
}
