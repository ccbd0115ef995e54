// Package registry contains RPC wrappers for Erebrus Registry contract.
package registry

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
)

// RegistryNode is a contract-specific registry.Node type used by its methods.
type RegistryNode struct {
	ID          []byte
	Type        *big.Int
	Owner       util.Uint160
	DeviceID    string
	DID         string
	Location    string
	Active      bool
	Checkpoints *big.Int
}

// RegistryWiFi is a contract-specific registry.WiFi type used by its methods.
type RegistryWiFi struct {
	SSID           string
	PricePerMinute *big.Int
}

// RegistryVPN is a contract-specific registry.VPN type used by its methods.
type RegistryVPN struct {
	Name      string
	IPAddress string
	ISPInfo   string
	Region    string
}

// RegistryCheckpoint is a contract-specific registry.Checkpoint type used by its methods.
type RegistryCheckpoint struct {
	Node      []byte
	Submitter util.Uint160
	DataHash  string
}

// RegistryInitializedEvent represents "RegistryInitialized" event emitted by the contract.
type RegistryInitializedEvent struct {
	Owner util.Uint160
}

// NodeRegisteredEvent represents "NodeRegistered" event emitted by the contract.
type NodeRegisteredEvent struct {
	NodeID   []byte
	NodeType *big.Int
	Owner    util.Uint160
}

// NodeUpdatedEvent represents "NodeUpdated" event emitted by the contract.
type NodeUpdatedEvent struct {
	NodeID []byte
}

// NodeDeactivatedEvent represents "NodeDeactivated" event emitted by the contract.
type NodeDeactivatedEvent struct {
	NodeID []byte
}

// CheckpointSubmittedEvent represents "CheckpointSubmitted" event emitted by the contract.
type CheckpointSubmittedEvent struct {
	NodeID   []byte
	Sequence *big.Int
	Address  []byte
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// CheckpointAddress invokes `checkpointAddress` method of contract.
func (c *ContractReader) CheckpointAddress(nodeID []byte, seq *big.Int) ([]byte, error) {
	return unwrap.Bytes(c.invoker.Call(c.hash, "checkpointAddress", nodeID, seq))
}

// GetCheckpoint invokes `getCheckpoint` method of contract.
func (c *ContractReader) GetCheckpoint(address []byte) (*RegistryCheckpoint, error) {
	return itemToRegistryCheckpoint(unwrap.Item(c.invoker.Call(c.hash, "getCheckpoint", address)))
}

// GetNode invokes `getNode` method of contract.
func (c *ContractReader) GetNode(nodeID []byte) (*RegistryNode, error) {
	return itemToRegistryNode(unwrap.Item(c.invoker.Call(c.hash, "getNode", nodeID)))
}

// GetVPN invokes `getVPN` method of contract.
func (c *ContractReader) GetVPN(nodeID []byte) (*RegistryVPN, error) {
	return itemToRegistryVPN(unwrap.Item(c.invoker.Call(c.hash, "getVPN", nodeID)))
}

// GetWiFi invokes `getWiFi` method of contract.
func (c *ContractReader) GetWiFi(nodeID []byte) (*RegistryWiFi, error) {
	return itemToRegistryWiFi(unwrap.Item(c.invoker.Call(c.hash, "getWiFi", nodeID)))
}

// NodeCount invokes `nodeCount` method of contract.
func (c *ContractReader) NodeCount(typ *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "nodeCount", typ))
}

// NodesOf invokes `nodesOf` method of contract.
func (c *ContractReader) NodesOf(owner []byte) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "nodesOf", owner))
}

// NodesOfExpanded is similar to NodesOf (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) NodesOfExpanded(owner []byte, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "nodesOf", _numOfIteratorItems, owner))
}

// Owner invokes `owner` method of contract.
func (c *ContractReader) Owner() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "owner"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// DeactivateNode creates a transaction invoking `deactivateNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeactivateNode(nodeID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deactivateNode", nodeID)
}

// DeactivateNodeTransaction creates a transaction invoking `deactivateNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeactivateNodeTransaction(nodeID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deactivateNode", nodeID)
}

// DeactivateNodeUnsigned creates a transaction invoking `deactivateNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeactivateNodeUnsigned(nodeID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deactivateNode", nil, nodeID)
}

// DeviceCheckpoint creates a transaction invoking `deviceCheckpoint` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) DeviceCheckpoint(nodeID []byte, submitter util.Uint160, dataHash string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "deviceCheckpoint", nodeID, submitter, dataHash)
}

// DeviceCheckpointTransaction creates a transaction invoking `deviceCheckpoint` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) DeviceCheckpointTransaction(nodeID []byte, submitter util.Uint160, dataHash string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "deviceCheckpoint", nodeID, submitter, dataHash)
}

// DeviceCheckpointUnsigned creates a transaction invoking `deviceCheckpoint` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) DeviceCheckpointUnsigned(nodeID []byte, submitter util.Uint160, dataHash string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "deviceCheckpoint", nil, nodeID, submitter, dataHash)
}

// Initialize creates a transaction invoking `initialize` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Initialize(owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "initialize", owner)
}

// InitializeTransaction creates a transaction invoking `initialize` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) InitializeTransaction(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "initialize", owner)
}

// InitializeUnsigned creates a transaction invoking `initialize` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) InitializeUnsigned(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "initialize", nil, owner)
}

// RegisterVPNNode creates a transaction invoking `registerVPNNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterVPNNode(owner util.Uint160, deviceID string, did string, nodeName string, ipAddress string, ispInfo string, region string, location string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerVPNNode", owner, deviceID, did, nodeName, ipAddress, ispInfo, region, location)
}

// RegisterVPNNodeTransaction creates a transaction invoking `registerVPNNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterVPNNodeTransaction(owner util.Uint160, deviceID string, did string, nodeName string, ipAddress string, ispInfo string, region string, location string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerVPNNode", owner, deviceID, did, nodeName, ipAddress, ispInfo, region, location)
}

// RegisterVPNNodeUnsigned creates a transaction invoking `registerVPNNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterVPNNodeUnsigned(owner util.Uint160, deviceID string, did string, nodeName string, ipAddress string, ispInfo string, region string, location string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerVPNNode", nil, owner, deviceID, did, nodeName, ipAddress, ispInfo, region, location)
}

// RegisterWiFiNode creates a transaction invoking `registerWiFiNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterWiFiNode(owner util.Uint160, deviceID string, did string, ssid string, location string, pricePerMinute *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerWiFiNode", owner, deviceID, did, ssid, location, pricePerMinute)
}

// RegisterWiFiNodeTransaction creates a transaction invoking `registerWiFiNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterWiFiNodeTransaction(owner util.Uint160, deviceID string, did string, ssid string, location string, pricePerMinute *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerWiFiNode", owner, deviceID, did, ssid, location, pricePerMinute)
}

// RegisterWiFiNodeUnsigned creates a transaction invoking `registerWiFiNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterWiFiNodeUnsigned(owner util.Uint160, deviceID string, did string, ssid string, location string, pricePerMinute *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerWiFiNode", nil, owner, deviceID, did, ssid, location, pricePerMinute)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// UpdateVPNNode creates a transaction invoking `updateVPNNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateVPNNode(nodeID []byte, nodeName any, ipAddress any, ispInfo any, region any, location any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateVPNNode", nodeID, nodeName, ipAddress, ispInfo, region, location)
}

// UpdateVPNNodeTransaction creates a transaction invoking `updateVPNNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateVPNNodeTransaction(nodeID []byte, nodeName any, ipAddress any, ispInfo any, region any, location any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateVPNNode", nodeID, nodeName, ipAddress, ispInfo, region, location)
}

// UpdateVPNNodeUnsigned creates a transaction invoking `updateVPNNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateVPNNodeUnsigned(nodeID []byte, nodeName any, ipAddress any, ispInfo any, region any, location any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateVPNNode", nil, nodeID, nodeName, ipAddress, ispInfo, region, location)
}

// UpdateWiFiNode creates a transaction invoking `updateWiFiNode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) UpdateWiFiNode(nodeID []byte, ssid any, location any, pricePerMinute any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "updateWiFiNode", nodeID, ssid, location, pricePerMinute)
}

// UpdateWiFiNodeTransaction creates a transaction invoking `updateWiFiNode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateWiFiNodeTransaction(nodeID []byte, ssid any, location any, pricePerMinute any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "updateWiFiNode", nodeID, ssid, location, pricePerMinute)
}

// UpdateWiFiNodeUnsigned creates a transaction invoking `updateWiFiNode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateWiFiNodeUnsigned(nodeID []byte, ssid any, location any, pricePerMinute any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "updateWiFiNode", nil, nodeID, ssid, location, pricePerMinute)
}

// itemToRegistryNode converts stack item into *RegistryNode.
func itemToRegistryNode(item stackitem.Item, err error) (*RegistryNode, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryNode)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryNode from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryNode) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 8 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.ID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Type, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Type: %w", err)
	}

	index++
	res.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.DeviceID, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field DeviceID: %w", err)
	}

	index++
	res.DID, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field DID: %w", err)
	}

	index++
	res.Location, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Location: %w", err)
	}

	index++
	res.Active, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Active: %w", err)
	}

	index++
	res.Checkpoints, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Checkpoints: %w", err)
	}

	return nil
}

// itemToRegistryWiFi converts stack item into *RegistryWiFi.
func itemToRegistryWiFi(item stackitem.Item, err error) (*RegistryWiFi, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryWiFi)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryWiFi from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryWiFi) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.SSID, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field SSID: %w", err)
	}

	index++
	res.PricePerMinute, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PricePerMinute: %w", err)
	}

	return nil
}

// itemToRegistryVPN converts stack item into *RegistryVPN.
func itemToRegistryVPN(item stackitem.Item, err error) (*RegistryVPN, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryVPN)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryVPN from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryVPN) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Name, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Name: %w", err)
	}

	index++
	res.IPAddress, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field IPAddress: %w", err)
	}

	index++
	res.ISPInfo, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field ISPInfo: %w", err)
	}

	index++
	res.Region, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field Region: %w", err)
	}

	return nil
}

// itemToRegistryCheckpoint converts stack item into *RegistryCheckpoint.
func itemToRegistryCheckpoint(item stackitem.Item, err error) (*RegistryCheckpoint, error) {
	if err != nil {
		return nil, err
	}
	var res = new(RegistryCheckpoint)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of RegistryCheckpoint from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *RegistryCheckpoint) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	res.Node, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Node: %w", err)
	}

	index++
	res.Submitter, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Submitter: %w", err)
	}

	index++
	res.DataHash, err = itemToString(arr[index])
	if err != nil {
		return fmt.Errorf("field DataHash: %w", err)
	}

	return nil
}

// RegistryInitializedEventsFromApplicationLog retrieves a set of all emitted events
// with "RegistryInitialized" name from the provided [result.ApplicationLog].
func RegistryInitializedEventsFromApplicationLog(log *result.ApplicationLog) ([]*RegistryInitializedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*RegistryInitializedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "RegistryInitialized" {
				continue
			}
			event := new(RegistryInitializedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize RegistryInitializedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to RegistryInitializedEvent or
// returns an error if it's not possible to do to so.
func (e *RegistryInitializedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.Owner, err = itemToUint160(arr[0])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// NodeRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeRegistered" name from the provided [result.ApplicationLog].
func NodeRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeRegistered" {
				continue
			}
			event := new(NodeRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *NodeRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.NodeID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field NodeID: %w", err)
	}

	index++
	e.NodeType, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field NodeType: %w", err)
	}

	index++
	e.Owner, err = itemToUint160(arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	return nil
}

// NodeUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeUpdated" name from the provided [result.ApplicationLog].
func NodeUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeUpdated" {
				continue
			}
			event := new(NodeUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *NodeUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.NodeID, err = arr[0].TryBytes()
	if err != nil {
		return fmt.Errorf("field NodeID: %w", err)
	}

	return nil
}

// NodeDeactivatedEventsFromApplicationLog retrieves a set of all emitted events
// with "NodeDeactivated" name from the provided [result.ApplicationLog].
func NodeDeactivatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*NodeDeactivatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*NodeDeactivatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "NodeDeactivated" {
				continue
			}
			event := new(NodeDeactivatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize NodeDeactivatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to NodeDeactivatedEvent or
// returns an error if it's not possible to do to so.
func (e *NodeDeactivatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var err error
	e.NodeID, err = arr[0].TryBytes()
	if err != nil {
		return fmt.Errorf("field NodeID: %w", err)
	}

	return nil
}

// CheckpointSubmittedEventsFromApplicationLog retrieves a set of all emitted events
// with "CheckpointSubmitted" name from the provided [result.ApplicationLog].
func CheckpointSubmittedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CheckpointSubmittedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CheckpointSubmittedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CheckpointSubmitted" {
				continue
			}
			event := new(CheckpointSubmittedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CheckpointSubmittedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CheckpointSubmittedEvent or
// returns an error if it's not possible to do to so.
func (e *CheckpointSubmittedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err   error
	)
	index++
	e.NodeID, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field NodeID: %w", err)
	}

	index++
	e.Sequence, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Sequence: %w", err)
	}

	index++
	e.Address, err = arr[index].TryBytes()
	if err != nil {
		return fmt.Errorf("field Address: %w", err)
	}

	return nil
}

func itemToUint160(item stackitem.Item) (util.Uint160, error) {
	b, err := item.TryBytes()
	if err != nil {
		return util.Uint160{}, err
	}
	u, err := util.Uint160DecodeBytesBE(b)
	if err != nil {
		return util.Uint160{}, err
	}
	return u, nil
}

func itemToString(item stackitem.Item) (string, error) {
	b, err := item.TryBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errors.New("not a UTF-8 string")
	}
	return string(b), nil
}
