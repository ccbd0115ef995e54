package registry

import (
	"math/big"

	"github.com/netsepio/erebrus-registry/contracts/registry/nodetype"
	"github.com/netsepio/erebrus-registry/contracts/registry/registryconst"
)

const (
	// MaxNodes is the capacity of each node category.
	MaxNodes = registryconst.MaxNodes

	// ErrorCapacityExceeded is returned on registration into a full category.
	ErrorCapacityExceeded = registryconst.ErrCapacityExceeded
	// ErrorNodeNotActive is returned on update of a deactivated node.
	ErrorNodeNotActive = registryconst.ErrNodeNotActive
	// ErrorUnauthorized is returned when the transaction lacks required witness.
	ErrorUnauthorized = registryconst.ErrUnauthorized
	// ErrorInvalidNodeType is returned on category mismatch.
	ErrorInvalidNodeType = registryconst.ErrInvalidNodeType
	// ErrorNodeNotFound is returned if node is missing.
	ErrorNodeNotFound = registryconst.ErrNodeNotFound
	// ErrorInvalidOwner is returned by NodesOf for malformed owner accounts.
	ErrorInvalidOwner = registryconst.ErrInvalidOwner
	// ErrorCheckpointNotFound is returned if checkpoint is missing.
	ErrorCheckpointNotFound = registryconst.ErrCheckpointNotFound
)

// TypeWiFi and TypeVPN are node categories in the form contract methods
// accept them.
var (
	TypeWiFi = big.NewInt(int64(nodetype.WiFi))
	TypeVPN  = big.NewInt(int64(nodetype.VPN))
)
