package registry

import (
	"encoding/binary"
	"errors"

	"github.com/netsepio/erebrus-registry/contracts/registry/nodetype"
	"github.com/netsepio/erebrus-registry/contracts/registry/registryconst"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
)

// ErrInvalidNodeID is returned for node identifiers which are not
// registryconst.IDLength bytes long.
var ErrInvalidNodeID = errors.New(registryconst.ErrInvalidNodeID)

// NodeID returns the identifier the contract assigns to the node registered
// under the given ordinal of its category. Ordinals start from zero.
func NodeID(typ nodetype.Type, ordinal uint64) []byte {
	data := make([]byte, 0, 1+registryconst.SequenceLength)
	data = append(data, byte(typ))
	data = binary.LittleEndian.AppendUint64(data, ordinal)
	return hashWithDomain(registryconst.NodeIDDomain, data)
}

// CheckpointAddress returns the address of the checkpoint number seq of the
// node. It is the same value contract's checkpointAddress method returns.
func CheckpointAddress(nodeID []byte, seq uint64) ([]byte, error) {
	if len(nodeID) != registryconst.IDLength {
		return nil, ErrInvalidNodeID
	}

	data := make([]byte, 0, len(nodeID)+registryconst.SequenceLength)
	data = append(data, nodeID...)
	data = binary.LittleEndian.AppendUint64(data, seq)
	return hashWithDomain(registryconst.CheckpointDomain, data), nil
}

// CheckpointAddresses returns addresses of the first n checkpoints of the
// node in submission order.
func CheckpointAddresses(nodeID []byte, n uint64) ([][]byte, error) {
	res := make([][]byte, 0, n)
	for i := uint64(0); i < n; i++ {
		addr, err := CheckpointAddress(nodeID, i)
		if err != nil {
			return nil, err
		}
		res = append(res, addr)
	}
	return res, nil
}

// hashWithDomain returns SHA256(domain || 0x00 || data).
func hashWithDomain(domain string, data []byte) []byte {
	buf := make([]byte, 0, len(domain)+1+len(data))
	buf = append(buf, domain...)
	buf = append(buf, 0x00)
	buf = append(buf, data...)
	return hash.Sha256(buf).BytesBE()
}
