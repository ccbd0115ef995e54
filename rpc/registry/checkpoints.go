package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/netsepio/erebrus-registry/contracts/registry/registryconst"
)

// ErrCheckpointGap is returned when the node counts more checkpoints than
// can be found at their derived addresses.
var ErrCheckpointGap = errors.New("checkpoint missing at derived address")

// NodeCheckpoint is a checkpoint along with its place in the node log.
type NodeCheckpoint struct {
	RegistryCheckpoint
	Sequence uint64
	Address  []byte
}

// Checkpoints returns all checkpoints of the node in submission order. The
// contract doesn't keep a list of them, addresses are re-derived from the
// node checkpoint counter.
func (c *ContractReader) Checkpoints(nodeID []byte) ([]NodeCheckpoint, error) {
	node, err := c.GetNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("get node: %w", err)
	}
	if !node.Checkpoints.IsUint64() {
		return nil, fmt.Errorf("invalid checkpoint counter %s", node.Checkpoints)
	}

	addrs, err := CheckpointAddresses(nodeID, node.Checkpoints.Uint64())
	if err != nil {
		return nil, err
	}

	res := make([]NodeCheckpoint, 0, len(addrs))
	for i, addr := range addrs {
		cp, err := c.GetCheckpoint(addr)
		if err != nil {
			// Contract panics with ErrCheckpointNotFound message, it ends up
			// in the FAULT exception text.
			if strings.Contains(err.Error(), registryconst.ErrCheckpointNotFound) {
				return nil, fmt.Errorf("%w: sequence %d", ErrCheckpointGap, i)
			}
			return nil, fmt.Errorf("get checkpoint #%d: %w", i, err)
		}
		res = append(res, NodeCheckpoint{
			RegistryCheckpoint: *cp,
			Sequence:           uint64(i),
			Address:            addr,
		})
	}

	return res, nil
}
