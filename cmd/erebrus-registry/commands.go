package main

import (
	"fmt"
	"strconv"

	"github.com/netsepio/erebrus-registry/contracts/registry/registryconst"
	rpcregistry "github.com/netsepio/erebrus-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// withRegistry runs f over a fresh connection to the configured registry.
func withRegistry(cmd *cobra.Command, opts *options, f func(*remoteRegistry, *printer) error) error {
	p, err := opts.printer(cmd)
	if err != nil {
		return err
	}

	r, err := dialRegistry(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer r.close()

	return f(r, p)
}

func newInfoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show registry owner, version and node counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRegistry(cmd, opts, func(r *remoteRegistry, p *printer) error {
				owner, err := r.reader.Owner()
				if err != nil {
					return fmt.Errorf("get owner: %w", err)
				}
				version, err := r.reader.Version()
				if err != nil {
					return fmt.Errorf("get version: %w", err)
				}
				wifi, err := r.reader.NodeCount(rpcregistry.TypeWiFi)
				if err != nil {
					return fmt.Errorf("get Wi-Fi node count: %w", err)
				}
				vpn, err := r.reader.NodeCount(rpcregistry.TypeVPN)
				if err != nil {
					return fmt.Errorf("get VPN node count: %w", err)
				}

				return p.info(registryInfo{
					Contract: contractString(r.hash),
					Owner:    address.Uint160ToString(owner),
					Version:  versionString(version.Int64()),
					WiFi:     wifi.Int64(),
					VPN:      vpn.Int64(),
					Capacity: registryconst.MaxNodes,
				})
			})
		},
	}
}

func newNodeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "node <id>",
		Short: "Show node record along with its category details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := decodeID(args[0])
			if err != nil {
				return err
			}

			return withRegistry(cmd, opts, func(r *remoteRegistry, p *printer) error {
				v, err := r.reader.NodeView(id)
				if err != nil {
					return err
				}
				return p.node(v)
			})
		},
	}
}

func newNodesCommand(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "nodes [owner]",
		Short: "List IDs of nodes owned by the account, or all nodes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var owner []byte
			if len(args) == 1 {
				h, err := address.StringToUint160(args[0])
				if err != nil {
					return fmt.Errorf("invalid owner address %q: %w", args[0], err)
				}
				owner = h.BytesBE()
			}

			return withRegistry(cmd, opts, func(r *remoteRegistry, p *printer) error {
				items, err := r.reader.NodesOfExpanded(owner, limit)
				if err != nil {
					return fmt.Errorf("list nodes: %w", err)
				}

				ids, err := itemsToIDs(items)
				if err != nil {
					return err
				}
				if len(ids) == limit {
					opts.log.Warn("node list may be truncated", zap.Int("limit", limit))
				}
				return p.idList(ids)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 2*registryconst.MaxNodes, "maximum number of IDs to fetch")

	return cmd
}

func newCheckpointsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "checkpoints <id>",
		Short: "List checkpoints of the node in submission order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := decodeID(args[0])
			if err != nil {
				return err
			}

			return withRegistry(cmd, opts, func(r *remoteRegistry, p *printer) error {
				cps, err := r.reader.Checkpoints(id)
				if err != nil {
					return err
				}
				opts.log.Debug("checkpoints fetched", zap.Int("count", len(cps)))
				return p.checkpoints(cps)
			})
		},
	}
}

func newNodeIDCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "node-id <wifi|vpn> <ordinal>",
		Short: "Derive ID of the node registered under the ordinal of its category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := parseNodeType(args[0])
			if err != nil {
				return err
			}
			ordinal, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid ordinal %q: %w", args[1], err)
			}
			if ordinal >= registryconst.MaxNodes {
				opts.log.Warn("ordinal exceeds category capacity",
					zap.Uint64("ordinal", ordinal), zap.Int("capacity", registryconst.MaxNodes))
			}

			p, err := opts.printer(cmd)
			if err != nil {
				return err
			}
			return p.id(rpcregistry.NodeID(typ, ordinal))
		},
	}
}

func newCheckpointAddressCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "checkpoint-address <id> <seq>",
		Short: "Derive address of the checkpoint number seq of the node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := decodeID(args[0])
			if err != nil {
				return err
			}
			seq, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sequence number %q: %w", args[1], err)
			}

			addr, err := rpcregistry.CheckpointAddress(id, seq)
			if err != nil {
				return err
			}

			p, err := opts.printer(cmd)
			if err != nil {
				return err
			}
			return p.id(addr)
		},
	}
}

func itemsToIDs(items []stackitem.Item) ([][]byte, error) {
	res := make([][]byte, 0, len(items))
	for i := range items {
		b, err := items[i].TryBytes()
		if err != nil {
			return nil, fmt.Errorf("node ID #%d: %w", i, err)
		}
		res = append(res, b)
	}
	return res, nil
}

// versionString formats contract version the way it's composed on-chain:
// major*1_000_000 + minor*1_000 + patch.
func versionString(v int64) string {
	return fmt.Sprintf("%d.%d.%d", v/1_000_000, v/1_000%1_000, v%1_000)
}
