package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	rpcregistry "github.com/netsepio/erebrus-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/invoker"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

var (
	errMissingRPC      = errors.New("missing Neo RPC endpoint")
	errMissingContract = errors.New("missing registry contract")
)

// remoteRegistry is a read-only connection to the registry contract.
type remoteRegistry struct {
	rpc    *rpcclient.Client
	reader *rpcregistry.ContractReader
	hash   util.Uint160
}

// dialRegistry connects to the configured Neo RPC server. Connection and all
// requests are done within configured timeout.
func dialRegistry(ctx context.Context, opts *options) (*remoteRegistry, error) {
	endpoint := opts.rpcEndpoint()
	if endpoint == "" {
		return nil, errMissingRPC
	}
	if opts.contract() == "" {
		return nil, errMissingContract
	}

	h, err := parseContractHash(opts.contract())
	if err != nil {
		return nil, err
	}

	opts.log.Debug("dialing RPC server",
		zap.String("endpoint", endpoint),
		zap.Stringer("contract", h),
		zap.Duration("timeout", opts.timeout()))

	c, err := rpcclient.New(ctx, endpoint, rpcclient.Options{
		DialTimeout:    opts.timeout(),
		RequestTimeout: opts.timeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	err = c.Init()
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("RPC client init: %w", err)
	}

	return &remoteRegistry{
		rpc:    c,
		reader: rpcregistry.NewReader(invoker.New(c, nil), h),
		hash:   h,
	}, nil
}

func (x *remoteRegistry) close() {
	x.rpc.Close()
}

// parseContractHash accepts both Neo address and hex-encoded LE script hash.
func parseContractHash(s string) (util.Uint160, error) {
	h, err := address.StringToUint160(s)
	if err == nil {
		return h, nil
	}

	h, err = util.Uint160DecodeStringLE(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("invalid contract %q: neither address nor script hash", s)
	}
	return h, nil
}
