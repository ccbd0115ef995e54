package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/netsepio/erebrus-registry/contracts/registry/nodetype"
	"github.com/netsepio/erebrus-registry/contracts/registry/registryconst"
)

type idEncoding string

const (
	idHex    idEncoding = "hex"
	idBase58 idEncoding = "base58"
)

func parseIDEncoding(s string) (idEncoding, error) {
	switch e := idEncoding(s); e {
	case idHex, idBase58:
		return e, nil
	default:
		return "", fmt.Errorf("invalid ID encoding %q: must be hex or base58", s)
	}
}

func (e idEncoding) encode(id []byte) string {
	if e == idBase58 {
		return base58.Encode(id)
	}
	return hex.EncodeToString(id)
}

// decodeID parses 32-byte node ID or checkpoint address given either in hex
// (optionally 0x-prefixed) or in base58.
func decodeID(s string) ([]byte, error) {
	if h := strings.TrimPrefix(s, "0x"); len(h) == 2*registryconst.IDLength {
		if b, err := hex.DecodeString(h); err == nil {
			return b, nil
		}
	}

	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decode ID %q: neither hex nor base58", s)
	}
	if len(b) != registryconst.IDLength {
		return nil, fmt.Errorf("decode ID %q: invalid length %d", s, len(b))
	}
	return b, nil
}

func parseNodeType(s string) (nodetype.Type, error) {
	switch strings.ToLower(s) {
	case "wifi", "wi-fi", "1":
		return nodetype.WiFi, nil
	case "vpn", "2":
		return nodetype.VPN, nil
	default:
		return 0, fmt.Errorf("unknown node type %q: must be wifi or vpn", s)
	}
}

func nodeTypeString(t nodetype.Type) string {
	switch t {
	case nodetype.WiFi:
		return "wifi"
	case nodetype.VPN:
		return "vpn"
	default:
		return fmt.Sprintf("unknown(%d)", t)
	}
}
