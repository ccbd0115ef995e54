package registry

import (
	"fmt"
	"math/big"

	"github.com/netsepio/erebrus-registry/contracts/registry/nodetype"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Details is category-specific node data, either WiFiDetails or VPNDetails.
type Details interface {
	// NodeType returns the category the details belong to.
	NodeType() nodetype.Type

	details()
}

// WiFiDetails are details of nodetype.WiFi nodes.
type WiFiDetails struct {
	SSID           string
	PricePerMinute *big.Int
}

// VPNDetails are details of nodetype.VPN nodes.
type VPNDetails struct {
	Name      string
	IPAddress string
	ISPInfo   string
	Region    string
}

// NodeType implements Details.
func (WiFiDetails) NodeType() nodetype.Type { return nodetype.WiFi }

// NodeType implements Details.
func (VPNDetails) NodeType() nodetype.Type { return nodetype.VPN }

func (WiFiDetails) details() {}
func (VPNDetails) details()  {}

// NodeView is a complete node record: shared header and the details of its
// category.
type NodeView struct {
	RegistryNode
	Details Details
}

// NodeView fetches the node header and its category details.
func (c *ContractReader) NodeView(nodeID []byte) (*NodeView, error) {
	node, err := c.GetNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("get node: %w", err)
	}

	res := &NodeView{RegistryNode: *node}
	switch typ := nodetype.Type(node.Type.Int64()); typ {
	case nodetype.WiFi:
		w, err := c.GetWiFi(nodeID)
		if err != nil {
			return nil, fmt.Errorf("get Wi-Fi details: %w", err)
		}
		res.Details = WiFiDetails{SSID: w.SSID, PricePerMinute: w.PricePerMinute}
	case nodetype.VPN:
		v, err := c.GetVPN(nodeID)
		if err != nil {
			return nil, fmt.Errorf("get VPN details: %w", err)
		}
		res.Details = VPNDetails{Name: v.Name, IPAddress: v.IPAddress, ISPInfo: v.ISPInfo, Region: v.Region}
	default:
		return nil, fmt.Errorf("unknown node type %d", typ)
	}

	return res, nil
}

// WiFiUpdate lists Wi-Fi node fields to overwrite. Nil fields are left
// unchanged, an empty string is a value.
type WiFiUpdate struct {
	SSID           *string
	Location       *string
	PricePerMinute *big.Int
}

// VPNUpdate lists VPN node fields to overwrite. Nil fields are left
// unchanged, an empty string is a value.
type VPNUpdate struct {
	Name      *string
	IPAddress *string
	ISPInfo   *string
	Region    *string
	Location  *string
}

// UpdateWiFi sends updateWiFiNode transaction overwriting the set fields of u.
func (c *Contract) UpdateWiFi(nodeID []byte, u WiFiUpdate) (util.Uint256, uint32, error) {
	return c.UpdateWiFiNode(nodeID, optString(u.SSID), optString(u.Location), optInt(u.PricePerMinute))
}

// UpdateVPN sends updateVPNNode transaction overwriting the set fields of u.
func (c *Contract) UpdateVPN(nodeID []byte, u VPNUpdate) (util.Uint256, uint32, error) {
	return c.UpdateVPNNode(nodeID, optString(u.Name), optString(u.IPAddress),
		optString(u.ISPInfo), optString(u.Region), optString(u.Location))
}

// optString converts absent value to untyped nil, so that it's passed to the
// contract as Null.
func optString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func optInt(i *big.Int) any {
	if i == nil {
		return nil
	}
	return i
}
