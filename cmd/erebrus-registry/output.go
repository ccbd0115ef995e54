package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"text/tabwriter"

	"github.com/netsepio/erebrus-registry/contracts/registry/nodetype"
	rpcregistry "github.com/netsepio/erebrus-registry/rpc/registry"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// printer renders command results either as aligned text or as JSON.
type printer struct {
	format string
	ids    idEncoding
	w      io.Writer
}

type (
	registryInfo struct {
		Contract string `json:"contract"`
		Owner    string `json:"owner"`
		Version  string `json:"version"`
		WiFi     int64  `json:"wifi_nodes"`
		VPN      int64  `json:"vpn_nodes"`
		Capacity int    `json:"capacity"`
	}

	nodeInfo struct {
		ID          string    `json:"id"`
		Type        string    `json:"type"`
		Owner       string    `json:"owner"`
		DeviceID    string    `json:"device_id"`
		DID         string    `json:"did"`
		Location    string    `json:"location"`
		Active      bool      `json:"active"`
		Checkpoints int64     `json:"checkpoints"`
		WiFi        *wifiInfo `json:"wifi,omitempty"`
		VPN         *vpnInfo  `json:"vpn,omitempty"`
	}

	wifiInfo struct {
		SSID           string `json:"ssid"`
		PricePerMinute string `json:"price_per_minute"`
	}

	vpnInfo struct {
		Name      string `json:"name"`
		IPAddress string `json:"ip_address"`
		ISPInfo   string `json:"isp_info"`
		Region    string `json:"region"`
	}

	checkpointInfo struct {
		Sequence  uint64 `json:"sequence"`
		Address   string `json:"address"`
		Submitter string `json:"submitter"`
		DataHash  string `json:"data_hash"`
	}
)

func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) kv(pairs ...string) error {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(tw, "%s:\t%s\n", pairs[i], pairs[i+1])
	}
	return tw.Flush()
}

func (p *printer) id(b []byte) error {
	if p.format == formatJSON {
		return p.json(map[string]string{"id": p.ids.encode(b)})
	}
	_, err := fmt.Fprintln(p.w, p.ids.encode(b))
	return err
}

func (p *printer) info(i registryInfo) error {
	if p.format == formatJSON {
		return p.json(i)
	}
	return p.kv(
		"Contract", i.Contract,
		"Owner", i.Owner,
		"Version", i.Version,
		"Wi-Fi nodes", fmt.Sprintf("%d/%d", i.WiFi, i.Capacity),
		"VPN nodes", fmt.Sprintf("%d/%d", i.VPN, i.Capacity),
	)
}

func (p *printer) node(v *rpcregistry.NodeView) error {
	n := p.nodeInfo(v)
	if p.format == formatJSON {
		return p.json(n)
	}

	pairs := []string{
		"ID", n.ID,
		"Type", n.Type,
		"Owner", n.Owner,
		"Device", n.DeviceID,
		"DID", n.DID,
		"Location", n.Location,
		"Active", fmt.Sprint(n.Active),
		"Checkpoints", fmt.Sprint(n.Checkpoints),
	}
	switch {
	case n.WiFi != nil:
		pairs = append(pairs,
			"SSID", n.WiFi.SSID,
			"Price per minute", n.WiFi.PricePerMinute)
	case n.VPN != nil:
		pairs = append(pairs,
			"Name", n.VPN.Name,
			"IP address", n.VPN.IPAddress,
			"ISP", n.VPN.ISPInfo,
			"Region", n.VPN.Region)
	}
	return p.kv(pairs...)
}

func (p *printer) nodeInfo(v *rpcregistry.NodeView) nodeInfo {
	n := nodeInfo{
		ID:          p.ids.encode(v.ID),
		Type:        nodeTypeString(nodetype.Type(v.Type.Int64())),
		Owner:       address.Uint160ToString(v.Owner),
		DeviceID:    v.DeviceID,
		DID:         v.DID,
		Location:    v.Location,
		Active:      v.Active,
		Checkpoints: v.Checkpoints.Int64(),
	}
	switch d := v.Details.(type) {
	case rpcregistry.WiFiDetails:
		n.WiFi = &wifiInfo{SSID: d.SSID, PricePerMinute: bigString(d.PricePerMinute)}
	case rpcregistry.VPNDetails:
		n.VPN = &vpnInfo{Name: d.Name, IPAddress: d.IPAddress, ISPInfo: d.ISPInfo, Region: d.Region}
	}
	return n
}

func (p *printer) idList(ids [][]byte) error {
	encoded := make([]string, len(ids))
	for i := range ids {
		encoded[i] = p.ids.encode(ids[i])
	}
	if p.format == formatJSON {
		return p.json(encoded)
	}
	for _, s := range encoded {
		if _, err := fmt.Fprintln(p.w, s); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) checkpoints(cps []rpcregistry.NodeCheckpoint) error {
	res := make([]checkpointInfo, len(cps))
	for i, cp := range cps {
		res[i] = checkpointInfo{
			Sequence:  cp.Sequence,
			Address:   p.ids.encode(cp.Address),
			Submitter: address.Uint160ToString(cp.Submitter),
			DataHash:  cp.DataHash,
		}
	}
	if p.format == formatJSON {
		return p.json(res)
	}

	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tADDRESS\tSUBMITTER\tDATA HASH")
	for _, cp := range res {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", cp.Sequence, cp.Address, cp.Submitter, cp.DataHash)
	}
	return tw.Flush()
}

func contractString(h util.Uint160) string {
	return "0x" + h.StringLE()
}

func bigString(i *big.Int) string {
	if i == nil {
		return "0"
	}
	return i.String()
}
