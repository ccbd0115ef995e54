package nodetype

// Type is an enumeration for node categories.
type Type int

// Node categories.
const (
	_ Type = iota

	// WiFi stands for Wi-Fi hotspots sold by the minute.
	WiFi

	// VPN stands for VPN relays.
	VPN
)
