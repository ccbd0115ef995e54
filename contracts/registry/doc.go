/*
Package registry implements Erebrus Registry contract which tracks Wi-Fi
hotspots and VPN relays contributed by independent operators along with their
proofs of activity (checkpoints).

Registry is owned by a single account set on initialization. Each node
category holds at most registryconst.MaxNodes nodes. Nodes are updated by
their operators while active and deactivated by the registry owner only.
Checkpoints form an append-only log per node: the storage address of each
checkpoint is derived from the node identifier and the checkpoint sequence
number, so the whole log can be enumerated with the node's checkpoint counter.

# Contract notifications

RegistryInitialized notification. This notification is produced when the
registry is initialized.

	RegistryInitialized:
	  - name: owner
	    type: Hash160

NodeRegistered notification. This notification is produced when a new node
is registered.

	NodeRegistered:
	  - name: nodeID
	    type: ByteArray
	  - name: nodeType
	    type: Integer
	  - name: owner
	    type: Hash160

NodeUpdated notification. This notification is produced when the node
operator changes node data.

	NodeUpdated:
	  - name: nodeID
	    type: ByteArray

NodeDeactivated notification. This notification is produced when the registry
owner deactivates the node.

	NodeDeactivated:
	  - name: nodeID
	    type: ByteArray

CheckpointSubmitted notification. This notification is produced when a new
checkpoint is stored.

	CheckpointSubmitted:
	  - name: nodeID
	    type: ByteArray
	  - name: sequence
	    type: Integer
	  - name: address
	    type: ByteArray
*/
package registry

/*
Contract storage model.

Current conventions:
 <id>: 32-byte node identifier,
       SHA-256("erebrus/node/v1" | 0x00 | <type> | <ordinal>)
 <type>: 1-byte node category (1 for Wi-Fi, 2 for VPN)
 <ordinal>: 8-byte little-endian number of the node within its category
 <owner>: 20-byte NEO3 account of the node operator
 <addr>: 32-byte checkpoint address,
         SHA-256("erebrus/checkpoint/v1" | 0x00 | <id> | <seq>)
 <seq>: 8-byte little-endian checkpoint number within the node

# Summary
Key-value storage format:
 - 'r' -> std.Serialize(Registry)
   registry owner and number of nodes per category
 - 'n'<id> -> std.Serialize(Node)
   common node data
 - 'w'<id> -> std.Serialize(WiFi)
   Wi-Fi specific node data, present for Wi-Fi nodes only
 - 'v'<id> -> std.Serialize(VPN)
   VPN specific node data, present for VPN nodes only
 - 'o'<owner><id> -> <id>
   index of nodes by operator
 - 'c'<addr> -> std.Serialize(Checkpoint)
   checkpoints

# Checkpoints
Checkpoint number seq of the node is stored by the address derived from <id>
and seq, where seq is the node checkpoint counter at the moment of submission.
Addresses of all node checkpoints can be derived from 0 up to the current
counter value.
*/
