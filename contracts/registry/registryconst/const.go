package registryconst

const (
	// MaxNodes is the number of nodes each category (WiFi, VPN) may hold.
	MaxNodes = 1000

	// NodeIDDomain separates node identifier preimages from any other hashed
	// data of the contract.
	NodeIDDomain = "erebrus/node/v1"
	// CheckpointDomain separates checkpoint address preimages.
	CheckpointDomain = "erebrus/checkpoint/v1"

	// IDLength is the length of node identifiers and checkpoint addresses
	// (SHA-256 digest).
	IDLength = 32
	// SequenceLength is the width of the little-endian counter encoding used in
	// identifier and address preimages.
	SequenceLength = 8
)

const (
	// ErrCapacityExceeded is thrown when registration would exceed MaxNodes
	// for the node category.
	ErrCapacityExceeded = "node capacity exceeded"
	// ErrNodeNotActive is thrown on mutation of a deactivated node.
	ErrNodeNotActive = "node is not active"
	// ErrUnauthorized is thrown when the transaction is not witnessed by the
	// account the operation requires.
	ErrUnauthorized = "unauthorized"
	// ErrInvalidNodeType is thrown when the operation category does not match
	// the stored node category.
	ErrInvalidNodeType = "invalid node type"

	// ErrNotInitialized is thrown when the registry has not been initialized yet.
	ErrNotInitialized = "registry is not initialized"
	// ErrAlreadyInitialized is thrown on repeated initialization.
	ErrAlreadyInitialized = "registry is already initialized"
	// ErrNodeNotFound is thrown when there is no node with the given identifier.
	ErrNodeNotFound = "node not found"
	// ErrInvalidOwner is thrown for owner accounts which are not a Hash160.
	ErrInvalidOwner = "invalid owner"
	// ErrInvalidNodeID is thrown for node identifiers of wrong length.
	ErrInvalidNodeID = "invalid node id"
	// ErrInvalidPrice is thrown for negative per-minute prices.
	ErrInvalidPrice = "invalid price per minute"
	// ErrCheckpointExists is thrown when the derived checkpoint slot is taken.
	ErrCheckpointExists = "checkpoint already exists"
	// ErrCheckpointNotFound is thrown when there is no checkpoint at the given
	// address.
	ErrCheckpointNotFound = "checkpoint not found"
)
