package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/std"

// Contract version is encoded as major*1_000_000 + minor*1_000 + patch and
// must agree with the VERSION file.
const (
	major = 0
	minor = 1
	patch = 0

	// The oldest deployed version the contract can be updated from.
	minMajor = 0
	minMinor = 1
	minPatch = 0

	Version = major*1_000_000 + minor*1_000 + patch

	PrevVersion = minMajor*1_000_000 + minMinor*1_000 + minPatch
)

const (
	// ErrVersionMismatch is thrown by CheckVersion when the deployed contract
	// is older than PrevVersion.
	ErrVersionMismatch = "previous version mismatch"

	// ErrAlreadyUpdated is thrown by CheckVersion when the deployed contract
	// is of the current version already.
	ErrAlreadyUpdated = "contract is already of the latest version"
)

// CheckVersion panics unless storage of the contract of version from can be
// served by the current code.
func CheckVersion(from int) {
	if from < PrevVersion {
		panic(ErrVersionMismatch + ": expected >=" + std.Itoa(PrevVersion, 10))
	}
	if from == Version {
		panic(ErrAlreadyUpdated + ": " + std.Itoa(Version, 10))
	}
}

// AppendVersion adds the version of the running contract to update data, so
// that _deploy of the new code receives it as the last argument.
func AppendVersion(data any) []any {
	if data == nil {
		return []any{Version}
	}
	return append(data.([]any), Version)
}
