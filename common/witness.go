package common

import "github.com/nspcc-dev/neo-go/pkg/interop/runtime"

// ErrWitnessFailed appears when the method must be called
// using certain account but was not.
const ErrWitnessFailed = "witness check failed"

// CheckWitness checks witness of the passed account.
// It panics with msg on fail, ErrWitnessFailed is used for empty msg.
func CheckWitness(account []byte, msg string) {
	if !runtime.CheckWitness(account) {
		if len(msg) == 0 {
			panic(ErrWitnessFailed)
		}
		panic(msg)
	}
}
