package config

import "time"

// Timeouts used by commands that talk to a node.
const (
	DialTimeout = 10 * time.Second // connecting to the RPC endpoint
	CallTimeout = 30 * time.Second // one eth_call round trip
)
