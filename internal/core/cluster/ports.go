package cluster

// =============================================================================
// Port Allocation
// =============================================================================

// AllocatePort returns the port bound by instance `index` of a role with
// base port `basePort`. The host port always equals the container port.
//
// This is a pure function with no side effects.
//
// Example:
//
//	AllocatePort(40000, 0) // returns 40000
//	AllocatePort(50000, 3) // returns 50003
func AllocatePort(basePort, index int) int {
	return basePort + index
}
