package sim

import (
	"fmt"
	"math/rand"
	"sort"
)

// Dispatch policy names accepted by NewDispatchPolicy.
const (
	PolicyRoundRobin  = "round-robin"
	PolicyLeastLoaded = "least-loaded"
	PolicyRandom      = "random"
)

// ValidDispatchPolicies is the set of recognized dispatch policy names.
var ValidDispatchPolicies = map[string]bool{PolicyRoundRobin: true, PolicyLeastLoaded: true, PolicyRandom: true}

// IsValidDispatchPolicy returns true if name is a recognized dispatch policy.
func IsValidDispatchPolicy(name string) bool {
	return ValidDispatchPolicies[name]
}

// DispatchPolicyNames returns the recognized policy names in sorted order.
func DispatchPolicyNames() []string {
	names := make([]string, 0, len(ValidDispatchPolicies))
	for name := range ValidDispatchPolicies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DispatchPolicy picks the server that handles an incoming request.
//
// The set of implementations is closed: RoundRobin, LeastLoaded and
// RandomUniform. A new policy is a new type in this package, registered in
// ValidDispatchPolicies and NewDispatchPolicy.
type DispatchPolicy interface {
	// Select returns one element of servers. servers must be non-empty.
	Select(servers []*Server, requestID int) *Server
	// Name returns the policy's registered name.
	Name() string

	dispatchPolicy()
}

// RoundRobin routes request i to servers[i mod N]. It ignores load and keeps no state.
type RoundRobin struct{}

// Select implements DispatchPolicy for RoundRobin.
func (RoundRobin) Select(servers []*Server, requestID int) *Server {
	if len(servers) == 0 {
		panic("RoundRobin.Select: empty server pool")
	}
	idx := requestID % len(servers)
	if idx < 0 {
		idx += len(servers)
	}
	return servers[idx]
}

func (RoundRobin) Name() string { return PolicyRoundRobin }

func (RoundRobin) dispatchPolicy() {}

// LeastLoaded routes to the server with minimum Load.
// Ties are broken by lowest server ID.
type LeastLoaded struct{}

// Select implements DispatchPolicy for LeastLoaded.
func (LeastLoaded) Select(servers []*Server, _ int) *Server {
	if len(servers) == 0 {
		panic("LeastLoaded.Select: empty server pool")
	}

	target := servers[0]
	for _, s := range servers[1:] {
		if s.Load < target.Load || (s.Load == target.Load && s.ID < target.ID) {
			target = s
		}
	}
	return target
}

func (LeastLoaded) Name() string { return PolicyLeastLoaded }

func (LeastLoaded) dispatchPolicy() {}

// RandomUniform routes to a uniformly random server drawn from its stream.
type RandomUniform struct {
	rng *rand.Rand
}

// NewRandomUniform creates a random policy drawing from rng.
func NewRandomUniform(rng *rand.Rand) *RandomUniform {
	return &RandomUniform{rng: rng}
}

// Select implements DispatchPolicy for RandomUniform.
func (p *RandomUniform) Select(servers []*Server, _ int) *Server {
	if len(servers) == 0 {
		panic("RandomUniform.Select: empty server pool")
	}
	return servers[p.rng.Intn(len(servers))]
}

func (p *RandomUniform) Name() string { return PolicyRandom }

func (p *RandomUniform) dispatchPolicy() {}

// NewDispatchPolicy creates a dispatch policy by name.
// rng is consumed only by the random policy and may be nil for the others.
func NewDispatchPolicy(name string, rng *rand.Rand) (DispatchPolicy, error) {
	switch name {
	case PolicyRoundRobin:
		return RoundRobin{}, nil
	case PolicyLeastLoaded:
		return LeastLoaded{}, nil
	case PolicyRandom:
		if rng == nil {
			return nil, fmt.Errorf("policy %q requires a random stream", name)
		}
		return NewRandomUniform(rng), nil
	default:
		return nil, fmt.Errorf("unknown dispatch policy %q (valid: %v)", name, DispatchPolicyNames())
	}
}
