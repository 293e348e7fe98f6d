package classical

import (
	"fmt"
	"sync"
)

// Global solver registry. Solvers register themselves at init time; the
// detection orchestrator resolves them by kind.
var (
	solversRegistry = make(map[CipherKind]Solver)
	registryMu      sync.RWMutex
)

// solveOrder fixes the order solvers run in auto mode so merged output is
// reproducible regardless of registration order.
var solveOrder = []CipherKind{
	KindCaesar,
	KindAtbash,
	KindAffine,
	KindVigenere,
	KindMonoalphabetic,
}

// RegisterSolver adds a solver to the global registry.
func RegisterSolver(s Solver) error {
	if s == nil {
		return fmt.Errorf("cannot register nil solver")
	}

	kind := s.Kind()
	if kind == "" || kind == KindAuto {
		return fmt.Errorf("solver kind %q is not registrable", kind)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := solversRegistry[kind]; exists {
		return fmt.Errorf("solver %s is already registered", kind)
	}

	solversRegistry[kind] = s
	return nil
}

// GetSolver retrieves a solver from the registry by cipher kind.
func GetSolver(kind CipherKind) (Solver, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, exists := solversRegistry[kind]
	return s, exists
}

// Solvers returns all registered solvers in the fixed auto-mode order.
func Solvers() []Solver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Solver, 0, len(solversRegistry))
	for _, kind := range solveOrder {
		if s, exists := solversRegistry[kind]; exists {
			out = append(out, s)
		}
	}
	return out
}

// Kinds returns the registered cipher kinds in the fixed auto-mode order.
func Kinds() []CipherKind {
	kinds := make([]CipherKind, 0, len(solveOrder))
	for _, s := range Solvers() {
		kinds = append(kinds, s.Kind())
	}
	return kinds
}

func mustRegister(s Solver) {
	if err := RegisterSolver(s); err != nil {
		panic(err)
	}
}
