// Package classical implements the cipher side of the detection engine.
//
// # Overview
//
// Five solvers cover the classical cipher families taught in introductory
// cryptography:
//   - Caesar - exhaustive search of the 26 shifts
//   - Atbash - single fixed involution, nothing to search
//   - Affine - exhaustive search of the 312 valid (a, b) pairs
//   - Vigenère - dictionary keywords plus per-column frequency analysis
//   - Monoalphabetic - frequency-seeded hill climb over mapping swaps
//
// # Quick Start
//
// Solvers operate on a bare uppercase letter stream. Normalize handles the
// extraction and remembers the layout:
//
//	norm, _ := classical.Normalize("KHOOR, ZRUOG!")
//
//	solver, _ := classical.GetSolver(classical.KindCaesar)
//	results, _ := solver.Solve(ctx, norm.Letters, english.Score, classical.DefaultParams())
//
//	fmt.Println(norm.Restore(results[0].Plaintext)) // "HELLO, WORLD!"
//
// # Candidate Keys
//
// Each family's recovered key is one variant of the Key sum type: ShiftKey,
// LinearKey, StringKey, PermutationKey, or NoKey. Format flattens a scored
// candidate into the uniform Record shape consumed by callers.
//
// # Thread Safety
//
// The solver registry is thread-safe. Solvers are stateless, hold no caches,
// and share only immutable reference tables, so any number of requests may
// run them concurrently.
package classical
