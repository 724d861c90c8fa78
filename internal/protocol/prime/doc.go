// Package prime generates probable primes of an exact bit length.
//
// # Overview
//
// Candidates are drawn with the top and bottom bits forced to 1, which fixes
// the bit length and makes them odd. Each candidate goes through two filters:
//
//  1. Trial division by every prime below SmallPrimeBound. The table is built
//     once with a sieve of Eratosthenes and shared read-only.
//  2. Miller-Rabin with t rounds, every one of which must pass.
//
// A rejected candidate is advanced by 2. If that carries past the requested bit
// length the walk is abandoned and a fresh candidate is drawn.
//
// # Error bound
//
// Each Miller-Rabin round lets a composite through with probability at most
// 1/4, so t is the smallest integer with 1 - 4^-t >= certainty (see Rounds).
package prime
