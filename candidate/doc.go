// Package candidate builds complete test-case candidates for a pairwise
// generation round.
//
// Two interchangeable strategies implement Generator:
//
//   - Greedy (Strategy A, default): seeded deterministic greedy. For a given
//     uncovered pair it fixes the pair's two parameters, then walks the other
//     parameters in declared order and picks, for each, the value that forms
//     the most currently uncovered pairs with the values already fixed. Ties
//     go to the earliest declared value. Candidates returns one seeded
//     candidate per uncovered pair, so a round is a pure function of the
//     coverage state.
//     Complexity per candidate: O(n² · v) for n parameters of ≤v values.
//
//   - WeightedRandom (Strategy B): every parameter independently draws a
//     value with probability proportional to the number of uncovered pairs
//     touching that value; a parameter whose values all have weight zero
//     draws uniformly. Candidates returns a batch (default 50) per round.
//     Complexity per batch: O(Size() + batch · n · v).
//
// Randomness:
//
//   - WeightedRandom draws exclusively from an injected Rand (satisfied by
//     *math/rand.Rand). NewRand applies the seed policy seed==0 ⇒ 1, so runs
//     are reproducible unless the caller injects its own source.
//
// Errors:
//
//   - ErrUnknownStrategy: New or ParseStrategy received an unknown strategy.
package candidate
