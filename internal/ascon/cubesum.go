package ascon

import (
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the canonical worker-pool size used when a caller does
// not specify one, matching the fixed-size pool the attack's driver uses.
const DefaultWorkers = 8

// CubeSum computes the cube-sum of the permutation over every assignment
// to the public-variable positions named by cubeIndex.
//
// state[1..4] must carry the capacity rows; state[0] is ignored on input.
// cubeIndex holds distinct column indices in 0..63. Column j is encoded as
// bit (63-j) of the 64-bit rate word (big-endian column numbering). On
// return, state holds the XOR of the permutation's output over all
// 2^len(cubeIndex) subsets of the cube, replacing the original capacity.
//
// workers <= 0 selects DefaultWorkers. Subsets are independent and are
// fanned out across the worker pool; each worker reduces its share with a
// five-word XOR accumulator, and the partial accumulators are combined
// once all workers finish.
func CubeSum(state *State, rounds int, cubeIndex []int, lastLinear, addConstants bool, workers int) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	n := uint(len(cubeIndex))
	total := uint64(1) << n
	capacity := [4]uint64{state[1], state[2], state[3], state[4]}

	if workers > int(total) {
		workers = int(total)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := total / uint64(workers)
	if chunk == 0 {
		chunk = 1
	}

	partials := make([]State, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := uint64(w) * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = total
		}
		if lo >= total {
			continue
		}
		g.Go(func() error {
			var acc State
			for subset := lo; subset < hi; subset++ {
				var s State
				s[0] = subsetMask(subset, cubeIndex)
				s[1], s[2], s[3], s[4] = capacity[0], capacity[1], capacity[2], capacity[3]
				Permute(&s, rounds, lastLinear, addConstants)
				for i := 0; i < 5; i++ {
					acc[i] ^= s[i]
				}
			}
			partials[w] = acc
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	var sum State
	for _, p := range partials {
		for i := 0; i < 5; i++ {
			sum[i] ^= p[i]
		}
	}
	*state = sum
}

// subsetMask builds the row-0 bitmask for the given subset of cubeIndex,
// using big-endian column numbering: column j occupies bit (63-j).
func subsetMask(subset uint64, cubeIndex []int) uint64 {
	var mask uint64
	for i, col := range cubeIndex {
		if (subset>>uint(i))&1 != 0 {
			mask |= uint64(1) << uint(63-col)
		}
	}
	return mask
}
