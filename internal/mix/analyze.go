package mix

import (
	"sync"

	"github.com/jmylchreest/mixtint/internal/colour"
)

// AnalyzeAll decomposes every target colour against the basis built
// once from the base colours. Results are index-aligned with targets
// regardless of execution order.
//
// Empty targets yield an empty result slice and no error (nothing to
// do); an empty basis with targets present is ErrEmptyBasis. Large
// residuals and all-zero coefficient vectors are ordinary data in a
// Result, never errors.
func AnalyzeAll(bases, targets []colour.Colour, opts Options) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return []Result{}, nil
	}

	basis, err := NewBasis(bases)
	if err != nil {
		return nil, err
	}

	// Snapshot: the caller may mutate its colour list while we run.
	snapshot := make([]colour.Colour, len(targets))
	copy(snapshot, targets)

	results := make([]Result, len(snapshot))
	run := func(i int) {
		tgt := snapshot[i]
		r := basis.decompose(colour.Normalize(tgt.RGB), opts)
		r.TargetLabel = tgt.DisplayLabel()
		r.TargetHex = tgt.Hex()
		r.TargetRGB = tgt.RGB
		results[i] = r
	}

	workers := opts.Workers
	if workers > len(snapshot) {
		workers = len(snapshot)
	}
	if workers < 2 {
		for i := range snapshot {
			run(i)
		}
		return results, nil
	}

	// Per-target decompositions are independent; fan out and let each
	// worker write its own index so target order is preserved.
	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				run(i)
			}
		}()
	}
	for i := range snapshot {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return results, nil
}
