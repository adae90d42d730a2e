package experiment

import (
	"go.uber.org/zap"

	"Powerline/pkg/async"
)

type outcome struct {
	result *Result
	err    error
}

// RunSeeds runs one experiment per seed, all in parallel. Each run owns its
// own seeded source, so results are reproducible regardless of scheduling
// and come back in seed order. The first failing run aborts the batch.
func RunSeeds(cfg Config, seeds []uint64, logger *zap.Logger) ([]*Result, error) {
	promises := make([]<-chan outcome, len(seeds))
	for i, seed := range seeds {
		c := cfg
		c.Seed = seed
		promises[i] = async.Promise(func() outcome {
			result, err := Run(c, logger)
			return outcome{result: result, err: err}
		})
	}

	outcomes := <-async.GatherN(promises...)
	results := make([]*Result, len(outcomes))
	for i, o := range outcomes {
		if o.err != nil {
			return nil, o.err
		}
		results[i] = o.result
	}
	return results, nil
}
