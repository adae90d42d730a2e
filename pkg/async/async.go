// Package async provides the small promise helpers used to fan independent
// experiment runs out across goroutines.
package async

// Promise runs f in its own goroutine and returns a channel that yields the
// result exactly once, then closes.
func Promise[R any](f func() R) <-chan R {
	out := make(chan R, 1)
	go func() {
		out <- f()
		close(out)
	}()
	return out
}

// Job runs f in its own goroutine; the returned channel closes when f
// returns.
func Job(f func()) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		f()
		close(done)
	}()
	return done
}

// GatherN collects the results of several promises of the same type,
// preserving argument order.
func GatherN[R any](cs ...<-chan R) <-chan []R {
	return Promise(func() []R {
		results := make([]R, len(cs))
		for i, c := range cs {
			results[i] = <-c
		}
		return results
	})
}
