package main

import (
	"context"
	"errors"
)

// errNoDimensions is returned for images whose header reports a zero size
var errNoDimensions = errors.New("image has no dimensions")

// loadRequest identifies one navigation's dimension lookup
type loadRequest struct {
	seq       uint64
	index     int
	firstLoad bool
}

// loadResult is the outcome of a loadRequest
type loadResult struct {
	loadRequest
	dims Dimensions
	err  error
}

// dimensionLoader runs dimension lookups in the background and hands the
// results back to the update loop. Only the most recent request is current;
// anything older is stale and must be dropped by the caller.
type dimensionLoader struct {
	resolver DimensionResolver
	results  chan loadResult
	seq      uint64
	pending  bool
	cancel   context.CancelFunc
}

func newDimensionLoader(resolver DimensionResolver) *dimensionLoader {
	return &dimensionLoader{
		resolver: resolver,
		results:  make(chan loadResult, 16),
	}
}

// request starts a lookup for index and supersedes any earlier request
func (l *dimensionLoader) request(index int, firstLoad bool) loadRequest {
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.seq++
	l.pending = true

	req := loadRequest{seq: l.seq, index: index, firstLoad: firstLoad}
	go func() {
		dims, err := l.resolver.ResolveDimensions(ctx, req.index)
		if err == nil && (dims.Width <= 0 || dims.Height <= 0) {
			err = errNoDimensions
		}
		select {
		case l.results <- loadResult{loadRequest: req, dims: dims, err: err}:
		case <-ctx.Done():
			debugLog("Dimension lookup for [%d] superseded before delivery", req.index+1)
		}
	}()
	return req
}

// poll returns the next current result without blocking.
// Stale results are discarded.
func (l *dimensionLoader) poll() (loadResult, bool) {
	for {
		select {
		case res := <-l.results:
			if !l.isCurrent(res.seq) {
				debugLog("Dropping stale dimensions for [%d] (request %d, current %d)",
					res.index+1, res.seq, l.seq)
				continue
			}
			l.pending = false
			return res, true
		default:
			return loadResult{}, false
		}
	}
}

func (l *dimensionLoader) isCurrent(seq uint64) bool {
	return seq == l.seq
}

// stop cancels the outstanding request, if any
func (l *dimensionLoader) stop() {
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	// anything still in flight is stale from here on
	l.seq++
	l.pending = false
}
