package testutil

import (
	"context"
	"sync"
)

// FakeOracle is an in-memory blob existence oracle.
type FakeOracle struct {
	mu      sync.Mutex
	scheme  string
	objects map[string]bool
	err     error
	calls   int
}

// NewFakeOracle creates an oracle for scheme holding the given "bucket/key" objects.
func NewFakeOracle(scheme string, objects ...string) *FakeOracle {
	o := &FakeOracle{scheme: scheme, objects: make(map[string]bool)}
	for _, obj := range objects {
		o.objects[obj] = true
	}
	return o
}

// Put adds an object.
func (o *FakeOracle) Put(bucket, key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.objects[bucket+"/"+key] = true
}

// FailWith makes every following lookup return err.
func (o *FakeOracle) FailWith(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.err = err
}

// Calls returns the number of lookups performed.
func (o *FakeOracle) Calls() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.calls
}

func (o *FakeOracle) Scheme() string {
	return o.scheme
}

func (o *FakeOracle) Exists(_ context.Context, bucket, key string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls++
	if o.err != nil {
		return false, o.err
	}
	return o.objects[bucket+"/"+key], nil
}

// Close is a no-op.
func (o *FakeOracle) Close() error {
	return nil
}
