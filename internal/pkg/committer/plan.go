// Package committer batches Spanner mutations and applies them atomically.
//
// Blind writes are collected as mutations into a CommitPlan and handed to a
// Committer, which applies every mutation in the plan in one commit.
//
//	plan := committer.NewPlan()
//	plan.Add(products.InsertMut(data))
//	return c.Apply(ctx, plan)
//
// Work that has to read before it writes, such as DML whose row count decides
// what to buffer next, goes through ApplyWithReadWriteTransaction instead.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan collects mutations to be applied in a single commit.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are ignored.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Committer runs plans and transactional callbacks against one client.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply writes every mutation in the plan in one commit. An empty plan is a no-op.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// ApplyWithReadWriteTransaction runs fn in a read-write transaction. The client
// retries fn when the transaction aborts, so fn must not have side effects
// outside the transaction. An error returned by fn rolls everything back and is
// passed through wrapped.
func (c *Committer) ApplyWithReadWriteTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	if _, err := c.client.ReadWriteTransaction(ctx, fn); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
