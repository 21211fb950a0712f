// Package inmem provides the in-memory implementation of the Unit of Work
// pattern and the repository ports. All aggregates live in a single Store;
// one mutex guards it, so a unit of work holds exclusive access from Begin
// until Commit or Rollback. This gives commands the same
// all-or-nothing-per-operation shape a database transaction would, without
// one: concurrent handlers serialize on the store.
//
// Usage pattern:
//
//	store := NewStore()
//	factory := NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after Commit is a no-op, which makes the deferred rollback in
// command handlers safe.
//
// Since aggregates are held by reference, repository Update calls validate
// presence rather than copy state; their value is keeping handlers honest
// about what they touched and keeping the ports database-shaped.
package inmem
