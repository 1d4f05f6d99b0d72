package mongo

import (
	"context"
	"fmt"
	"time"

	apperrors "luxestay/pkg/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionFunc runs inside a session; every repository call in it must use
// sessCtx so the writes commit or abort together.
type TransactionFunc func(sessCtx mongo.SessionContext) error

// TransactionManager runs multi-document work atomically. Bookings use it to
// check the account and insert the booking as one unit.
type TransactionManager interface {
	ExecuteTransaction(ctx context.Context, fn TransactionFunc) error
}

type mongoTransactionManager struct {
	client  *mongo.Client
	timeout time.Duration
}

// NewTransactionManager bounds each transaction, including driver retries of
// transient commit errors, by timeout. A zero timeout leaves ctx untouched.
func NewTransactionManager(client *mongo.Client, timeout time.Duration) TransactionManager {
	return &mongoTransactionManager{
		client:  client,
		timeout: timeout,
	}
}

func (m *mongoTransactionManager) ExecuteTransaction(ctx context.Context, fn TransactionFunc) error {
	ctx, cancel := m.bound(ctx)
	defer cancel()

	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})
	if err == nil {
		return nil
	}

	// Business errors raised inside fn reach the caller unchanged.
	if apperrors.IsAppError(err) {
		return err
	}
	if ctx.Err() != nil {
		return fmt.Errorf("transaction timed out after %s: %w", m.timeout, err)
	}
	return fmt.Errorf("transaction failed: %w", err)
}

func (m *mongoTransactionManager) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return ctx, func() {}
	}
	return WithTimeout(ctx, m.timeout)
}
