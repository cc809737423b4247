package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// Stage labels for multi-step writes. Every logical operation runs inside a
// single transaction, so a failed stage rolls back the earlier ones; the
// label tells the caller which step broke.
const (
	StageOrder           = "order"
	StageOrderItems      = "order items"
	StageCustomerDebt    = "customer debt"
	StageDeleteItems     = "delete order items"
	StageDeleteOrder     = "delete order"
	StagePayment         = "payment"
	StageMaterials       = "service materials"
	StageDeleteMaterials = "delete service materials"
)

// PersistenceError wraps a failed store call with the stage that failed.
type PersistenceError struct {
	Stage string
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed at stage %q: %v", e.Stage, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func failAt(stage string, err error) error {
	return &PersistenceError{Stage: stage, Err: err}
}
