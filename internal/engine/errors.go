package engine

import (
	"fmt"
	"strings"
)

// Every command fails with exactly one of the error types below. All of them
// abort the whole command with no state change and are safe to show verbatim.

// ValidationError reports missing or invalid input fields, all of them at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "please fill required fields: " + strings.Join(e.Fields, ", ")
}

// InsufficientStockError means a source pool holds less than the requested
// quantity (or a reversal would drive it negative).
type InsufficientStockError struct {
	Source    string // e.g. "Silo 10", "PS Beads (issued)"
	Available float64
	Requested float64
	Unit      string // "kg" or "pcs"
}

func (e *InsufficientStockError) Error() string {
	if e.Unit == "pcs" {
		return fmt.Sprintf("insufficient stock in %s: requested %d %s, available %d %s",
			e.Source, int(e.Requested), e.Unit, int(e.Available), e.Unit)
	}
	return fmt.Sprintf("insufficient stock in %s: requested %.3f %s, available %.3f %s",
		e.Source, e.Requested, e.Unit, e.Available, e.Unit)
}

// CapacityExceededError means a destination silo would pass the 600 kg ceiling.
type CapacityExceededError struct {
	SiloID    int
	Current   float64
	Requested float64
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("maximum silo capacity is 600 kg: Silo %d holds %.3f kg, adding %.3f kg",
		e.SiloID, e.Current, e.Requested)
}

// NotFoundError covers editing/deleting a nonexistent record and referencing
// a nonexistent master item or stock row.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// InUseError blocks a master-registry deletion that would orphan ledger entries.
type InUseError struct {
	Name string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%q cannot be deleted: ledger records reference it", e.Name)
}

// AlreadyInitializedError means a one-time opening-stock latch is set (or, for
// finished goods, production records already exist). There is no un-latch.
type AlreadyInitializedError struct {
	Pool string
}

func (e *AlreadyInitializedError) Error() string {
	return fmt.Sprintf("%s opening stock is already set", e.Pool)
}
