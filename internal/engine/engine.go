package engine

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"factorypro-backend/internal/models"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// PersistFunc receives the marshalled snapshot after an accepted mutation.
// All calls run on one writer goroutine, so writes reach the store in commit
// order; a failed write never rolls the in-memory state back.
type PersistFunc func(data []byte)

// Engine owns the factory snapshot. All writes go through mutate, which
// clones the current state, applies one command to the clone and swaps it in
// only if every phase of the command succeeded. Readers get deep copies, so
// an aborted command leaves the observable state bit-identical.
type Engine struct {
	mu    sync.Mutex
	state *models.FactoryState
	saves chan []byte
}

func New(state *models.FactoryState, persist PersistFunc) *Engine {
	if state == nil {
		state = models.DefaultState()
	}
	state.EnsureDefaults()
	e := &Engine{state: state}
	if persist != nil {
		e.saves = make(chan []byte, 1)
		go func() {
			for data := range e.saves {
				persist(data)
			}
		}()
	}
	return e
}

// Snapshot returns a deep copy of the current state for reports/dashboards.
func (e *Engine) Snapshot() *models.FactoryState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// mutate runs one command as an atomic unit: reverse, validate and forward
// apply all happen on a private clone, and any error discards the clone.
func (e *Engine) mutate(fn func(st *models.FactoryState) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	e.state = next

	if e.saves != nil {
		data, err := json.Marshal(next)
		if err != nil {
			log.Println("snapshot marshal failed:", err)
			return nil
		}
		e.queueSave(data)
	}
	return nil
}

// queueSave hands a committed snapshot to the writer goroutine without
// blocking the commit. A snapshot still waiting in the queue is stale by
// definition and gets replaced, so the store always receives the newest
// committed state last.
func (e *Engine) queueSave(data []byte) {
	for {
		select {
		case e.saves <- data:
			return
		default:
		}
		select {
		case <-e.saves:
		default:
		}
	}
}

// appendAudit prepends one audit entry; the trail is ordered newest first.
func appendAudit(st *models.FactoryState, module string, action models.AuditAction, oldValue, newValue, actor string) {
	if actor == "" {
		actor = "System User"
	}
	now := time.Now()
	entry := models.AuditLog{
		ID:       uuid.NewString(),
		Module:   module,
		Action:   action,
		OldValue: oldValue,
		NewValue: newValue,
		User:     actor,
		Date:     now.Format(dateLayout),
		Time:     now.Format("15:04:05"),
	}
	st.AuditLogs = append([]models.AuditLog{entry}, st.AuditLogs...)
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

func submitAction(editID string) models.AuditAction {
	if editID != "" {
		return models.AuditActionUpdate
	}
	return models.AuditActionCreate
}

func recordID(editID string) string {
	if editID != "" {
		return editID
	}
	return uuid.NewString()
}
