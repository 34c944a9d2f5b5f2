// Package mock provides an in-memory stand-in for the records gateway.
package mock

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goliatone/go-clientes/pkg/records"
)

// Op names a gateway operation.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
)

// Call records one gateway invocation.
type Call struct {
	Op     Op
	ID     string
	Fields records.Fields
}

// Mock keeps records in insertion order and logs every call.
type Mock struct {
	mu      sync.Mutex
	order   []string
	items   map[string]records.Record
	calls   []Call
	failNxt map[Op][]error
	seq     int
	now     func() time.Time
}

// Option configures the mock.
type Option func(*Mock)

// WithRecords seeds the store.
func WithRecords(list ...records.Record) Option {
	return func(m *Mock) {
		for _, rec := range list {
			if _, exists := m.items[rec.ID]; !exists {
				m.order = append(m.order, rec.ID)
			}
			m.items[rec.ID] = rec
		}
	}
}

// WithClock overrides the clock used for createdTime.
func WithClock(fn func() time.Time) Option {
	return func(m *Mock) {
		if fn != nil {
			m.now = fn
		}
	}
}

// New creates a mock store.
func New(opts ...Option) *Mock {
	m := &Mock{
		items:   make(map[string]records.Record),
		failNxt: make(map[Op][]error),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// FailNext makes the next call of op return err.
func (m *Mock) FailNext(op Op, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failNxt[op] = append(m.failNxt[op], err)
}

// Calls returns a copy of the call log.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many times op was invoked.
func (m *Mock) CallCount(op Op) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// List implements the gateway contract.
func (m *Mock) List(ctx context.Context) ([]records.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx, Call{Op: OpList}); err != nil {
		return nil, err
	}
	out := make([]records.Record, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out, nil
}

// Create implements the gateway contract.
func (m *Mock) Create(ctx context.Context, fields records.Fields) (records.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx, Call{Op: OpCreate, Fields: fields}); err != nil {
		return records.Record{}, err
	}
	m.seq++
	rec := records.Record{
		ID:          fmt.Sprintf("rec%04d", m.seq),
		CreatedTime: m.now().Format(time.RFC3339),
		Fields:      fields,
	}
	m.order = append(m.order, rec.ID)
	m.items[rec.ID] = rec
	return rec, nil
}

// Update implements the gateway contract.
func (m *Mock) Update(ctx context.Context, id string, fields records.Fields) (records.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx, Call{Op: OpUpdate, ID: id, Fields: fields}); err != nil {
		return records.Record{}, err
	}
	rec, ok := m.items[id]
	if !ok {
		return records.Record{}, &records.StatusError{Method: http.MethodPatch, StatusCode: http.StatusNotFound}
	}
	rec.Fields = fields
	m.items[id] = rec
	return rec, nil
}

// Remove implements the gateway contract.
func (m *Mock) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(ctx, Call{Op: OpRemove, ID: id}); err != nil {
		return err
	}
	if _, ok := m.items[id]; !ok {
		return &records.StatusError{Method: http.MethodDelete, StatusCode: http.StatusNotFound}
	}
	delete(m.items, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// enter logs the call and pops a scripted failure. Callers hold m.mu.
func (m *Mock) enter(ctx context.Context, call Call) error {
	m.calls = append(m.calls, call)
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if queue := m.failNxt[call.Op]; len(queue) > 0 {
		m.failNxt[call.Op] = queue[1:]
		return queue[0]
	}
	return nil
}
