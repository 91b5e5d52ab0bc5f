package financeai

import (
	"encoding/json"
	"log"
	"slices"

	"github.com/google/uuid"
)

// Store owns the authoritative in-memory collections and their durable
// persistence. There is one logical writer, so the store needs no locking;
// every mutation persists the full updated collection before returning.
//
// A persistence failure never corrupts the in-memory state: it is logged
// and the mutation stands in memory.
type Store struct {
	storage      Storage
	transactions []Transaction // newest first
	goals        []Goal
	investments  []Investment
}

// Open loads the three collections from storage. Missing or malformed
// records yield empty collections; corrupt data must not prevent startup.
func Open(storage Storage) *Store {
	return &Store{
		storage:      storage,
		transactions: loadCollection[Transaction](storage, TransactionsKey),
		goals:        loadCollection[Goal](storage, GoalsKey),
		investments:  loadCollection[Investment](storage, InvestmentsKey),
	}
}

// loadCollection reads one durable record. It tolerates both absence and
// corruption by starting from an empty collection.
func loadCollection[T any](storage Storage, key string) []T {
	data, err := storage.Read(key)
	if err != nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("warning: record %q is corrupt, starting empty: %v", key, err)
		return nil
	}
	return items
}

// saveCollection persists the full collection under its key. Empty
// collections persist as "[]" so a later load does not read a stale record.
func saveCollection[T any](storage Storage, key string, items []T) {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		log.Printf("warning: could not encode record %q: %v", key, err)
		return
	}
	if err := storage.Write(key, data); err != nil {
		log.Printf("warning: could not persist record %q: %v", key, err)
	}
}

// newID returns a fresh collision-resistant unique id.
func newID() string { return uuid.NewString() }

// Transactions returns the ordered transaction collection, newest first.
// The returned slice is a copy and safe to retain.
func (s *Store) Transactions() []Transaction { return slices.Clone(s.transactions) }

// Goals returns the goal collection.
func (s *Store) Goals() []Goal { return slices.Clone(s.goals) }

// Investments returns the investment collection.
func (s *Store) Investments() []Investment { return slices.Clone(s.investments) }

// AddTransaction validates t, assigns it a fresh id, prepends it to the
// collection and persists. It returns the stored record.
func (s *Store) AddTransaction(t Transaction) (Transaction, error) {
	t, err := t.Validate()
	if err != nil {
		return t, err
	}
	t.ID = newID()
	s.transactions = append([]Transaction{t}, s.transactions...)
	saveCollection(s.storage, TransactionsKey, s.transactions)
	return t, nil
}

// DeleteTransaction removes the matching record if present. Deleting an
// unknown id is a no-op.
func (s *Store) DeleteTransaction(id string) {
	s.transactions = deleteByID(s.storage, TransactionsKey, s.transactions, id,
		func(t Transaction) string { return t.ID })
}

// UpdateTransaction replaces the record with the same id. Updating an
// unknown id is a no-op.
func (s *Store) UpdateTransaction(t Transaction) error {
	t, err := t.Validate()
	if err != nil {
		return err
	}
	updateByID(s.storage, TransactionsKey, s.transactions, t,
		func(t Transaction) string { return t.ID })
	return nil
}

// AddGoal validates g, assigns it a fresh id, appends it and persists.
func (s *Store) AddGoal(g Goal) (Goal, error) {
	g, err := g.Validate()
	if err != nil {
		return g, err
	}
	g.ID = newID()
	s.goals = append(s.goals, g)
	saveCollection(s.storage, GoalsKey, s.goals)
	return g, nil
}

// DeleteGoal removes the matching goal if present.
func (s *Store) DeleteGoal(id string) {
	s.goals = deleteByID(s.storage, GoalsKey, s.goals, id,
		func(g Goal) string { return g.ID })
}

// UpdateGoal replaces the goal with the same id.
func (s *Store) UpdateGoal(g Goal) error {
	g, err := g.Validate()
	if err != nil {
		return err
	}
	updateByID(s.storage, GoalsKey, s.goals, g,
		func(g Goal) string { return g.ID })
	return nil
}

// AddInvestment validates v, assigns it a fresh id, appends it and persists.
func (s *Store) AddInvestment(v Investment) (Investment, error) {
	v, err := v.Validate()
	if err != nil {
		return v, err
	}
	v.ID = newID()
	s.investments = append(s.investments, v)
	saveCollection(s.storage, InvestmentsKey, s.investments)
	return v, nil
}

// DeleteInvestment removes the matching investment if present.
func (s *Store) DeleteInvestment(id string) {
	s.investments = deleteByID(s.storage, InvestmentsKey, s.investments, id,
		func(v Investment) string { return v.ID })
}

// UpdateInvestment replaces the investment with the same id.
func (s *Store) UpdateInvestment(v Investment) error {
	v, err := v.Validate()
	if err != nil {
		return err
	}
	updateByID(s.storage, InvestmentsKey, s.investments, v,
		func(v Investment) string { return v.ID })
	return nil
}

// Transaction lookups used by the edit path.

// FindTransaction returns the transaction with the given id, if any.
func (s *Store) FindTransaction(id string) (Transaction, bool) {
	return findByID(s.transactions, id, func(t Transaction) string { return t.ID })
}

// FindGoal returns the goal with the given id, if any.
func (s *Store) FindGoal(id string) (Goal, bool) {
	return findByID(s.goals, id, func(g Goal) string { return g.ID })
}

// FindInvestment returns the investment with the given id, if any.
func (s *Store) FindInvestment(id string) (Investment, bool) {
	return findByID(s.investments, id, func(v Investment) string { return v.ID })
}

func findByID[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func deleteByID[T any](storage Storage, key string, items []T, id string, idOf func(T) string) []T {
	kept := slices.DeleteFunc(items, func(item T) bool { return idOf(item) == id })
	saveCollection(storage, key, kept)
	return kept
}

func updateByID[T any](storage Storage, key string, items []T, replacement T, idOf func(T) string) {
	for i, item := range items {
		if idOf(item) == idOf(replacement) {
			items[i] = replacement
			break
		}
	}
	saveCollection(storage, key, items)
}
