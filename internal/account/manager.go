package account

import (
	"fmt"
	"sync"

	"TradeSentinel/internal/model"
)

// Manager tracks the paper quote balance that feeds the trade planner,
// with concurrency safety. State survives restarts via a JSON file.
type Manager struct {
	mu       sync.Mutex
	state    *model.AccountState
	filePath string
}

// NewManager creates a Manager, loading or initializing state from disk.
func NewManager(filePath string, initialBalance float64) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}
	if state.QuoteBalance == 0 && state.UpdatedAt.IsZero() {
		state.QuoteBalance = initialBalance
	}

	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// Balance returns the current available quote balance.
func (m *Manager) Balance() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.QuoteBalance
}

// SetBalance replaces the balance. Negative values are rejected.
func (m *Manager) SetBalance(balance float64) error {
	if balance < 0 {
		return fmt.Errorf("balance must be non-negative, got %.2f", balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.QuoteBalance = balance
	return m.save()
}

func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
