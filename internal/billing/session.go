package billing

import (
	"errors"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/Dhyey-19/VaaniBill/internal/catalog"
	"github.com/Dhyey-19/VaaniBill/internal/parser"
)

var (
	ErrItemNotFound = errors.New("bill item not found")
	ErrEmptyBill    = errors.New("add at least one item before completing the bill")
)

// Session is one draft bill. Locale and the catalog snapshot are captured
// once at creation: product edits made while the session is open take effect
// on the next session, never retroactively. The parsing engine itself stays
// pure; all mutable state lives here.
type Session struct {
	ID     string
	UserID string
	Locale parser.Locale

	mu      sync.Mutex
	catalog []catalog.Product
	items   []parser.Draft
}

func NewSession(userID string, locale parser.Locale, snapshot []catalog.Product) *Session {
	return &Session{
		ID:      uuid.New().String(),
		UserID:  userID,
		Locale:  locale,
		catalog: snapshot,
	}
}

// AddUtterance runs the engine once for a finalized transcript, appending at
// most one line on success. Parse failures leave the draft untouched.
func (s *Session) AddUtterance(text string) (*parser.Draft, error) {
	draft, err := parser.Parse(text, s.Locale, s.catalog)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = append(s.items, *draft)
	s.mu.Unlock()

	return draft, nil
}

// ItemPatch carries a manual edit; nil fields are left unchanged.
type ItemPatch struct {
	Name     *string
	Quantity *float64
	Rate     *float64
}

// UpdateItem applies a manual edit and recomputes total = round(qty*rate, 2).
func (s *Session) UpdateItem(id string, patch ItemPatch) (*parser.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		if patch.Name != nil {
			s.items[i].Name = *patch.Name
		}
		if patch.Quantity != nil {
			s.items[i].Quantity = *patch.Quantity
		}
		if patch.Rate != nil {
			s.items[i].Rate = *patch.Rate
		}
		s.items[i].Total = round2(s.items[i].Quantity * s.items[i].Rate)

		item := s.items[i]
		return &item, nil
	}

	return nil, ErrItemNotFound
}

func (s *Session) RemoveItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}

	return ErrItemNotFound
}

// Items returns a copy of the draft lines in arrival order.
func (s *Session) Items() []parser.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]parser.Draft, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := 0.0
	for _, item := range s.items {
		sum += item.Total
	}
	return sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
