package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"musicmerchant/internal/domain"
)

// Store is an ordered set of cart lines keyed by product id. Each mutation
// writes the whole cart to the snapshotter before it becomes visible, so a
// failed save leaves the cart as it was.
type Store struct {
	mu     sync.Mutex
	lines  []domain.CartLine
	snap   Snapshotter
	logger *zap.Logger
}

// Open loads the saved cart verbatim. A missing snapshot yields an empty
// cart; an unreadable one is logged and discarded, and is overwritten by
// the next mutation.
func Open(ctx context.Context, snap Snapshotter, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{snap: snap, logger: logger.Named("cart")}

	data, err := snap.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Warn("discarding unreadable cart snapshot", zap.Error(err))
		return s, nil
	}
	s.lines = lines
	s.logger.Debug("cart loaded", zap.Int("lines", len(lines)))
	return s, nil
}

// Add puts one more unit of product in the cart. A product not yet in the
// cart is appended with quantity 1 and a snapshot of its current fields.
func (s *Store) Add(ctx context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.clone()
	if i := indexOf(next, product.ID); i >= 0 {
		next[i].Quantity++
	} else {
		next = append(next, domain.CartLine{Product: product, Quantity: 1})
	}
	return s.commit(ctx, next)
}

// Remove drops the line for id. Removing an absent id is not an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, without(s.lines, id))
}

// UpdateQuantity sets the quantity of the line for id. A quantity of zero or
// less removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.commit(ctx, without(s.lines, id))
	}
	next := s.clone()
	if i := indexOf(next, id); i >= 0 {
		next[i].Quantity = quantity
	}
	return s.commit(ctx, next)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, []domain.CartLine{})
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clone()
}

// Total is the sum of price times quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount is the number of units across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) commit(ctx context.Context, next []domain.CartLine) error {
	if next == nil {
		next = []domain.CartLine{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.snap.Save(ctx, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	s.lines = next
	return nil
}

func (s *Store) clone() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func indexOf(lines []domain.CartLine, id string) int {
	for i, l := range lines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func without(lines []domain.CartLine, id string) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.ID != id {
			out = append(out, l)
		}
	}
	return out
}
