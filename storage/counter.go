package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// InvoiceCounter is the single persisted integer behind invoice numbering.
// It is global, monotonic and never reset; the two-digit year prefix is
// cosmetic only. Past 999 the zero padding simply stops aligning.
type InvoiceCounter struct {
	store Store
	mu    sync.Mutex
	now   func() time.Time
}

func NewInvoiceCounter(store Store) *InvoiceCounter {
	return &InvoiceCounter{store: store, now: time.Now}
}

// Current returns the raw counter value; an absent key reads as 0.
func (c *InvoiceCounter) Current(ctx context.Context) (int, error) {
	raw, ok, err := c.store.Get(ctx, KeyInvoiceCounter)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrParse, KeyInvoiceCounter, err)
	}
	return value, nil
}

// Next increments the counter, persists it, and formats the invoice number
// as YY-NNN (counter zero-padded to a minimum of three digits).
func (c *InvoiceCounter) Next(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.Current(ctx)
	if err != nil {
		return "", err
	}
	next := current + 1
	if err := c.store.Set(ctx, KeyInvoiceCounter, strconv.Itoa(next)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%03d", c.now().Format("06"), next), nil
}
