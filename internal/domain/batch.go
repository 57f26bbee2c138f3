package domain

import "github.com/google/uuid"

// Batch accumulates the payments parsed from a single file.
type Batch struct {
	ID           uuid.UUID
	FileName     string
	Payments     []*Payment
	InvalidLines int
	Duplicates   int

	seen map[string]struct{}
}

func NewBatch(fileName string) *Batch {
	return &Batch{
		ID:       uuid.New(),
		FileName: fileName,
		seen:     make(map[string]struct{}),
	}
}

// Add appends p to the batch. The first payment with a given PaymentID keeps
// its status, every later one is marked as a duplicate.
func (b *Batch) Add(p *Payment) {
	if _, ok := b.seen[p.PaymentID]; ok {
		p.Status = StatusDuplicate
		b.Duplicates++
	} else {
		b.seen[p.PaymentID] = struct{}{}
	}

	b.Payments = append(b.Payments, p)
}

func (b *Batch) AddInvalid() {
	b.InvalidLines++
}

func (b *Batch) Empty() bool {
	return len(b.Payments) == 0
}

// Clean reports whether the batch had neither invalid lines nor duplicates.
func (b *Batch) Clean() bool {
	return b.InvalidLines == 0 && b.Duplicates == 0
}

// Finalize promotes OK payments once the whole file has been read: to
// FULL_SAVED for a clean batch, to PARTIAL_OK otherwise. Other statuses are
// left untouched.
func (b *Batch) Finalize() {
	clean := b.Clean()

	for _, p := range b.Payments {
		switch {
		case clean:
			p.Status = StatusFullSaved
		case p.Status == StatusOK:
			p.Status = StatusPartialOK
		}
	}
}

// AllFullSaved reports whether every payment ended up FULL_SAVED.
func AllFullSaved(payments []*Payment) bool {
	for _, p := range payments {
		if p.Status != StatusFullSaved {
			return false
		}
	}
	return true
}
