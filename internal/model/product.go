package model

// Action classifies a stock movement.
type Action string

const (
	ActionIn  Action = "In"
	ActionOut Action = "Out"
)

// HistoryEvent is one immutable entry of a product's audit trail. Events are
// appended in chronological order and never edited or removed; the current
// quantity and serial set of a product are reproducible by replaying them.
type HistoryEvent struct {
	ID       string    `json:"id,omitempty"`
	Action   Action    `json:"action"`
	Quantity int       `json:"qty"`
	Serials  []string  `json:"IMEI"`
	Date     Timestamp `json:"date"`
	// Actor is empty on entries that predate actor attribution.
	Actor string `json:"by,omitempty"`
}

// Product tracks stock for one product name. If serial tracking is in use,
// Quantity always equals len(Serials); otherwise Quantity is a bare count.
// The field names on the wire match the original data files.
type Product struct {
	Name      string         `json:"product_name"`
	Quantity  int            `json:"qty"`
	Serials   []string       `json:"IMEI"`
	DateAdded Timestamp      `json:"date_added"`
	History   []HistoryEvent `json:"history"`
}

// SerialTracked reports whether this product distinguishes units by serial.
// The mode is established by the first event and never changes, so it is
// derived from the first history entry rather than the (possibly empty)
// current serial set.
func (p *Product) SerialTracked() bool {
	if len(p.Serials) > 0 {
		return true
	}
	if len(p.History) > 0 {
		return len(p.History[0].Serials) > 0
	}
	return false
}

// HasSerial reports membership in the current serial set.
func (p *Product) HasSerial(serial string) bool {
	for _, s := range p.Serials {
		if s == serial {
			return true
		}
	}
	return false
}

// ApplyIn adds stock and appends the matching "In" event in one step, so the
// quantity/serial-set invariant cannot be observed violated between the two.
// Validation happens before any field is touched; on error the product is
// unchanged.
func (p *Product) ApplyIn(ev HistoryEvent) error {
	if ev.Quantity < 1 {
		return ErrInvalidInput
	}
	if len(ev.Serials) > 0 && len(ev.Serials) != ev.Quantity {
		return ErrInvalidInput
	}
	if len(p.History) > 0 {
		if p.SerialTracked() != (len(ev.Serials) > 0) {
			return ErrModeMismatch
		}
	}
	if len(ev.Serials) > 0 {
		seen := make(map[string]struct{}, len(ev.Serials))
		var conflicts []string
		for _, s := range ev.Serials {
			if _, dup := seen[s]; dup {
				conflicts = append(conflicts, s)
				continue
			}
			seen[s] = struct{}{}
			if p.HasSerial(s) {
				conflicts = append(conflicts, s)
			}
		}
		if len(conflicts) > 0 {
			return &SerialConflictError{Product: p.Name, Serials: conflicts}
		}
	}

	p.Quantity += ev.Quantity
	p.Serials = append(p.Serials, ev.Serials...)
	p.History = append(p.History, ev)
	return nil
}

// ApplyOut removes stock and appends the matching "Out" event. For a
// serial-tracked product the event's serials drive the removal and its
// quantity must equal their count; for a plain product the serials must be
// empty. On error the product is unchanged.
func (p *Product) ApplyOut(ev HistoryEvent) error {
	if ev.Quantity < 1 {
		return ErrInvalidInput
	}
	if p.SerialTracked() {
		if len(ev.Serials) == 0 {
			return ErrModeMismatch
		}
		if len(ev.Serials) != ev.Quantity {
			return ErrInvalidInput
		}
		var missing []string
		seen := make(map[string]struct{}, len(ev.Serials))
		for _, s := range ev.Serials {
			if _, dup := seen[s]; dup {
				missing = append(missing, s)
				continue
			}
			seen[s] = struct{}{}
			if !p.HasSerial(s) {
				missing = append(missing, s)
			}
		}
		if len(missing) > 0 {
			return &SerialNotFoundError{Product: p.Name, Serials: missing}
		}
	} else {
		if len(ev.Serials) > 0 {
			return ErrModeMismatch
		}
		if ev.Quantity > p.Quantity {
			return ErrInsufficientStock
		}
	}

	if len(ev.Serials) > 0 {
		remove := make(map[string]struct{}, len(ev.Serials))
		for _, s := range ev.Serials {
			remove[s] = struct{}{}
		}
		kept := p.Serials[:0]
		for _, s := range p.Serials {
			if _, drop := remove[s]; !drop {
				kept = append(kept, s)
			}
		}
		p.Serials = kept
	}
	p.Quantity -= ev.Quantity
	p.History = append(p.History, ev)
	return nil
}

// Replay rebuilds a product's quantity and serial set from its history alone.
// It is the audit check: the result must match the stored current state.
func Replay(name string, history []HistoryEvent) (*Product, error) {
	p := &Product{Name: name, Serials: []string{}}
	for _, ev := range history {
		var err error
		switch ev.Action {
		case ActionIn:
			err = p.ApplyIn(ev)
		case ActionOut:
			err = p.ApplyOut(ev)
		default:
			err = ErrInvalidInput
		}
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ProductCollection is the persisted products document.
type ProductCollection struct {
	Products []*Product `json:"products"`
}

// Find returns the product with the given name, or nil. Names are matched
// case-sensitively.
func (c *ProductCollection) Find(name string) *Product {
	for _, p := range c.Products {
		if p.Name == name {
			return p
		}
	}
	return nil
}
