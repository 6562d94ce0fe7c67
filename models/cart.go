package models

// SelectionCart accumulates chosen services prior to checkout. It maps a
// service ID to a strictly positive quantity; an entry whose quantity would
// drop to zero is removed entirely. Carts are ephemeral and never persisted.
type SelectionCart map[string]int

// Add increments the quantity for serviceID, inserting it at 1 if absent.
func (c SelectionCart) Add(serviceID string) {
	c[serviceID]++
}

// Remove decrements the quantity for serviceID and deletes the key once the
// quantity reaches zero.
func (c SelectionCart) Remove(serviceID string) {
	qty, ok := c[serviceID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(c, serviceID)
		return
	}
	c[serviceID] = qty - 1
}

// TotalPrice sums price × quantity over all entries, resolving prices from
// the given catalogue. Services missing from the catalogue contribute zero.
func (c SelectionCart) TotalPrice(catalogue []Service) float64 {
	byID := make(map[string]float64, len(catalogue))
	for _, svc := range catalogue {
		byID[svc.ID] = svc.Price
	}
	var total float64
	for id, qty := range c {
		total += byID[id] * float64(qty)
	}
	return total
}

// TotalItems sums all quantities in the cart.
func (c SelectionCart) TotalItems() int {
	var n int
	for _, qty := range c {
		n += qty
	}
	return n
}
