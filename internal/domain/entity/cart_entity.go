package entity

import (
	"errors"
	"math"
	"time"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidItem     = errors.New("invalid line item")
)

// Cart is a per-user document holding at most one LineItem per ItemID.
// Items keep insertion order with the newest first.
type Cart struct {
	UserID    string     `json:"user"`
	Items     []LineItem `json:"itemList"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type LineItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func NewCart(userID string) *Cart {
	return &Cart{UserID: userID, Items: []LineItem{}}
}

func (c *Cart) indexOf(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// Find returns the line item for itemID, if present.
func (c *Cart) Find(itemID string) (LineItem, bool) {
	if i := c.indexOf(itemID); i >= 0 {
		return c.Items[i], true
	}
	return LineItem{}, false
}

// Add increments an existing line item by one, ignoring item.Quantity,
// or prepends item as a new line.
func (c *Cart) Add(item LineItem) error {
	if item.ItemID == "" || item.Name == "" {
		return ErrInvalidItem
	}
	if item.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if i := c.indexOf(item.ItemID); i >= 0 {
		if c.Items[i].Quantity == math.MaxInt {
			return ErrInvalidQuantity
		}
		c.Items[i].Quantity++
		return nil
	}
	c.Items = append([]LineItem{item}, c.Items...)
	return nil
}

// Remove drops every line item whose id is itemID and reports whether one was found.
func (c *Cart) Remove(itemID string) bool {
	kept := make([]LineItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ItemID != itemID {
			kept = append(kept, it)
		}
	}
	removed := len(kept) != len(c.Items)
	c.Items = kept
	return removed
}

// SetQuantity overwrites the quantity of an existing line item. Zero removes it.
func (c *Cart) SetQuantity(itemID string, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}
	if quantity == 0 {
		c.Remove(itemID)
		return nil
	}
	i := c.indexOf(itemID)
	if i < 0 {
		return ErrItemNotFound
	}
	c.Items[i].Quantity = quantity
	return nil
}
