package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-cart/internal/domain/repository"
)

// CartService mutates the cart of the authenticated user only.
// Each mutation is an unguarded read-modify-write; concurrent writers on one cart race.
type CartService struct {
	Repo   repo.CartRepository
	Logger *logrus.Logger
}

func NewCartService(repo repo.CartRepository, logger *logrus.Logger) *CartService {
	return &CartService{Repo: repo, Logger: logger}
}

type AddItemInput struct {
	ItemID   string
	Name     string
	Price    float64
	Quantity int
}

// load returns entity.ErrCartNotFound when the user has no cart document yet.
func (s *CartService) load(ctx context.Context, userID string) (*entity.Cart, error) {
	c, err := s.Repo.GetByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, entity.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return c, nil
}

func (s *CartService) save(ctx context.Context, c *entity.Cart, op string) error {
	if err := s.Repo.Save(ctx, c); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": c.UserID, "op": op}).Error("save cart failed")
		}
		return fmt.Errorf("save cart: %w", err)
	}
	cartMutations.Add(1)
	return nil
}

// GetCart returns the line items, or an empty slice when there is no cart yet.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]entity.LineItem, error) {
	c, err := s.load(ctx, userID)
	if errors.Is(err, entity.ErrCartNotFound) {
		return []entity.LineItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return c.Items, nil
}

// AddItem creates the cart on first use. A repeated itemId is bumped by one;
// the supplied quantity only applies to a new line.
func (s *CartService) AddItem(ctx context.Context, userID string, in AddItemInput) (*entity.Cart, error) {
	c, err := s.load(ctx, userID)
	if errors.Is(err, entity.ErrCartNotFound) {
		c = entity.NewCart(userID)
	} else if err != nil {
		return nil, err
	}

	if err := c.Add(entity.LineItem{ItemID: in.ItemID, Name: in.Name, Price: in.Price, Quantity: in.Quantity}); err != nil {
		return nil, err
	}
	if err := s.save(ctx, c, "add"); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) (*entity.Cart, error) {
	c, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Remove(itemID)
	if err := s.save(ctx, c, "remove"); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity sets an absolute quantity; zero removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*entity.Cart, error) {
	if quantity < 0 {
		return nil, entity.ErrInvalidQuantity
	}
	c, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, entity.ErrCartEmpty
	}
	if err := c.SetQuantity(itemID, quantity); err != nil {
		return nil, err
	}
	if err := s.save(ctx, c, "update"); err != nil {
		return nil, err
	}
	return c, nil
}
