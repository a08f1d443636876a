package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/domain"
	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
)

const maxItemQuantity = 50

type cartService struct {
	repo     Repository
	products ProductFinder
	logger   *zap.Logger
}

func NewService(repo Repository, products ProductFinder, logger *zap.Logger) Service {
	return &cartService{
		repo:     repo,
		products: products,
		logger:   logger,
	}
}

func (s *cartService) GetCart(ctx context.Context, userID int) (*CartView, error) {
	c, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, c.Items)
}

func (s *cartService) AddItem(ctx context.Context, userID, productID, quantity int) (*CartView, error) {
	c, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Adding merges with the existing line.
	target := c.Quantity(productID) + quantity
	if err := s.validateLine(ctx, productID, target); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertItem(ctx, c.ID, productID, target); err != nil {
		return nil, err
	}

	s.logger.Info("cart item added",
		zap.Int("userId", userID),
		zap.Int("productId", productID),
		zap.Int("quantity", target),
	)

	return s.GetCart(ctx, userID)
}

func (s *cartService) UpdateItem(ctx context.Context, userID, productID, quantity int) (*CartView, error) {
	c, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if c.Quantity(productID) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product %d is not in the cart", productID))
	}

	// Quantity zero removes the line, matching the storefront's stepper.
	if quantity == 0 {
		if err := s.repo.RemoveItem(ctx, c.ID, productID); err != nil {
			return nil, err
		}
		return s.GetCart(ctx, userID)
	}

	if err := s.validateLine(ctx, productID, quantity); err != nil {
		return nil, err
	}

	if err := s.repo.UpsertItem(ctx, c.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID int) (*CartView, error) {
	c, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.RemoveItem(ctx, c.ID, productID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID int) error {
	c, err := s.repo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, c.ID)
}

func (s *cartService) validateLine(ctx context.Context, productID, quantity int) error {
	if quantity < 1 || quantity > maxItemQuantity {
		return apperrors.NewValidationError("invalid quantity", apperrors.ValidationDetail{
			Field:   "quantity",
			Message: fmt.Sprintf("quantity must be between 1 and %d", maxItemQuantity),
		})
	}

	p, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if !p.Orderable() {
		return apperrors.NewConflictError(fmt.Sprintf("product %q is not available", p.Name))
	}
	if p.Stockeable && quantity > p.AvailableStock() {
		return apperrors.NewConflictError(fmt.Sprintf("only %d of %q in stock", p.AvailableStock(), p.Name))
	}
	return nil
}

// buildView resolves each cart line against the live catalog. Lines whose
// product has since vanished or been deactivated are kept but flagged, so the
// storefront can show them; checkout rejects them.
func (s *cartService) buildView(ctx context.Context, items []domain.CartItem) (*CartView, error) {
	view := &CartView{Items: make([]CartItemView, 0, len(items))}

	for _, item := range items {
		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				view.Items = append(view.Items, CartItemView{
					ProductID:   item.ProductID,
					Quantity:    item.Quantity,
					Unavailable: true,
				})
				continue
			}
			return nil, err
		}

		line := CartItemView{
			ProductID:   p.ID,
			ProductName: p.Name,
			ImageURL:    p.ImageURL,
			UnitPrice:   p.Price,
			Quantity:    item.Quantity,
			Subtotal:    p.Price * float64(item.Quantity),
			Unavailable: !p.Orderable(),
		}
		view.Items = append(view.Items, line)

		if !line.Unavailable {
			view.Total += line.Subtotal
			view.ItemCount += line.Quantity
		}
	}

	return view, nil
}
