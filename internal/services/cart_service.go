package services

import (
	"context"
	"sync"

	"souq/internal/cart"
	"souq/internal/catalog"
	"souq/internal/domain"
	"souq/internal/repos"
)

// ProductSource supplies single normalized products (the listing API client
// in production, a stub in tests).
type ProductSource interface {
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

// CartView is the cart as rendered to the shopper.
type CartView struct {
	Lines []cart.Line `json:"lines"`
	Count int         `json:"count"`
	Total string      `json:"total"`
}

// CartService wraps the pure merge logic with everything it deliberately
// does not do: loading and persisting the line list, serializing adds per
// session so a rapid double-click cannot drop an increment, resolving the
// shopper country, and notifying observers after each mutation.
type CartService struct {
	Products ProductSource
	Carts    *repos.CartRepo
	Sessions *repos.SessionRepo

	// Convert is the currency conversion collaborator; nil means base
	// prices are reported unconverted.
	Convert catalog.ConvertFunc

	mu        sync.Mutex
	locks     map[string]*sync.Mutex
	observers []func(sessionID string, lines []cart.Line)
}

func NewCartService(products ProductSource, carts *repos.CartRepo, sessions *repos.SessionRepo) *CartService {
	return &CartService{
		Products: products,
		Carts:    carts,
		Sessions: sessions,
		locks:    map[string]*sync.Mutex{},
	}
}

// OnChange registers a callback fired after every cart mutation. Used by the
// UI layer to refresh badges and mini-cart views without polling.
func (s *CartService) OnChange(fn func(sessionID string, lines []cart.Line)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *CartService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	return l
}

// Add merges a product into the session's cart and persists the result.
// cart.ErrOutOfStock passes through untouched so the handler can show the
// shopper a proper message.
func (s *CartService) Add(ctx context.Context, sessionID, productID string, selected map[string]string, qty int) (CartView, error) {
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.Sessions.Ensure(sessionID); err != nil {
		return CartView{}, err
	}
	country, err := s.Sessions.Country(sessionID)
	if err != nil {
		return CartView{}, err
	}
	p, err := s.Products.GetProduct(ctx, productID)
	if err != nil {
		return CartView{}, err
	}
	lines, err := s.Carts.Lines(sessionID)
	if err != nil {
		return CartView{}, err
	}

	resolvePrice := func(p domain.Product, code string) domain.PriceQuote {
		return catalog.ResolvePrice(p, code, s.Convert)
	}
	merged, err := cart.Add(lines, p, selected, qty, country, resolvePrice, catalog.ResolveWarehouse)
	if err != nil {
		return CartView{}, err
	}
	if err := s.Carts.ReplaceLines(sessionID, merged); err != nil {
		return CartView{}, err
	}

	s.notify(sessionID, merged)
	return viewOf(merged), nil
}

// View loads the current cart.
func (s *CartService) View(sessionID string) (CartView, error) {
	lines, err := s.Carts.Lines(sessionID)
	if err != nil {
		return CartView{}, err
	}
	return viewOf(lines), nil
}

func (s *CartService) notify(sessionID string, lines []cart.Line) {
	s.mu.Lock()
	observers := make([]func(string, []cart.Line), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(sessionID, lines)
	}
}

func viewOf(lines []cart.Line) CartView {
	return CartView{
		Lines: lines,
		Count: cart.Count(lines),
		Total: cart.Total(lines).StringFixed(2),
	}
}
