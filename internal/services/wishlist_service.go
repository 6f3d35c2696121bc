package services

import "souq/internal/repos"

type WishlistService struct {
	Repo     *repos.WishlistRepo
	Sessions *repos.SessionRepo
}

func NewWishlistService(r *repos.WishlistRepo, sessions *repos.SessionRepo) *WishlistService {
	return &WishlistService{Repo: r, Sessions: sessions}
}

func (s *WishlistService) Save(sessionID, productID string) error {
	if err := s.Sessions.Ensure(sessionID); err != nil {
		return err
	}
	return s.Repo.Add(sessionID, productID)
}

func (s *WishlistService) Unsave(sessionID, productID string) error {
	return s.Repo.Remove(sessionID, productID)
}

func (s *WishlistService) List(sessionID string) ([]repos.WishlistRow, error) {
	if err := s.Sessions.Ensure(sessionID); err != nil {
		return nil, err
	}
	return s.Repo.List(sessionID)
}
