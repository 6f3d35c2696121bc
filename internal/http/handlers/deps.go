package handlers

import (
	"github.com/jmoiron/sqlx"

	"souq/internal/config"
	"souq/internal/repos"
	"souq/internal/services"
	"souq/internal/upstream"
)

type Deps struct {
	FeedHandler     *FeedHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
	SessionHandler  *SessionHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	sessionRepo := repos.NewSessionRepo(db)
	cartRepo := repos.NewCartRepo(db)
	wishRepo := repos.NewWishlistRepo(db)

	client := upstream.NewClient(cfg.UpstreamURL)

	feedSvc := services.NewFeedService(client, cfg.PageSize)
	catalogSvc := services.NewCatalogService(client)
	cartSvc := services.NewCartService(client, cartRepo, sessionRepo)
	wishSvc := services.NewWishlistService(wishRepo, sessionRepo)

	return &Deps{
		FeedHandler:     &FeedHandler{Feed: feedSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Sessions: sessionRepo},
		CartHandler:     &CartHandler{Cart: cartSvc},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
		SessionHandler:  &SessionHandler{Sessions: sessionRepo},
	}
}
