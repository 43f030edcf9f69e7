package mall

import (
	"context"
	"fmt"

	"github.com/ogeoseo/go-api-server/internal/model"
	"github.com/ogeoseo/go-api-server/internal/shared/fixture"
	"github.com/ogeoseo/go-api-server/internal/shared/query"
)

type MallService struct {
	store *fixture.Store
}

func NewMallService(store *fixture.Store) *MallService {
	return &MallService{
		store: store,
	}
}

// ListProducts returns available rewards, optionally by category.
// Exchange is handled client-side only; no stock ever changes here.
func (s *MallService) ListProducts(ctx context.Context, category string) (*ListProductsResponse, error) {
	products, err := s.store.MallProducts()
	if err != nil {
		return nil, fmt.Errorf("상품 목록 조회 실패: %w", err)
	}

	products = query.Filter(products, func(p model.MallProduct) bool {
		return p.Status == model.MallProductAvailable
	})

	if category != "" {
		products = query.Filter(products, func(p model.MallProduct) bool {
			return p.Category == category
		})
	}

	if products == nil {
		products = []model.MallProduct{}
	}

	return &ListProductsResponse{Products: products}, nil
}
