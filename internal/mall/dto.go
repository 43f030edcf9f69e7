package mall

import (
	"github.com/ogeoseo/go-api-server/internal/model"
)

type ListProductsResponse struct {
	Products []model.MallProduct `json:"products"`
}
