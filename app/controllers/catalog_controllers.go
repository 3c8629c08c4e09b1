package controllers

import (
	"github.com/shashiranjanraj/donorlink/app/services"
	"github.com/shashiranjanraj/donorlink/pkg/ctx"
)

type CatalogController struct {
	service *services.CatalogService
}

func NewCatalogController() *CatalogController {
	return &CatalogController{service: services.NewCatalogService()}
}

func (c *CatalogController) Organs(cx *ctx.Context) {
	organs, err := c.service.Organs(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(organs)
}

func (c *CatalogController) Hospitals(cx *ctx.Context) {
	hospitals, err := c.service.Hospitals(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(hospitals)
}
