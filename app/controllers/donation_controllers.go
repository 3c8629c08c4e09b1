package controllers

import (
	"github.com/shashiranjanraj/donorlink/app/services"
	"github.com/shashiranjanraj/donorlink/pkg/ctx"
)

type DonationController struct {
	service *services.DonationService
}

func NewDonationController() *DonationController {
	return &DonationController{service: services.NewDonationService()}
}

// Contribute serves PUT /contribute/{user_id}/{organ_id}.
func (c *DonationController) Contribute(cx *ctx.Context) {
	userID, organID, ok := pathIDs(cx)
	if !ok {
		return
	}
	if err := c.service.Contribute(cx.Context(), userID, organID); err != nil {
		cx.Fail(err)
		return
	}
	cx.SuccessMessage(services.MsgContributionPlaced, nil)
}

// Request serves PUT /request/{user_id}/{organ_id}?reason=. The reason key
// must be present; an empty value is stored as is.
func (c *DonationController) Request(cx *ctx.Context) {
	userID, organID, ok := pathIDs(cx)
	if !ok {
		return
	}
	reason, ok := cx.RequireQuery("reason")
	if !ok {
		return
	}
	in := struct {
		Reason string `query:"reason" validate:"max=255"`
	}{Reason: reason}
	if !cx.Valid(&in) {
		return
	}

	if err := c.service.Request(cx.Context(), userID, organID, in.Reason); err != nil {
		cx.Fail(err)
		return
	}
	cx.SuccessMessage(services.MsgRequestPlaced, nil)
}

// Contributions serves GET /previousContributions/{user_id}.
func (c *DonationController) Contributions(cx *ctx.Context) {
	userID, ok := cx.ParamUint("user_id")
	if !ok {
		return
	}
	entries, err := c.service.Contributions(cx.Context(), userID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(entries)
}

// Requests serves GET /previousRequests/{user_id}.
func (c *DonationController) Requests(cx *ctx.Context) {
	userID, ok := cx.ParamUint("user_id")
	if !ok {
		return
	}
	entries, err := c.service.Requests(cx.Context(), userID)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Success(entries)
}

func pathIDs(cx *ctx.Context) (userID, organID uint, ok bool) {
	if userID, ok = cx.ParamUint("user_id"); !ok {
		return 0, 0, false
	}
	if organID, ok = cx.ParamUint("organ_id"); !ok {
		return 0, 0, false
	}
	return userID, organID, true
}
