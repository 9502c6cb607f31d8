package controler

import (
	"github.com/EccoMoonProject/ERC721Base/pkg/ratefeed"
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"github.com/EccoMoonProject/ERC721Base/service"

	"github.com/gin-gonic/gin"
)

type IssuanceController struct {
	issuanceS *service.IssuanceService
	oracleS   *service.OracleService
}

func NewIssuanceController(feed ratefeed.RateFeed) *IssuanceController {
	oracle := service.NewOracleService(feed)

	return &IssuanceController{
		issuanceS: service.NewIssuanceService(nil, oracle),
		oracleS:   oracle,
	}
}

func (c *IssuanceController) Mint(ctx *gin.Context) {
	var req basetypes.MintReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	res, err := c.issuanceS.MintTo(req)
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}

func (c *IssuanceController) BatchMint(ctx *gin.Context) {
	var req basetypes.BatchMintReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	res, err := c.issuanceS.BatchMintTo(req)
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}

func (c *IssuanceController) Burn(ctx *gin.Context) {
	var req basetypes.BurnReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	if err := c.issuanceS.Burn(req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, nil)
}

func (c *IssuanceController) Withdraw(ctx *gin.Context) {
	var req basetypes.WithdrawReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	res, err := c.issuanceS.Withdraw(req)
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}

func (c *IssuanceController) TransferAuthority(ctx *gin.Context) {
	var req basetypes.TransferAuthorityReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	if err := c.issuanceS.TransferAuthority(req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, nil)
}

func (c *IssuanceController) Events(ctx *gin.Context) {
	var req basetypes.EventsReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	res, err := c.issuanceS.ListEvents(req.Limit)
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}

func (c *IssuanceController) Price(ctx *gin.Context) {
	var req basetypes.PriceReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	price, err := c.oracleS.UnitPrice(req.Tier)
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, &basetypes.PriceRsp{
		Tier:  req.Tier,
		Price: price.String(),
	})
}
