package controler

import (
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"github.com/EccoMoonProject/ERC721Base/service"

	"github.com/gin-gonic/gin"
)

type WhitelistController struct {
	whitelistS *service.WhitelistService
}

func NewWhitelistController() *WhitelistController {
	return &WhitelistController{
		whitelistS: service.NewWhitelistService(nil),
	}
}

func (c *WhitelistController) Grant(ctx *gin.Context) {
	var req basetypes.GrantWhitelistReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	if err := c.whitelistS.Grant(req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, nil)
}

func (c *WhitelistController) Status(ctx *gin.Context) {
	var req basetypes.WhitelistStatusReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	res, err := c.whitelistS.Status(req)
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}
