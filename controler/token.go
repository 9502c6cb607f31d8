package controler

import (
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"github.com/EccoMoonProject/ERC721Base/service"

	"github.com/gin-gonic/gin"
)

type TokenController struct {
	tokenS *service.TokenService
}

func NewTokenController() *TokenController {
	return &TokenController{
		tokenS: service.NewTokenService(nil),
	}
}

func (c *TokenController) Uri(ctx *gin.Context) {
	var req basetypes.TokenUriReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	res, err := c.tokenS.Uri(req)
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}

func (c *TokenController) Supply(ctx *gin.Context) {
	res, err := c.tokenS.Supply()
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}

func (c *TokenController) NextId(ctx *gin.Context) {
	res, err := c.tokenS.NextId()
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}
