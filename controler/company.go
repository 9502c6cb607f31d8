package controler

import (
	basetypes "github.com/EccoMoonProject/ERC721Base/pkg/types"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"github.com/EccoMoonProject/ERC721Base/service"

	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	companyS *service.CompanyService
}

func NewCompanyController() *CompanyController {
	return &CompanyController{
		companyS: service.NewCompanyService(nil),
	}
}

func (c *CompanyController) Bind(ctx *gin.Context) {
	var req basetypes.BindCompanyReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	if err := c.companyS.Bind(req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, nil)
}

func (c *CompanyController) Get(ctx *gin.Context) {
	var req basetypes.CompanyReq
	if err := ctx.ShouldBind(&req); err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	res, err := c.companyS.Get(req)
	if err != nil {
		utils.FailResponse(ctx, err.Error())
		return
	}

	utils.SuccessResponse(ctx, res)
}
