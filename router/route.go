package router

import (
	"time"

	"github.com/EccoMoonProject/ERC721Base/config"
	"github.com/EccoMoonProject/ERC721Base/controler"
	"github.com/EccoMoonProject/ERC721Base/pkg/log"
	"github.com/EccoMoonProject/ERC721Base/pkg/ratefeed"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func requestId() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		log.SetContext(uuid.NewString())
		defer log.DelContext()

		ctx.Next()
	}
}

func NewRoute(feed ratefeed.RateFeed) *gin.Engine {
	r := gin.Default()
	r.Use(requestId())

	conf := config.GetConfig()
	base := r.Group(conf.App.RoutePrefix)

	issuance := controler.NewIssuanceController(feed)
	whitelist := controler.NewWhitelistController()
	token := controler.NewTokenController()
	company := controler.NewCompanyController()

	memStore := persist.NewMemoryStore(time.Minute)

	v1 := base.Group("/v1")
	v1.POST("/mint", issuance.Mint)
	v1.POST("/mint/batch", issuance.BatchMint)
	v1.POST("/burn", issuance.Burn)
	v1.POST("/withdraw", issuance.Withdraw)
	v1.POST("/authority/transfer", issuance.TransferAuthority)
	v1.GET("/price", cache.CacheByRequestURI(memStore, 10*time.Second), issuance.Price)
	v1.GET("/events", issuance.Events)

	v1.POST("/whitelist/grant", whitelist.Grant)
	v1.GET("/whitelist/status", whitelist.Status)

	v1.GET("/token/uri", cache.CacheByRequestURI(memStore, 10*time.Second), token.Uri)
	v1.GET("/token/supply", cache.CacheByRequestURI(memStore, 10*time.Second), token.Supply)
	v1.GET("/token/next", token.NextId)

	v1.POST("/company/bind", company.Bind)
	v1.GET("/company", company.Get)

	return r
}
