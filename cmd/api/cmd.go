package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EccoMoonProject/ERC721Base/config"
	"github.com/EccoMoonProject/ERC721Base/pkg/database"
	"github.com/EccoMoonProject/ERC721Base/pkg/global"
	"github.com/EccoMoonProject/ERC721Base/pkg/log"
	"github.com/EccoMoonProject/ERC721Base/pkg/ratefeed"
	"github.com/EccoMoonProject/ERC721Base/pkg/utils"
	"github.com/EccoMoonProject/ERC721Base/router"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "api",
		Run: func(cmd *cobra.Command, args []string) {
			setup()
		},
	}
}

func newFeed(chain config.ChainConfig) ratefeed.RateFeed {
	if chain.RpcUrl != "" {
		if err := global.Init(chain.RpcUrl); err != nil {
			log.Log.Fatal("failed to dial rpc",
				zap.Error(err),
			)
		}
		return ratefeed.NewChainlinkFeed(global.EthClient, chain.FeedAddr)
	}

	return ratefeed.NewFixedFeed(utils.MustStringToBigint(chain.FixedRate))
}

func setup() {
	conf := config.GetConfig()
	log.Init("api.log")
	database.NewMysql()

	gin.DefaultWriter = log.Write
	r := router.NewRoute(newFeed(conf.Chain))
	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.App.Port),
		Handler: r,
	}

	go func() {
		WaitForSignal(func() {
			ctx, cancel := context.WithTimeout(context.TODO(), 5*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(ctx); err != nil {
				log.Log.Error("failed to shutdown http server",
					zap.Error(err),
				)
			}
			database.DisconnectMysql()
		})
	}()

	if err := httpSrv.ListenAndServe(); err != nil {
		if err != http.ErrServerClosed {
			log.Log.Fatal("failed to run issuance server",
				zap.Error(err),
			)
		}
	}
}

func WaitForSignal(callback func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)

	sig := <-sigCh
	log.Log.Info("signal arrived",
		zap.String("signal", sig.String()),
	)

	callback()
}
