package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"readit_backend/internal/platform/config"
	gqltransport "readit_backend/internal/transport/graphql"
)

// NewRouter はGinエンジンを構築してルートを登録します。
// APIはGraphQL単一エンドポイントで、他にはヘルスチェックのみを公開します。
func NewRouter(cfg *config.Config, gql *gqltransport.Handler) *gin.Engine {
	r := gin.Default()

	// セッションクッキーを使うため、フロントエンドのオリジンを
	// 明示してクレデンシャル付きCORSを許可する
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	// 導通確認用
	r.GET("/healthz", func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.JSON(200, gin.H{"status": "ok"})
	})

	// GraphQL単一エンドポイント
	r.POST("/graphql", gql.Serve)

	return r
}
