package graphql

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

// request is the standard GraphQL-over-HTTP POST body.
type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Handler serves the /graphql endpoint inside Gin.
type Handler struct {
	schema graphql.Schema
}

// NewHandler はスキーマを構築してGraphQLハンドラーを生成します。
func NewHandler(r *Resolver) (*Handler, error) {
	schema, err := NewSchema(r)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

// Serve executes one GraphQL request.
// リゾルバーがクッキーを読み書きできるよう、ginコンテキストをリクエスト
// コンテキストに載せてからクエリを実行します。バリデーション以外の
// リゾルバーエラーはgraphql-goがresult.Errorsとして報告します。
func (h *Handler) Serve(c *gin.Context) {
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("malformed graphql request", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        withGinContext(c.Request.Context(), c),
	})

	if len(result.Errors) > 0 {
		slog.Warn("graphql request finished with errors",
			"errors", result.Errors, "remote_addr", c.ClientIP())
	}
	c.JSON(http.StatusOK, result)
}
