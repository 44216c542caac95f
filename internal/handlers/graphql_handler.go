package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"go.uber.org/zap"

	"projectmgmt/internal/metrics"
	"projectmgmt/internal/responses"
)

type GraphQLHandler struct {
	schema   *graphql.Schema
	graphiql bool
	logger   *zap.Logger
}

func NewGraphQLHandler(schema *graphql.Schema, graphiql bool, logger *zap.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		schema:   schema,
		graphiql: graphiql,
		logger:   logger,
	}
}

type GraphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Execute handles POST /graphql
func (h *GraphQLHandler) Execute(c *gin.Context) {
	var req GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	h.execute(c, req)
}

// Query handles GET /graphql. Without a query parameter it serves GraphiQL
// when enabled. Mutations are only accepted over POST.
func (h *GraphQLHandler) Query(c *gin.Context) {
	req := GraphQLRequest{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
	}

	if req.Query == "" && h.graphiql {
		c.Data(http.StatusOK, "text/html; charset=utf-8", graphiqlPage)
		return
	}

	if raw := c.Query("variables"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
			responses.Fail(c, http.StatusBadRequest, err, "Invalid variables parameter")
			return
		}
	}

	if req.Query != "" && !isQueryOperation(req.Query, req.OperationName) {
		c.Header("Allow", http.MethodPost)
		responses.Fail(c, http.StatusMethodNotAllowed, errors.New("mutations require POST"), "Only query operations are allowed over GET")
		return
	}

	h.execute(c, req)
}

// isQueryOperation reports whether the operation selected by name is a
// query. Documents that do not parse or select no operation are left to the
// executor, which reports them as GraphQL errors.
func isQueryOperation(query, operationName string) bool {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return true
	}
	op := doc.Operations.ForName(operationName)
	if op == nil {
		return true
	}
	return op.Operation == ast.Query
}

func (h *GraphQLHandler) execute(c *gin.Context, req GraphQLRequest) {
	if req.Query == "" {
		responses.Fail(c, http.StatusBadRequest, errors.New("query is required"), "Query is required: Cannot be empty")
		return
	}

	resp := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)

	metrics.IncGraphQLOperation(len(resp.Errors) > 0)
	for _, qerr := range resp.Errors {
		h.logger.Warn("GraphQL error",
			zap.String("operation", req.OperationName),
			zap.String("message", qerr.Message),
			zap.Any("path", qerr.Path),
		)
	}

	c.JSON(http.StatusOK, resp)
}
