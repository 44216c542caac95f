package routes

import (
	"projectmgmt/internal/handlers"

	"github.com/gin-gonic/gin"
)

type GraphQLRoutes struct {
	handler *handlers.GraphQLHandler
}

func NewGraphQLRoutes(handler *handlers.GraphQLHandler) *GraphQLRoutes {
	return &GraphQLRoutes{handler: handler}
}

func (r *GraphQLRoutes) RegisterRoutes(router gin.IRouter) {
	router.POST("/graphql", r.handler.Execute)
	router.GET("/graphql", r.handler.Query)
}
