package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"projectmgmt/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, graphqlHandler *handlers.GraphQLHandler) {
	graphqlRoutes := NewGraphQLRoutes(graphqlHandler)
	graphqlRoutes.RegisterRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
