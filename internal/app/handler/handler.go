package handler

import (
	"Contract-Service/internal/app/contract"
	"Contract-Service/internal/app/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RegisterHandlers регистрирует все обработчики.
// cache может быть nil, тогда страницы не кешируются.
func RegisterHandlers(router *gin.Engine, store IntervalStore, cache PageCache, policy contract.Policy) {
	// ограничения binding проверяются и возвращаются как contract.Violations
	binding.Validator = validation.New()

	responder := newResponder(policy)
	intervalHandler := NewIntervalHandler(store, cache, policy)

	apiRouter := router.Group("/api")
	{
		// Страницы интервалов
		apiRouter.POST("/intervals/page", intervalHandler.Page)
		apiRouter.POST("/intervals/search", intervalHandler.Search)
		apiRouter.POST("/intervals/titles", intervalHandler.Titles)
		apiRouter.GET("/intervals/by-title/:title", intervalHandler.ByTitle)

		// Отдельные интервалы
		apiRouter.GET("/intervals/:id", intervalHandler.GetInterval)
		apiRouter.POST("/intervals", intervalHandler.CreateInterval)
		apiRouter.DELETE("/intervals/:id", intervalHandler.DeleteInterval)
	}

	router.NoRoute(func(ctx *gin.Context) {
		responder.respond(ctx, contract.Failure(policy, policy.NotFoundCode, policy.NotFoundMessage))
	})
}
