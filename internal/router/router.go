package router

import (
	"github.com/pizza-palace/internal/config"
	publichandlers "github.com/pizza-palace/internal/http/handlers/public"
	staffhandlers "github.com/pizza-palace/internal/http/handlers/staff"
	"github.com/pizza-palace/internal/logger"
	"github.com/pizza-palace/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	r := gin.New()

	// 初始化 Handler（按顾客/员工分组）
	publicHandler := publichandlers.New(c)
	staffHandler := staffhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/catalog", publicHandler.GetCatalog)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/toppings", publicHandler.GetToppings)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.Auth.JWTSecret))
		{
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
			user.POST("/orders", publicHandler.SubmitOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.GET("/orders/stream", publicHandler.StreamOrders)
		}

		// 员工接口（需鉴权 + 员工判定）
		staff := apiV1.Group("/staff")
		staff.Use(UserJWTAuthMiddleware(cfg.Auth.JWTSecret))
		staff.Use(StaffOnlyMiddleware(cfg.Auth.StaffEmailDomain))
		{
			staff.GET("/orders", staffHandler.ListOrders)
			staff.POST("/orders/:id/advance", staffHandler.AdvanceOrder)
			staff.GET("/orders/stream", staffHandler.StreamOrders)
		}
	}

	return r
}
