package routes

import "github.com/gin-gonic/gin"

const (
	PathProducts = "/products"
	PathServices = "/services"
	PathLeads    = "/leads"
	PathBlog     = "/blog"
	PathTracking = "/tracking"
	PathSettings = "/settings"
	PathAuth     = "/auth"
)

// addPublicRoutes registers the storefront endpoints. None require a token.
func addPublicRoutes(rg *gin.RouterGroup, a *Application) {
	products := rg.Group(PathProducts)
	{
		products.GET("", a.catalog.ListProducts)
		products.GET("/featured", a.catalog.FeaturedProducts)
		products.GET("/:id", a.catalog.GetProduct)
		products.POST("/:id/interest", a.leads.CreateProductInterest)
	}

	rg.GET(PathServices, a.catalog.ListServices)
	rg.POST(PathLeads, a.leads.Create)

	blog := rg.Group(PathBlog)
	{
		blog.GET("", a.blog.List)
		blog.GET("/:slug", a.blog.GetBySlug)
	}

	tracking := rg.Group(PathTracking)
	{
		tracking.GET("", a.workOrders.Track)
		tracking.GET("/:code", a.workOrders.Track)
	}

	rg.GET(PathSettings, a.settings.Public)
	rg.POST(PathAuth+"/login", a.auth.Login)
}
