package routes

import "github.com/gin-gonic/gin"

const (
	PathWorkOrders   = "/work-orders"
	PathFinance      = "/finance"
	PathAppointments = "/appointments"
)

// addAdminRoutes registers the back-office endpoints. rg already carries the
// admin authentication middleware.
func addAdminRoutes(rg *gin.RouterGroup, a *Application) {
	rg.GET("", a.dashboard.Overview)
	rg.GET("/", a.dashboard.Overview)

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("", a.workOrders.List)
		workOrders.POST("", a.workOrders.Create)
		workOrders.GET("/:id", a.workOrders.Get)
		workOrders.PUT("/:id", a.workOrders.Replace)
		workOrders.DELETE("/:id", a.workOrders.Delete)
		workOrders.PATCH("/:id/status", a.workOrders.SetStatus)
		workOrders.POST("/:id/items", a.workOrders.AddItem)
		workOrders.PUT("/:id/items/:itemId", a.workOrders.UpdateItem)
		workOrders.DELETE("/:id/items/:itemId", a.workOrders.RemoveItem)
		workOrders.POST("/:id/payments", a.payments.Checkout)
		workOrders.GET("/:id/payments", a.payments.List)
	}

	leads := rg.Group(PathLeads)
	{
		leads.GET("", a.leads.List)
		leads.PATCH("/:id/status", a.leads.UpdateStatus)
		leads.DELETE("/:id", a.leads.Delete)
	}

	finance := rg.Group(PathFinance)
	{
		finance.GET("", a.finance.List)
		finance.POST("", a.finance.Create)
		finance.GET("/export", a.finance.Export)
		finance.DELETE("/:id", a.finance.Delete)
	}

	blog := rg.Group(PathBlog)
	{
		blog.GET("/queue", a.blog.Queue)
		blog.POST("/queue", a.blog.Enqueue)
		blog.POST("/generate", a.blog.Generate)
		blog.POST("/posts", a.blog.Create)
		blog.DELETE("/posts/:id", a.blog.Delete)
	}

	products := rg.Group(PathProducts)
	{
		products.POST("", a.catalog.CreateProduct)
		products.PUT("/:id", a.catalog.ReplaceProduct)
		products.DELETE("/:id", a.catalog.DeleteProduct)
		products.PATCH("/:id/featured", a.catalog.ToggleFeatured)
	}

	services := rg.Group(PathServices)
	{
		services.POST("", a.catalog.CreateService)
		services.DELETE("/:id", a.catalog.DeleteService)
	}

	appointments := rg.Group(PathAppointments)
	{
		appointments.GET("", a.appointments.List)
		appointments.POST("", a.appointments.Create)
		appointments.GET("/week", a.appointments.Week)
		appointments.POST("/quick", a.appointments.QuickAdd)
		appointments.DELETE("/:id", a.appointments.Delete)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", a.settings.Get)
		settings.PUT("", a.settings.Replace)
	}
}
