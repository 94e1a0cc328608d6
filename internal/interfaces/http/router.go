package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	actorapp "stayops/internal/application/actor"
	authapp "stayops/internal/application/auth"
	catalogapp "stayops/internal/application/catalog"
	locationapp "stayops/internal/application/location"
	menuusecases "stayops/internal/application/menu/usecases"
	"stayops/internal/infrastructure/auth"
	"stayops/internal/infrastructure/config"
	"stayops/internal/infrastructure/email"
	"stayops/internal/infrastructure/repository"
	"stayops/internal/interfaces/http/handlers"
	"stayops/internal/interfaces/http/middleware"
	"stayops/internal/shared/authorization"
	"stayops/internal/shared/db"
	"stayops/internal/shared/logger"

	_ "stayops/docs"
)

// Router wires repositories, services and handlers onto a gin engine.
type Router struct {
	engine          *gin.Engine
	authHandler     *handlers.AuthHandler
	locationHandler *handlers.LocationHandler
	catalogHandler  *handlers.CatalogHandler
	menuHandler     *handlers.MenuHandler
	actorHandler    *handlers.ActorHandler
	authMiddleware  *middleware.AuthMiddleware
	cfg             *config.Config
	logger          logger.Interface
}

// NewRouter builds the full dependency graph from the database
// handle and configuration.
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	txManager := db.NewTransactionManager(database)

	countryRepo := repository.NewCountryRepository(database)
	stateRepo := repository.NewStateRepository(database)
	districtRepo := repository.NewDistrictRepository(database)
	zoneRepo := repository.NewZoneRepository(database)
	unitRepo := repository.NewUnitRepository(database)
	categoryRepo := repository.NewCategoryRepository(database)
	addonRepo := repository.NewAddonRepository(database)
	menuRepo := repository.NewMenuRepository(database)
	superadminRepo := repository.NewSuperadminRepository(database)
	agentRepo := repository.NewAgentRepository(database)
	hotelRepo := repository.NewHotelRepository(database)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpiryHours)
	mailer := email.NewSMTPEmailService(email.SMTPConfig{
		Enabled:     cfg.Email.Enabled,
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	authService := authapp.NewService(superadminRepo, agentRepo, hotelRepo, jwtService, hasher, log)

	locationHandler := handlers.NewLocationHandler(
		locationapp.NewCountryService(countryRepo, log),
		locationapp.NewStateService(stateRepo, log),
		locationapp.NewDistrictService(districtRepo, log),
		locationapp.NewZoneService(zoneRepo, log),
	)
	catalogHandler := handlers.NewCatalogHandler(
		catalogapp.NewUnitService(unitRepo, log),
		catalogapp.NewCategoryService(categoryRepo, log),
		catalogapp.NewAddonService(addonRepo, log),
	)
	menuHandler := handlers.NewMenuHandler(
		menuusecases.NewCreateMenuItemUseCase(menuRepo, categoryRepo, txManager, log),
		menuusecases.NewUpdateMenuItemUseCase(menuRepo, categoryRepo, txManager, log),
		menuusecases.NewDeleteMenuItemUseCase(menuRepo, txManager, log),
		menuusecases.NewGetMenuItemUseCase(menuRepo, log),
		menuusecases.NewListMenuItemsUseCase(menuRepo, log),
		menuusecases.NewReplaceMenuAddonsUseCase(menuRepo, txManager, log),
		menuusecases.NewExportMenuUseCase(menuRepo, log),
	)
	actorHandler := handlers.NewActorHandler(
		actorapp.NewAgentService(agentRepo, countryRepo, stateRepo, districtRepo, zoneRepo, hasher, mailer, log),
		actorapp.NewHotelService(hotelRepo, agentRepo, countryRepo, stateRepo, districtRepo, zoneRepo, hasher, mailer, log),
	)

	return &Router{
		engine:          engine,
		authHandler:     handlers.NewAuthHandler(authService),
		locationHandler: locationHandler,
		catalogHandler:  catalogHandler,
		menuHandler:     menuHandler,
		actorHandler:    actorHandler,
		authMiddleware:  middleware.NewAuthMiddleware(jwtService, log),
		cfg:             cfg,
		logger:          log,
	}
}

// SetupRoutes registers middleware and all route groups.
func (r *Router) SetupRoutes() *gin.Engine {
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/superadmin/login", r.authHandler.LoginSuperadmin)
		authGroup.POST("/agent/login", r.authHandler.LoginAgent)
		authGroup.POST("/hotel/login", r.authHandler.LoginHotel)
	}

	protected := api.Group("")
	protected.Use(r.authMiddleware.RequireAuth())

	countries := protected.Group("/countries")
	{
		countries.POST("", r.locationHandler.CreateCountry)
		countries.GET("", r.locationHandler.ListCountries)
		countries.GET("/:id", r.locationHandler.GetCountry)
		countries.PUT("/:id", r.locationHandler.UpdateCountry)
		countries.DELETE("/:id", r.locationHandler.DeleteCountry)
	}

	states := protected.Group("/states")
	{
		states.POST("", r.locationHandler.CreateState)
		states.GET("", r.locationHandler.ListStates)
		states.GET("/:id", r.locationHandler.GetState)
		states.PUT("/:id", r.locationHandler.UpdateState)
		states.DELETE("/:id", r.locationHandler.DeleteState)
	}

	districts := protected.Group("/districts")
	{
		districts.POST("", r.locationHandler.CreateDistrict)
		districts.GET("", r.locationHandler.ListDistricts)
		districts.GET("/:id", r.locationHandler.GetDistrict)
		districts.PUT("/:id", r.locationHandler.UpdateDistrict)
		districts.DELETE("/:id", r.locationHandler.DeleteDistrict)
	}

	zones := protected.Group("/zones")
	{
		zones.POST("", r.locationHandler.CreateZone)
		zones.GET("", r.locationHandler.ListZones)
		zones.GET("/:id", r.locationHandler.GetZone)
		zones.PUT("/:id", r.locationHandler.UpdateZone)
		zones.DELETE("/:id", r.locationHandler.DeleteZone)
	}

	units := protected.Group("/units")
	{
		units.POST("", r.catalogHandler.CreateUnit)
		units.GET("", r.catalogHandler.ListUnits)
		units.GET("/:id", r.catalogHandler.GetUnit)
		units.PUT("/:id", r.catalogHandler.UpdateUnit)
		units.DELETE("/:id", r.catalogHandler.DeleteUnit)
	}

	categories := protected.Group("/categories")
	{
		categories.POST("", r.catalogHandler.CreateCategory)
		categories.GET("", r.catalogHandler.ListCategories)
		categories.GET("/:id", r.catalogHandler.GetCategory)
		categories.PUT("/:id", r.catalogHandler.UpdateCategory)
		categories.DELETE("/:id", r.catalogHandler.DeleteCategory)
	}

	addons := protected.Group("/addons")
	{
		addons.POST("", r.catalogHandler.CreateAddon)
		addons.GET("", r.catalogHandler.ListAddons)
		addons.GET("/:id", r.catalogHandler.GetAddon)
		addons.PUT("/:id", r.catalogHandler.UpdateAddon)
		addons.DELETE("/:id", r.catalogHandler.DeleteAddon)
	}

	menuItems := protected.Group("/menu-items")
	{
		menuItems.POST("", r.menuHandler.Create)
		menuItems.GET("", r.menuHandler.List)
		menuItems.GET("/export", r.menuHandler.Export)
		menuItems.GET("/:id", r.menuHandler.Get)
		menuItems.PUT("/:id", r.menuHandler.Update)
		menuItems.PUT("/:id/addons", r.menuHandler.ReplaceAddons)
		menuItems.DELETE("/:id", r.menuHandler.Delete)
	}

	superadminOnly := protected.Group("")
	superadminOnly.Use(r.authMiddleware.RequireRole(authorization.RoleSuperadmin))

	agents := superadminOnly.Group("/agents")
	{
		agents.POST("", r.actorHandler.CreateAgent)
		agents.GET("", r.actorHandler.ListAgents)
		agents.GET("/:id", r.actorHandler.GetAgent)
		agents.PUT("/:id", r.actorHandler.UpdateAgent)
		agents.DELETE("/:id", r.actorHandler.DeleteAgent)
	}

	hotels := superadminOnly.Group("/hotels")
	{
		hotels.POST("", r.actorHandler.CreateHotel)
		hotels.GET("", r.actorHandler.ListHotels)
		hotels.GET("/:id", r.actorHandler.GetHotel)
		hotels.PUT("/:id", r.actorHandler.UpdateHotel)
		hotels.DELETE("/:id", r.actorHandler.DeleteHotel)
	}

	return r.engine
}
