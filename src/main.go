package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edmundcwm/nerbcrmwp/pkg/appbuilder"
	"github.com/edmundcwm/nerbcrmwp/pkg/logger"
	"github.com/edmundcwm/nerbcrmwp/pkg/rabbitmq"
	"github.com/edmundcwm/nerbcrmwp/pkg/rest"
	"github.com/edmundcwm/nerbcrmwp/pkg/utilities/timeutil"
	"github.com/edmundcwm/nerbcrmwp/src/audit"
	"github.com/edmundcwm/nerbcrmwp/src/auth"
	"github.com/edmundcwm/nerbcrmwp/src/database"
	_ "github.com/edmundcwm/nerbcrmwp/src/docs"
	"github.com/edmundcwm/nerbcrmwp/src/middleware"
	"github.com/edmundcwm/nerbcrmwp/src/orders"
	"github.com/edmundcwm/nerbcrmwp/src/outbox"
	"github.com/edmundcwm/nerbcrmwp/src/profile"
	"github.com/edmundcwm/nerbcrmwp/src/sites"
)

// @title           NerbCRM Portal API
// @version         1.0
// @description     Role-gated CRUD API for company profiles, portal orders and linked sites
// @host localhost:9000
// @BasePath /
func main() {
	deactivate := flag.Bool("deactivate", false, "revoke portal roles and capabilities, then exit")
	devSeed := flag.Bool("dev-seed", false, "seed development fixtures after migrating")
	flag.Parse()

	var (
		evaluator       *auth.Evaluator
		resolver        auth.IdentityResolver
		activityService audit.ActivityService
		activityHandler *audit.ActivityHandler
		recorder        audit.Recorder
		outboxRepo      outbox.OutboxRepository
		profileHandler  *profile.ProfileHandler
		orderHandler    *orders.OrderHandler
		siteHandler     *sites.SiteHandler
	)

	appbuilder.New[ApiConfigJson, ApiConfig]().
		InitLogger(logger.GlobalLoggerConfig{}).
		LoadConfig("config.json").
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			// ----- DATABASE + MIGRATIONS -----
			database.InitializeDatabaseConnection(a.Config.GetDatabaseConnectionString())
			database.RunMigrations()
			db := database.GetDatabaseConnection()

			// ----- ROLES + CAPABILITIES -----
			roleStore := auth.NewRoleStore(db)
			registrar := auth.NewRegistrar(roleStore, auth.NewCapabilityTable())

			if *deactivate {
				if err := registrar.Deregister(); err != nil {
					a.Logger.Fatal(err, "Could not deregister portal roles")
				}
				a.Logger.Info("Portal roles and capabilities removed.")
				os.Exit(0)
			}

			if err := registrar.Register(); err != nil {
				a.Logger.Fatal(err, "Could not register portal roles")
			}

			if *devSeed {
				if err := database.InitializeDatabaseForDev(); err != nil {
					a.Logger.Fatal(err, "Could not seed development fixtures")
				}
			}

			evaluator = auth.NewEvaluator(roleStore)
			resolver = auth.NewIdentityResolver(db)

			// ----- AUDIT TRAIL -----
			activityRepository := audit.NewActivityRepository(db)
			activityService = audit.NewActivityService(activityRepository)
			activityHandler = audit.NewActivityHandler(activityService)

			outboxRepo = outbox.NewRepo(db)
		}).

		// ----- RABBITMQ -----
		InitRabbitmqConnection().
		InitRabbitmqRegistries().
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			// With a broker the audit trail goes through the queue, otherwise
			// entries are written straight to the database.
			if a.Conn != nil {
				recorder = audit.NewPublisherRecorder(rabbitmq.GetPublisher(audit.ActivityPublisherAlias))
				a.AddWorkerServices(
					outbox.NewOutboxWorker(outboxRepo),
					audit.NewActivitySinkWorker(activityService),
				)
			} else {
				recorder = audit.NewStoreRecorder(activityService)
			}

			// ----- LOGGER SINK INTO THE AUDIT TRAIL -----
			logger.AddSinkToLoggerInstance(logger.Default(), func(message string, level zerolog.Level, at timeutil.TimeUTC) {
				if level < zerolog.WarnLevel {
					return
				}
				// Errors here are dropped: logging them would re-enter the sink.
				_ = activityService.ProcessMessage(audit.ActivityMessage{
					Actor:     "system",
					Action:    "log." + level.String(),
					Resource:  message,
					Timestamp: at,
				})
			})

			// ----- RESOURCE SERVICES -----
			db := database.GetDatabaseConnection()

			orderRepository := orders.NewOrderRepository(db)
			categoryResolver := orders.NewCategoryResolver(orderRepository)
			orderService := orders.NewOrderService(orderRepository, categoryResolver, outboxRepo, recorder)
			orderHandler = orders.NewOrderHandler(orderService)

			profileRepository := profile.NewProfileRepository(db)
			profileService := profile.NewProfileService(profileRepository, recorder)
			profileHandler = profile.NewProfileHandler(profileService)

			siteRepository := sites.NewSiteRepository(db)
			siteService := sites.NewSiteService(siteRepository, recorder)
			siteHandler = sites.NewSiteHandler(siteService)
		}).
		WithOption(func(a *appbuilder.AppBuilder[ApiConfigJson, ApiConfig]) {
			canReadAllProfiles := func(identity auth.Identity, _ *gin.Context) bool {
				return evaluator.CanReadAllCompanyProfiles(identity)
			}
			canReadProfile := func(identity auth.Identity, c *gin.Context) bool {
				return evaluator.CanReadCompanyProfile(identity, paramUint(c, "id"))
			}
			canEditProfile := func(identity auth.Identity, c *gin.Context) bool {
				return evaluator.CanEditCompanyProfile(identity, paramUint(c, "id"))
			}
			canReadAllOrders := func(identity auth.Identity, _ *gin.Context) bool {
				return evaluator.CanReadAllOrders(identity)
			}
			canAccessOrders := func(identity auth.Identity, c *gin.Context) bool {
				return evaluator.CanAccessOrdersByEmail(identity, c.Param("email"))
			}

			a.AddGinMiddleware(
				rest.NewMiddleware("*", middleware.CORSMiddleware(a.Config.GetAllowedOrigin())),
				rest.NewMiddleware("v1", middleware.Identify(resolver)),
			)

			a.AddGinRoutes(
				// Auth
				rest.NewRoute(rest.GET, "v1", "auth/validate", auth.Validate),

				// Company profiles
				rest.NewRoute(rest.GET, "v1", "company-profile",
					middleware.RequirePermission(canReadAllProfiles), profileHandler.GetAllProfiles),
				rest.NewRoute(rest.GET, "v1", "company-profile/:id",
					middleware.ValidateNumericParam("id"), middleware.RequirePermission(canReadProfile), profileHandler.GetProfile),
				rest.NewRoute(rest.PUT, "v1", "company-profile/:id",
					middleware.ValidateNumericParam("id"), middleware.RequirePermission(canEditProfile), profileHandler.UpdateProfile),
				rest.NewRoute(rest.PATCH, "v1", "company-profile/:id",
					middleware.ValidateNumericParam("id"), middleware.RequirePermission(canEditProfile), profileHandler.UpdateProfile),

				// Linked sites
				rest.NewRoute(rest.GET, "v1", "linked-sites", siteHandler.GetAllSites),
				rest.NewRoute(rest.PATCH, "v1", "linked-sites/:id",
					middleware.ValidateNumericParam("id"), middleware.RequireAuth(), siteHandler.UpdateSiteURL),

				// Portal orders
				rest.NewRoute(rest.GET, "v1", "orders",
					middleware.RequirePermission(canReadAllOrders), orderHandler.GetAllOrders),
				rest.NewRoute(rest.POST, "v1", "orders",
					middleware.RequirePermission(canReadAllOrders), orderHandler.CreateOrder),
				rest.NewRoute(rest.GET, "v1", "orders/:email",
					middleware.ValidateEmailParam("email"), middleware.RequirePermission(canAccessOrders), orderHandler.GetCustomerOrders),
				rest.NewRoute(rest.PUT, "v1", "orders/:email",
					middleware.ValidateEmailParam("email"), middleware.RequirePermission(canAccessOrders), orderHandler.UpdateCustomerOrders),
				rest.NewRoute(rest.PATCH, "v1", "orders/:email",
					middleware.ValidateEmailParam("email"), middleware.RequirePermission(canAccessOrders), orderHandler.UpdateCustomerOrders),

				// Audit trail
				rest.NewRoute(rest.GET, "v1", "audit",
					middleware.RequirePermission(canReadAllOrders), activityHandler.GetActivityEntries),
				rest.NewRoute(rest.GET, "v1", "audit/actor/:actor",
					middleware.RequirePermission(canReadAllOrders), activityHandler.GetActivityEntriesByActor),
			)
		}).
		AddSwagger().
		InitGinRouter().
		Build().
		Start()
}

func paramUint(c *gin.Context, name string) uint {
	value, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(value)
}
