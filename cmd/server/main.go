package main

import (
	"log"
	"strings"

	"factorypro-backend/internal/auth"
	"factorypro-backend/internal/config"
	"factorypro-backend/internal/database"
	"factorypro-backend/internal/delivery"
	"factorypro-backend/internal/engine"
	"factorypro-backend/internal/expanding"
	"factorypro-backend/internal/finishedgoods"
	"factorypro-backend/internal/fuel"
	"factorypro-backend/internal/master"
	"factorypro-backend/internal/production"
	"factorypro-backend/internal/rawmaterial"
	"factorypro-backend/internal/report"
	"factorypro-backend/internal/silo"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	state, err := database.LoadState()
	if err != nil {
		log.Fatal("[FATAL] could not load persisted state:", err)
	}
	eng := engine.New(state, database.SaveState)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Full snapshot and reports
	protected.Get("/state", report.StateHandler(eng))
	protected.Get("/audit-logs", report.ListAuditLogsHandler(eng))
	protected.Get("/reports/efficiency", report.EfficiencyHandler(eng))

	// Master data
	protected.Get("/master-items", master.ListItemsHandler(eng))
	protected.Post("/master-items", master.CreateItemHandler(eng))
	protected.Delete("/master-items/:id", master.DeleteItemHandler(eng))

	// Raw material receiving and issue
	protected.Post("/receivings", rawmaterial.CreateReceivingHandler(eng))
	protected.Put("/receivings/:id", rawmaterial.UpdateReceivingHandler(eng))
	protected.Delete("/receivings/:id", rawmaterial.DeleteReceivingHandler(eng))
	protected.Post("/issues", rawmaterial.CreateIssueHandler(eng))
	protected.Put("/issues/:id", rawmaterial.UpdateIssueHandler(eng))
	protected.Delete("/issues/:id", rawmaterial.DeleteIssueHandler(eng))

	// Pre-expanding
	protected.Post("/pre-expandings", expanding.CreatePreExpandingHandler(eng))
	protected.Put("/pre-expandings/:id", expanding.UpdatePreExpandingHandler(eng))
	protected.Delete("/pre-expandings/:id", expanding.DeletePreExpandingHandler(eng))

	// Second expanding and silo maintenance
	protected.Post("/second-expandings", silo.CreateSecondExpandingHandler(eng))
	protected.Put("/second-expandings/:id", silo.UpdateSecondExpandingHandler(eng))
	protected.Delete("/second-expandings/:id", silo.DeleteSecondExpandingHandler(eng))
	protected.Post("/silos/opening", silo.SetOpeningHandler(eng))
	protected.Post("/silos/adjust", silo.AdjustHandler(eng))

	// Finished goods maintenance
	protected.Post("/finished-goods/opening", finishedgoods.SetOpeningHandler(eng))
	protected.Post("/finished-goods/adjust", finishedgoods.AdjustHandler(eng))

	// Production
	protected.Post("/productions", production.CreateProductionHandler(eng))
	protected.Put("/productions/:id", production.UpdateProductionHandler(eng))
	protected.Delete("/productions/:id", production.DeleteProductionHandler(eng))

	// Delivery
	protected.Post("/deliveries", delivery.CreateDeliveryHandler(eng))
	protected.Put("/deliveries/:id", delivery.UpdateDeliveryHandler(eng))
	protected.Delete("/deliveries/:id", delivery.DeleteDeliveryHandler(eng))

	// Fuel
	protected.Post("/fuel-entries", fuel.CreateFuelHandler(eng))
	protected.Put("/fuel-entries/:id", fuel.UpdateFuelHandler(eng))
	protected.Delete("/fuel-entries/:id", fuel.DeleteFuelHandler(eng))

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
