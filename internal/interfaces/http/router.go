package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/everledger-liquor/internal/application/manager"
	"github.com/jhoicas/everledger-liquor/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Manager     *manager.Manager
	JWTSecret   string
	Idempotency *IdempotencyCache
	Logger      *logger.Logger
}

// NewApp crea la app fiber con los timeouts del servidor y recover.
// Los parámetros de ruta se decodifican en cada handler con pathParam, por eso UnescapePath queda apagado:
// así un nombre con "/" (%2F) sigue siendo un solo segmento.
func NewApp(appName string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API. Lecturas públicas; escrituras con Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "seq": deps.Manager.Seq()})
	})

	api := app.Group("/api")
	write := []fiber.Handler{AuthMiddleware(deps.JWTSecret), Idempotency(deps.Idempotency)}

	// Vendors
	vendorHandler := NewVendorHandler(deps.Manager, log)
	vendors := api.Group("/vendors")
	vendors.Post("/:role/identity", append(write, vendorHandler.Register)...)
	vendors.Put("/:role/identity", append(write, vendorHandler.Rename)...)
	vendors.Get("/:role/:name", vendorHandler.GetAddress)

	// Costs
	costHandler := NewCostHandler(deps.Manager, log)
	costs := api.Group("/costs")
	costs.Post("/", append(write, costHandler.Add)...)
	costs.Get("/:vendor/:label", costHandler.Get)

	// Products
	productHandler := NewProductHandler(deps.Manager, log)
	products := api.Group("/products")
	products.Post("/", append(write, productHandler.Fill)...)
	products.Get("/", productHandler.ListByVendor)
	products.Get("/:id/exists", productHandler.Exists)
	products.Get("/:id", productHandler.GetByID)

	// Ledger
	ledgerHandler := NewLedgerHandler(deps.Manager, log)
	api.Get("/ledger/operations", ledgerHandler.ListOperations)
}
