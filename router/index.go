package router

import (
	"nzoo_immo/handler"
	"nzoo_immo/middleware"
	"nzoo_immo/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)

	// Public
	espaces := v1.Group("/espaces", logger.New())
	espaces.Get("/", handler.GetPublicSpaces)
	espaces.Get("/catalogue", handler.GetCatalog)
	espaces.Get("/catalogue/:type", handler.GetCatalogByType)
	espaces.Get("/:slug", handler.GetPublicSpaceBySlug)

	reservation := v1.Group("/reservations", logger.New())
	reservation.Post("/", validate.CreateReservation(), handler.CreateReservation)
	reservation.Get("/code/:code", middleware.OptionalJWT(), handler.GetReservationByCode)

	// Admin / authentifié
	reservation.Get("/", middleware.Protected(), handler.GetReservations)
	reservation.Post("/sweep", middleware.Protected(), handler.SweepReservations)
	reservation.Patch("/:reservationId/status", middleware.Protected(), validate.UpdateReservationStatus("reservationId"), handler.UpdateReservationStatus)
	reservation.Put("/:reservationId", middleware.Protected(), validate.UpdateReservation("reservationId"), handler.UpdateReservation)
	reservation.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteReservations)

	space := v1.Group("/spaces", logger.New())
	space.Get("/", middleware.Protected(), handler.GetSpaces)
	space.Post("/", middleware.Protected(), validate.CreateSpace(), handler.CreateSpace)
	space.Put("/:spaceId", middleware.Protected(), validate.UpdateSpace("spaceId"), handler.UpdateSpace)
	space.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteSpaces)
	space.Delete("/:spaceId/image", middleware.Protected(), validate.GetById("spaceId"), handler.DeleteSpaceImage)

	user := v1.Group("/users", logger.New())
	user.Get("/", middleware.Protected(), handler.GetUsers)
	user.Post("/", middleware.Protected(), validate.CreateUser(), handler.CreateUser)
	user.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	user.Put("/:userId", middleware.Protected(), validate.UpdateUser("userId"), handler.UpdateUser)
	user.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteUsers)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	// Flux temps réel du tableau de bord
	v1.Get("/ws/reservations", middleware.Protected(), websocket.New(handler.ReservationFeed))

	// Prestataire de paiement
	app.Post("/payments", validate.CreatePayment(), handler.CreatePayment)
	app.Get("/payments/return", handler.PaymentReturn)
	app.Post("/payments/notify", handler.PaymentNotify)
}
