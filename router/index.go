package router

import (
	"theatre_manager/handler"
	"theatre_manager/middleware"
	"theatre_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	// Scanners hit this straight from the QR code, outside the api prefix.
	app.Get("/tickets/verify/:ticketId", handler.VerifyTicketByLink)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)
	account.Post("/avatar", middleware.Protected(), handler.UploadAvatar)

	event := v1.Group("/events", logger.New())
	event.Get("/", handler.GetEvents)
	event.Get("/:slug", handler.GetEventBySlug)
	event.Post("/", middleware.Protected(), validate.AdminOnly(), validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:eventId", middleware.Protected(), validate.AdminOnly(), validate.EditEvent("eventId"), handler.EditEvent)
	event.Post("/:eventId/photos", middleware.Protected(), validate.AdminOnly(), validate.EventExists("eventId"), handler.UploadEventPhotos)
	event.Delete("/", middleware.Protected(), validate.AdminOnly(), validate.Delete(), handler.DeleteEvent)

	showtime := v1.Group("/showtime", logger.New())
	showtime.Get("/", handler.GetShowtimes)
	showtime.Get("/:showtimeId", validate.GetById("showtimeId"), handler.GetShowtimeById)
	showtime.Get("/:showtimeId/availability", validate.GetById("showtimeId"), handler.GetShowtimeAvailability)
	showtime.Get("/:showtimeId/live", websocket.New(handler.ShowtimeLive))
	showtime.Post("/", middleware.Protected(), validate.CreateShowtime(), handler.CreateShowtime)
	showtime.Put("/:showtimeId", middleware.Protected(), validate.EditShowtime("showtimeId"), handler.EditShowtime)
	showtime.Delete("/:showtimeId", middleware.Protected(), validate.DeleteShowtime("showtimeId"), handler.DeleteShowtime)

	v1.Post("/createbooking", middleware.Protected(), validate.CreateBooking(), handler.CreateBooking)
	v1.Get("/bookings", middleware.Protected(), handler.GetBookings)

	admin := v1.Group("/admin", logger.New())
	admin.Post("/createbooking", middleware.Protected(), validate.AdminOnly(), validate.CreateBooking(), handler.CreateBooking)
	admin.Get("/stats", middleware.Protected(), validate.AdminOnly(), handler.GetAdminStats)

	// Possession of a validly signed token is the authorization.
	v1.Post("/tickets/verify", validate.VerifyTicket(), handler.VerifyTicket)

	team := v1.Group("/team", logger.New())
	team.Get("/", handler.GetTeamMembers)
	team.Post("/", middleware.Protected(), validate.AdminOnly(), validate.CreateTeamMember(), handler.CreateTeamMember)
	team.Put("/:memberId", middleware.Protected(), validate.AdminOnly(), validate.GetById("memberId"), validate.EditTeamMember(), handler.EditTeamMember)
	team.Post("/:memberId/photo", middleware.Protected(), validate.AdminOnly(), validate.GetById("memberId"), handler.UploadTeamMemberPhoto)
	team.Delete("/", middleware.Protected(), validate.AdminOnly(), validate.Delete(), handler.DeleteTeamMember)

	publication := v1.Group("/publications", logger.New())
	publication.Get("/", handler.GetPublications)
	publication.Post("/", middleware.Protected(), validate.AdminOnly(), validate.CreatePublication(), handler.CreatePublication)
	publication.Put("/:publicationId", middleware.Protected(), validate.AdminOnly(), validate.GetById("publicationId"), validate.EditPublication(), handler.EditPublication)
	publication.Post("/:publicationId/photos", middleware.Protected(), validate.AdminOnly(), validate.GetById("publicationId"), handler.UploadPublicationPhotos)
	publication.Delete("/", middleware.Protected(), validate.AdminOnly(), validate.Delete(), handler.DeletePublication)
}
