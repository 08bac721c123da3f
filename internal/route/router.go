package router

import (
	adminhandler "callbooking-service/internal/module/admin/handler"
	bookinghandler "callbooking-service/internal/module/booking/handler"
	paymenthandler "callbooking-service/internal/module/payment/handler"
	slothandler "callbooking-service/internal/module/slot/handler"
	userhandler "callbooking-service/internal/module/user/handler"
	"callbooking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerUser *userhandler.UserHandler,
	handlerSlot *slothandler.SlotHandler,
	handlerBooking *bookinghandler.BookingHandler,
	handlerPayment *paymenthandler.PaymentHandler,
	handlerAdmin *adminhandler.AdminHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	// provider webhook, authenticated by signature instead of a token
	Api.Post("/webhook/payment", handlerPayment.HandleWebhook)

	v1 := Api.Group("/v1")

	// public routes
	v1.Post("/auth/register", handlerUser.Register)
	v1.Post("/auth/login", handlerUser.Login)
	v1.Get("/auth/google", handlerUser.GoogleRedirect)
	v1.Get("/auth/google/callback", handlerUser.GoogleCallback)
	v1.Post("/auth/sms/send", handlerUser.SendSmsCode)
	v1.Post("/auth/sms/verify", handlerUser.VerifySmsCode)
	v1.Get("/slots", handlerSlot.ListAvailableSlots)

	// authenticated routes
	v1.Get("/profile", m.ValidateToken, handlerUser.GetProfile)
	v1.Put("/profile", m.ValidateToken, handlerUser.UpdateProfile)
	v1.Post("/profile/verification", m.ValidateToken, handlerUser.SubmitVerification)

	v1.Post("/slots", m.ValidateToken, m.InfluencerOnly, handlerSlot.CreateSlot)
	v1.Put("/slots/:id", m.ValidateToken, m.InfluencerOnly, handlerSlot.UpdateSlot)
	v1.Delete("/slots/:id", m.ValidateToken, m.InfluencerOnly, handlerSlot.CancelSlot)
	v1.Get("/slots/mine", m.ValidateToken, m.InfluencerOnly, handlerSlot.ListMySlots)

	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Post("/book", m.ValidateToken, handlerBooking.BookSlot)
	v1.Post("/payment/intent", m.ValidateToken, handlerBooking.CreatePaymentIntent)

	// admin routes
	admin := v1.Group("/admin", m.ValidateToken, m.AdminOnly)
	admin.Get("/bookings", handlerAdmin.ListBookings)
	admin.Put("/influencers/:id/commission", handlerAdmin.SetCommission)
	admin.Get("/verifications", handlerAdmin.ListPendingVerifications)
	admin.Put("/verifications/:id", handlerAdmin.ReviewVerification)
	admin.Post("/bookings/:id/refund", handlerBooking.RefundBooking)
	admin.Get("/analytics", handlerAdmin.AnalyticsSummary)

	return app
}
