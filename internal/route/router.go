package router

import (
	"github.com/gofiber/fiber/v2"

	bookinghandler "movie-booking-service/internal/module/booking/handler"
	passhandler "movie-booking-service/internal/module/pass/handler"
	showhandler "movie-booking-service/internal/module/show/handler"
	wallethandler "movie-booking-service/internal/module/wallet/handler"
	"movie-booking-service/internal/pkg/middleware"
)

func Initialize(
	app *fiber.App,
	handlerBooking *bookinghandler.BookingHandler,
	handlerShow *showhandler.ShowHandler,
	handlerWallet *wallethandler.WalletHandler,
	handlerPass *passhandler.PassHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1")

	// seat map is public, everything else needs a valid token
	v1.Get("/shows/:show_id/seats", handlerShow.SeatMap)
	v1.Post("/shows", m.ValidateToken, handlerShow.CreateShow)
	v1.Post("/shows/seats/select", m.ValidateToken, handlerShow.SelectSeats)

	v1.Get("/bookings", m.ValidateToken, handlerBooking.ShowBookings)
	v1.Post("/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Post("/bookings/cancel", m.ValidateToken, handlerBooking.CancelBooking)

	v1.Get("/wallet/balance", m.ValidateToken, handlerWallet.Balance)
	v1.Get("/wallet/transactions", m.ValidateToken, handlerWallet.Transactions)
	v1.Post("/wallet/topup", m.ValidateToken, handlerWallet.TopUp)
	v1.Post("/wallet/redeem", m.ValidateToken, handlerWallet.RedeemLoyaltyPoints)

	v1.Get("/movie-pass", m.ValidateToken, handlerPass.Status)
	v1.Post("/movie-pass", m.ValidateToken, handlerPass.Purchase)

	// service-to-service routes, the payment gateway posts its callback here
	private := Api.Group("/private")
	private.Post("/payment/callback", handlerBooking.PaymentCallback)

	return app

}
