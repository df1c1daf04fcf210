package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "homestay/internal/delivery/context"
	"homestay/internal/delivery/http/response"
	"homestay/internal/domain/entity"
	"homestay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-account linking handlers.
type PaymentHandler struct {
	uc     usecase.ViewerUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.ViewerUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

// ConnectStripe links a Stripe connected account to the resolved viewer.
func (h *PaymentHandler) ConnectStripe(c echo.Context) error {
	var input *usecase.ConnectWalletInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connect input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	input.ViewerID = deliverycontext.GetViewerID(c)

	output, err := h.uc.ConnectWallet(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entity.NewViewer(output.User), "Payment account connected")
}

// DisconnectStripe unlinks the viewer's Stripe connected account.
func (h *PaymentHandler) DisconnectStripe(c echo.Context) error {
	input := &usecase.DisconnectWalletInput{
		ViewerID: deliverycontext.GetViewerID(c),
	}

	output, err := h.uc.DisconnectWallet(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entity.NewViewer(output.User), "Payment account disconnected")
}
