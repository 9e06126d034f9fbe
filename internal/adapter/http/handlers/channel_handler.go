package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ryft_bridge/internal/adapter/http/dto/request"
	"ryft_bridge/internal/adapter/http/dto/response"
	"ryft_bridge/internal/domain/entities"
	"ryft_bridge/internal/usecase"
	"ryft_bridge/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChannelHandler serves the named-call method channel.
type ChannelHandler struct {
	usecase usecase.IPaymentBridgeUseCase
	log     *zap.Logger
}

func NewChannelHandler(uc usecase.IPaymentBridgeUseCase, log *zap.Logger) *ChannelHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChannelHandler{usecase: uc, log: log.Named("channel")}
}

// Invoke dispatches one method call.
//
//	@Summary		Invoke a bridge method
//	@Description	Accepts the flat argument bag of a method channel call and replies with a Result Envelope.
//	@Tags			channel
//	@Accept			json
//	@Produce		json
//	@Param			method	path		string	true	"initialize, showDropIn, processCardPayment, processSavedPaymentMethod, processGooglePayPayment, processApplePayPayment or checkPaymentStatus"
//	@Param			args	body		object	false	"argument bag"
//	@Success		200		{object}	response.EnvelopeResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		409		{object}	pkg.HTTPError
//	@Failure		412		{object}	pkg.HTTPError
//	@Failure		501		{object}	response.NotImplementedResponse
//	@Failure		503		{object}	pkg.HTTPError
//	@Router			/channel/{method} [post]
func (h *ChannelHandler) Invoke(c *gin.Context) {
	method := c.Param("method")
	profile := h.usecase.Platform()

	var completion *usecase.Completion
	switch entities.Operation(method) {
	case entities.OperationInitialize:
		args, ok := h.arguments(c, profile)
		if !ok {
			return
		}
		key, err := request.DecodeInitialize(profile, args)
		if err == nil {
			err = h.usecase.Initialize(c.Request.Context(), key)
		}
		if err != nil {
			h.fail(c, profile, err)
			return
		}
		c.JSON(http.StatusOK, nil)
		return
	case entities.OperationShowDropIn:
		args, ok := h.arguments(c, profile)
		if !ok {
			return
		}
		cmd, err := request.DecodeShowDropIn(profile, args)
		if err == nil {
			completion, err = h.usecase.ShowDropIn(c.Request.Context(), cmd)
		}
		if err != nil {
			h.fail(c, profile, err)
			return
		}
	case entities.OperationProcessCardPayment:
		args, ok := h.arguments(c, profile)
		if !ok {
			return
		}
		cmd, err := request.DecodeCardPayment(profile, args)
		if err == nil {
			completion, err = h.usecase.ProcessCardPayment(c.Request.Context(), cmd)
		}
		if err != nil {
			h.fail(c, profile, err)
			return
		}
	case entities.OperationProcessSavedPaymentMethod:
		args, ok := h.arguments(c, profile)
		if !ok {
			return
		}
		cmd, err := request.DecodeSavedPayment(profile, args)
		if err == nil {
			completion, err = h.usecase.ProcessSavedPaymentMethod(c.Request.Context(), cmd)
		}
		if err != nil {
			h.fail(c, profile, err)
			return
		}
	case entities.OperationProcessGooglePayPayment, entities.OperationProcessApplePayPayment:
		wallet := entities.WalletGooglePay
		if entities.Operation(method) == entities.OperationProcessApplePayPayment {
			wallet = entities.WalletApplePay
		}
		// Unsupported wallets resolve whatever the arguments are.
		cmd := usecase.WalletPaymentCommand{Wallet: wallet}
		var err error
		if profile.SupportsDirectWallet(wallet) {
			args, ok := h.arguments(c, profile)
			if !ok {
				return
			}
			cmd, err = request.DecodeWalletPayment(profile, wallet, args)
		}
		if err == nil {
			completion, err = h.usecase.ProcessWalletPayment(c.Request.Context(), cmd)
		}
		if err != nil {
			h.fail(c, profile, err)
			return
		}
	case entities.OperationCheckPaymentStatus:
		args, ok := h.arguments(c, profile)
		if !ok {
			return
		}
		cmd, err := request.DecodeCheckPaymentStatus(profile, args)
		if err == nil {
			completion, err = h.usecase.CheckPaymentStatus(c.Request.Context(), cmd)
		}
		if err != nil {
			h.fail(c, profile, err)
			return
		}
	default:
		h.log.Info("method not implemented", zap.String("method", method))
		c.JSON(http.StatusNotImplemented, response.NotImplemented(method))
		return
	}

	env, err := completion.Wait(c.Request.Context())
	if err != nil {
		// The caller went away; the operation still resolves and is journaled.
		h.log.Warn("caller stopped waiting", zap.String("method", method), zap.String("token", completion.Token), zap.Error(err))
		return
	}
	c.Header("X-Request-Token", completion.Token)
	c.JSON(http.StatusOK, response.FromEnvelope(env))
}

func (h *ChannelHandler) fail(c *gin.Context, profile entities.PlatformProfile, err error) {
	appErr := mapBridgeError(profile, err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("call failed", zap.String("method", c.Param("method")), zap.Error(err))
	} else {
		h.log.Info("call rejected", zap.String("method", c.Param("method")), zap.String("code", appErr.Code))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// arguments reads the argument bag, answering the call itself when the body
// is not an object.
func (h *ChannelHandler) arguments(c *gin.Context, profile entities.PlatformProfile) (request.Arguments, bool) {
	args, err := readArguments(c)
	if err != nil {
		h.log.Warn("invalid argument bag", zap.String("method", c.Param("method")), zap.Error(err))
		h.fail(c, profile, request.InvalidArguments())
		return nil, false
	}
	return args, true
}

// readArguments accepts an empty body, null or a JSON object.
func readArguments(c *gin.Context) (request.Arguments, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return request.Arguments{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

func mapBridgeError(profile entities.PlatformProfile, err error) *pkg.AppError {
	var argErr *request.ArgumentError
	if errors.As(err, &argErr) {
		appErr := pkg.NewDomainErrorSimple(argErr.Code, argErr.Message, http.StatusBadRequest)
		if argErr.Field != "" {
			return appErr.WithDetails(map[string]string{"field": argErr.Field})
		}
		return appErr
	}

	switch {
	case errors.Is(err, entities.ErrMissingPublicAPIKey),
		errors.Is(err, usecase.ErrInvalidClientSecret),
		errors.Is(err, usecase.ErrInvalidPaymentSession),
		errors.Is(err, usecase.ErrDropInKeyMissing):
		return pkg.NewDomainError(profile.MissingArgCode, missingMessage(profile, err), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotInitialized):
		return pkg.NewDomainErrorSimple("NOT_INITIALIZED", "Payment bridge is not initialized", http.StatusPreconditionFailed)
	case errors.Is(err, usecase.ErrNoUIHost):
		return pkg.NewDomainErrorSimple(profile.NoHostCode, profile.NoHostMessage, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOperationInProgress):
		return pkg.NewDomainErrorSimple("OPERATION_IN_PROGRESS", "Another payment operation is still pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrVendorClient):
		return pkg.NewDomainError("VENDOR_CLIENT_ERROR", "Payment client could not be created", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrDropInPresentation):
		return pkg.NewDomainError("DROP_IN_ERROR", "Drop-in could not be presented", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func missingMessage(profile entities.PlatformProfile, err error) string {
	if errors.Is(err, entities.ErrMissingPublicAPIKey) && profile.InitializeMessage != "" {
		return profile.InitializeMessage
	}
	if profile.MissingArgMessage != "" {
		return profile.MissingArgMessage
	}
	return err.Error()
}
