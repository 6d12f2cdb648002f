// Package service exposes sales, quotes and purchase attempts over HTTP.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/adiboy-23/fun-pump/pkg/app/errors"
	apphttp "github.com/adiboy-23/fun-pump/pkg/app/http"
	"github.com/adiboy-23/fun-pump/pkg/config"
	"github.com/adiboy-23/fun-pump/pkg/market"
	"github.com/adiboy-23/fun-pump/pkg/sale"
	"github.com/adiboy-23/fun-pump/pkg/trade"
)

const maxBodyBytes = 1 << 16

// Market serves sale views and quotes.
//
//go:generate mockery --name Market --output mocks --outpkg mocks --filename mock_market.go --with-expecter
type Market interface {
	Listing(ctx context.Context) ([]market.SaleView, error)
	Sale(ctx context.Context, id sale.TokenID) (market.SaleView, error)
	Quote(ctx context.Context, id sale.TokenID, amountUnits uint64) (sale.Quote, error)
}

// Network is the wallet connection surface.
//
//go:generate mockery --name Network --output mocks --outpkg mocks --filename mock_network.go --with-expecter
type Network interface {
	Connect(ctx context.Context) (common.Address, error)
	CurrentNetwork(ctx context.Context) (uint64, error)
	SwitchToExpectedNetwork(ctx context.Context, chainID uint64) error
	Registry() *config.ChainRegistry
}

// HTTP wraps the trade, market and network services to provide HTTP endpoints
type HTTP struct {
	trades  trade.Service
	market  Market
	network Network
	logger  *zap.Logger
}

// RegisterRoutes registers the /api/v1 endpoints on r. Routes that change state
// are wrapped with authn when it is non-nil.
func RegisterRoutes(
	r chi.Router,
	trades trade.Service,
	sales Market,
	network Network,
	authn func(http.Handler) http.Handler,
	logger *zap.Logger,
) {
	h := &HTTP{
		trades:  trades,
		market:  sales,
		network: network,
		logger:  logger,
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sales", apphttp.HandleError(h.listSales))
		r.Get("/sales/{id}", apphttp.HandleError(h.getSale))
		r.Get("/sales/{id}/quote", apphttp.HandleError(h.quote))
		r.Get("/attempts", apphttp.HandleError(h.history))
		r.Get("/attempts/{id}", apphttp.HandleError(h.attemptStatus))
		r.Get("/network", apphttp.HandleError(h.currentNetwork))

		r.Group(func(r chi.Router) {
			if authn != nil {
				r.Use(authn)
			}
			r.Post("/sales/{id}/purchases", apphttp.HandleError(h.submit))
			r.Post("/wallet/connect", apphttp.HandleError(h.connect))
			r.Post("/network/switch", apphttp.HandleError(h.switchNetwork))
		})
	})
}

func (h *HTTP) listSales(w http.ResponseWriter, r *http.Request) error {
	views, err := h.market.Listing(r.Context())
	if err != nil {
		return h.toServiceError(err)
	}
	out := make([]SaleResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewSaleResponse(v))
	}
	return apphttp.WriteJSON(w, http.StatusOK, out)
}

func (h *HTTP) getSale(w http.ResponseWriter, r *http.Request) error {
	id, err := tokenIDParam(r)
	if err != nil {
		return err
	}
	v, err := h.market.Sale(r.Context(), id)
	if err != nil {
		return h.toServiceError(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, NewSaleResponse(v))
}

func (h *HTTP) quote(w http.ResponseWriter, r *http.Request) error {
	id, err := tokenIDParam(r)
	if err != nil {
		return err
	}
	req, err := sale.ParsePurchaseRequest(r.URL.Query().Get("amount"))
	if err != nil {
		return h.toServiceError(err)
	}
	q, err := h.market.Quote(r.Context(), id, req.AmountUnits)
	if err != nil {
		return h.toServiceError(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, NewQuoteResponse(q))
}

func (h *HTTP) submit(w http.ResponseWriter, r *http.Request) error {
	id, err := tokenIDParam(r)
	if err != nil {
		return err
	}

	var req SubmitRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}

	attemptID, err := h.trades.Submit(r.Context(), id, req.Amount)
	if err != nil {
		return h.toServiceError(err)
	}
	return apphttp.WriteJSON(w, http.StatusAccepted, &SubmitResponse{AttemptID: attemptID})
}

func (h *HTTP) attemptStatus(w http.ResponseWriter, r *http.Request) error {
	id := chi.URLParam(r, "id")

	var (
		a   *trade.Attempt
		err error
	)
	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		a, err = h.trades.Wait(r.Context(), id)
	} else {
		a, err = h.trades.AttemptStatus(r.Context(), id)
	}
	if err != nil {
		return h.toServiceError(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, NewAttemptResponse(a))
}

func (h *HTTP) history(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	id, err := sale.ParseTokenID(q.Get("token"))
	if err != nil {
		return apperrors.BadRequestError(err, "token query parameter must be a sale index")
	}
	limit := 0
	if s := q.Get("limit"); s != "" {
		if limit, err = strconv.Atoi(s); err != nil || limit < 0 {
			return apperrors.BadRequestError(err, "limit must be a non-negative integer")
		}
	}

	attempts, err := h.trades.History(r.Context(), id, limit)
	if err != nil {
		return h.toServiceError(err)
	}
	out := make([]AttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, NewAttemptResponse(a))
	}
	return apphttp.WriteJSON(w, http.StatusOK, out)
}

func (h *HTTP) connect(w http.ResponseWriter, r *http.Request) error {
	account, err := h.network.Connect(r.Context())
	if err != nil {
		return h.toServiceError(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, &ConnectResponse{Account: account.Hex()})
}

func (h *HTTP) currentNetwork(w http.ResponseWriter, r *http.Request) error {
	registry := h.network.Registry()
	expected := registry.ExpectedNetwork()

	chainID, err := h.network.CurrentNetwork(r.Context())
	if err != nil {
		return h.toServiceError(err)
	}
	_, supported := registry.Lookup(chainID)

	return apphttp.WriteJSON(w, http.StatusOK, &NetworkResponse{
		ChainID:         chainID,
		Supported:       supported,
		ExpectedChainID: expected.ChainID,
		ExpectedName:    expected.Name,
	})
}

func (h *HTTP) switchNetwork(w http.ResponseWriter, r *http.Request) error {
	var req SwitchRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			return err
		}
	}
	chainID := req.ChainID
	if chainID == 0 {
		chainID = h.network.Registry().ExpectedNetwork().ChainID
	}

	if err := h.network.SwitchToExpectedNetwork(r.Context(), chainID); err != nil {
		return h.toServiceError(err)
	}
	return apphttp.WriteJSON(w, http.StatusOK, &SwitchResponse{ChainID: chainID})
}

func tokenIDParam(r *http.Request) (sale.TokenID, error) {
	id, err := sale.ParseTokenID(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperrors.BadRequestError(err, "sale id must be a non-negative integer")
	}
	return id, nil
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}
	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	return nil
}

// toServiceError maps sale and trade failures to API error categories.
func (h *HTTP) toServiceError(err error) error {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return err
	}
	if errors.Is(err, trade.ErrAttemptNotFound) {
		return apperrors.ResourceNotFoundError(err, "attempt not found")
	}

	code := sale.CodeOf(err)
	msg := err.Error()
	var se *sale.Error
	if errors.As(err, &se) && sale.ClassOf(err) != sale.ClassChain {
		msg = se.Msg
	}

	switch sale.ClassOf(err) {
	case sale.ClassInput:
		if errors.Is(err, sale.ErrAttemptInProgress) || errors.Is(err, sale.ErrSaleClosed) {
			return apperrors.WithCode(apperrors.ConflictError(err, msg), code)
		}
		return apperrors.WithCode(apperrors.BadRequestError(err, msg), code)
	case sale.ClassConnectivity:
		switch {
		case errors.Is(err, sale.ErrUnsupportedChain):
			// the wrapped message names the chain to switch to
			return apperrors.WithCode(apperrors.NotSupportedError(err, err.Error()), code)
		case errors.Is(err, sale.ErrConnectInProgress):
			return apperrors.WithCode(apperrors.ConflictError(err, msg), code)
		}
		return apperrors.WithCode(apperrors.DependencyError(err, msg), code)
	case sale.ClassAuthorization:
		return apperrors.WithCode(apperrors.UnAuthorizedError(err, msg), code)
	case sale.ClassChain:
		h.logger.Error("Chain request failed", zap.String("error_code", code), zap.Error(err))
		if errors.Is(err, sale.ErrTransactionTimedOut) {
			return apperrors.WithCode(apperrors.TimeoutError(err, msg), code)
		}
		return apperrors.WithCode(apperrors.DependencyError(err, msg), code)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.TimeoutError(err, "request timed out")
	}
	h.logger.Error("Unexpected request failure", zap.Error(err))
	return apperrors.GeneralError(err)
}
