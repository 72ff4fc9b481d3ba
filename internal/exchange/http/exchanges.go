package http

import (
	"errors"
	"net/http"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/service"
	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/astromitts/gifterator3000/pkg/httpx"
)

type ExchangesHandler struct {
	ExchangeService *service.ExchangeService
}

// HandleCreate creates a new exchange.
//
//	@Summary		Create exchange
//	@Description	Registers a new gift exchange. Titles are unique. Assignments start unlocked.
//	@Tags			Exchanges
//	@Accept			json
//	@Produce		json
//	@Param			request	body		exchangesdk.CreateExchangeRequest	true	"Exchange details"
//	@Success		201		{object}	exchangesdk.ExchangeResponse
//	@Failure		400		{object}	exchangesdk.ErrorResponse	"Validation error"
//	@Failure		409		{object}	exchangesdk.ErrorResponse	"Title already taken"
//	@Failure		429		{object}	exchangesdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/exchanges [post]
func (h *ExchangesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req exchangesdk.CreateExchangeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	e, err := h.ExchangeService.CreateExchange(r.Context(), req.Title, domain.ExchangeDetails{
		Date:          parseDate(req.Date),
		Location:      req.Location,
		Description:   req.Description,
		SpendingLimit: req.SpendingLimit,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toExchangeResponse(e))
}

// HandleList lists all exchanges, or the one matching ?title=.
//
//	@Summary		List exchanges
//	@Description	Returns every exchange in creation order. With title set, returns at most the one exchange with that exact title.
//	@Tags			Exchanges
//	@Produce		json
//	@Param			title	query		string	false	"Exact exchange title"
//	@Success		200		{object}	exchangesdk.ListExchangesResponse
//	@Failure		500		{object}	exchangesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/exchanges [get]
func (h *ExchangesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		exchanges []domain.Exchange
		err       error
	)
	if title := r.URL.Query().Get("title"); title != "" {
		var e domain.Exchange
		e, err = h.ExchangeService.FindExchangeByTitle(ctx, title)
		switch {
		case err == nil:
			exchanges = []domain.Exchange{e}
		case errors.Is(err, service.ErrExchangeNotFound):
			err = nil
		}
	} else {
		exchanges, err = h.ExchangeService.ListExchanges(ctx)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := exchangesdk.ListExchangesResponse{
		Exchanges: make([]exchangesdk.ExchangeResponse, len(exchanges)),
	}
	for i, e := range exchanges {
		resp.Exchanges[i] = toExchangeResponse(e)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet returns one exchange.
//
//	@Summary	Get exchange
//	@Tags		Exchanges
//	@Produce	json
//	@Param		id	path		string	true	"Exchange ID"
//	@Success	200	{object}	exchangesdk.ExchangeResponse
//	@Failure	404	{object}	exchangesdk.ErrorResponse	"Exchange not found"
//	@Router		/v1/exchanges/{id} [get]
func (h *ExchangesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	e, err := h.ExchangeService.GetExchange(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExchangeResponse(e))
}

// HandleUpdate patches the organizer-editable details of an exchange.
//
//	@Summary		Update exchange
//	@Description	Changes date, location, description or spending limit. Omitted fields keep their value; an empty date clears it.
//	@Tags			Exchanges
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Exchange ID"
//	@Param			request	body		exchangesdk.UpdateExchangeRequest	true	"Changed fields"
//	@Success		200		{object}	exchangesdk.ExchangeResponse
//	@Failure		400		{object}	exchangesdk.ErrorResponse	"Validation error"
//	@Failure		404		{object}	exchangesdk.ErrorResponse	"Exchange not found"
//	@Router			/v1/exchanges/{id} [patch]
func (h *ExchangesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req exchangesdk.UpdateExchangeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	u := domain.ExchangeUpdate{
		Location:      req.Location,
		Description:   req.Description,
		SpendingLimit: req.SpendingLimit,
	}
	if req.Date != nil {
		u.Date = parseDate(*req.Date)
		u.ClearDate = u.Date == nil
	}

	updated, err := h.ExchangeService.UpdateExchangeDetails(r.Context(), r.PathValue("id"), u)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toExchangeResponse(updated))
}
