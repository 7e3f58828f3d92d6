package http

import (
	"net/http"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterClient handles POST /api/v1/clients.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var req servers.RegisterClientJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	location, err := toGeoPoint(req.Location)
	if err != nil {
		return s.fail(ctx, err)
	}

	clientID := kernel.NewUUID()
	cmd, err := commands.NewRegisterClientCommand(clientID, req.Phone, req.Name, location)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.h.RegisterClient.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: clientID.Bytes()})
}

// GetClientLedger handles GET /api/v1/clients/:id/ledger.
func (s *Server) GetClientLedger(ctx echo.Context, id servers.ID, params servers.GetClientLedgerParams) error {
	clientID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid client id", err)
	}

	query, err := queries.NewGetClientLedgerQuery(clientID, limitOf(params.Limit))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.h.GetClientLedger.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, clientLedgerOf(result))
}

// PostLedgerEntry handles POST /api/v1/clients/:id/ledger - a manual balance adjustment.
func (s *Server) PostLedgerEntry(ctx echo.Context, id servers.ID) error {
	clientID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid client id", err)
	}

	var req servers.PostLedgerEntryJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	cmd, err := commands.NewPostLedgerEntryCommand(clientID, kernel.MoneyFromDecimal(req.Amount), req.Comment)
	if err != nil {
		return s.fail(ctx, err)
	}

	entry, err := s.h.PostLedgerEntry.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.PostedEntry{Entry: ledgerEntryOf(entry)})
}

// SettleClientDebt handles POST /api/v1/clients/:id/settle. The body is optional, and
// the answer has no entry when the client owed nothing.
func (s *Server) SettleClientDebt(ctx echo.Context, id servers.ID) error {
	clientID, err := domainID(id)
	if err != nil {
		return badRequest(ctx, "Invalid client id", err)
	}

	var req servers.SettleClientDebtJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	var comment string
	if req.Comment != nil {
		comment = *req.Comment
	}

	cmd, err := commands.NewSettleClientDebtCommand(clientID, comment)
	if err != nil {
		return s.fail(ctx, err)
	}

	entry, err := s.h.SettleClientDebt.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.PostedEntry{Entry: ledgerEntryOf(entry)})
}
