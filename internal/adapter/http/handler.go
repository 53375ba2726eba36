package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"ogvalley/internal/app/action"
	"ogvalley/internal/app/observe"
	"ogvalley/internal/app/persist"
	"ogvalley/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	ActionUC  action.UseCase
	ObserveUC observe.UseCase
	PersistUC persist.UseCase
	KPI       kpiSnapshotProvider
	Logger    logrus.FieldLogger
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/intents", h.intent)
	api.GET("/state", h.state)
	api.POST("/save", h.save)
	api.POST("/reset", h.reset)

	s.GET("/ops/kpi", h.kpi)
	s.GET("/health", h.health)
}

type intentRequest struct {
	Intent action.Intent `json:"intent"`
}

// intent applies one player intent and answers with its outcome plus the
// state the renderer should draw next.
func (h Handler) intent(c context.Context, ctx *app.RequestContext) {
	var body intentRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Execute(c, action.Request{Intent: body.Intent})
	if err != nil {
		h.fail(ctx, err)
		return
	}
	state, err := h.ObserveUC.Execute(c)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"result": resp,
		"state":  state,
	})
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ObserveUC.Execute(c)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	if err := h.PersistUC.Save(c); err != nil {
		h.fail(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"saved": true})
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	if err := h.PersistUC.Reset(c); err != nil {
		h.fail(ctx, err)
		return
	}
	h.state(c, ctx)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) health(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]string{"status": "ok"})
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (h Handler) fail(ctx *app.RequestContext, err error) {
	if status := writeError(ctx, err); status >= consts.StatusInternalServerError && h.Logger != nil {
		h.Logger.WithError(err).WithField("path", string(ctx.Path())).Error("request failed")
	}
}

func writeError(ctx *app.RequestContext, err error) int {
	switch {
	case errors.Is(err, action.ErrInvalidActionParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error())
		return consts.StatusBadRequest
	case errors.Is(err, action.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
		return consts.StatusBadRequest
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
		return consts.StatusNotFound
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
		return consts.StatusInternalServerError
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
