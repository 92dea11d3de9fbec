package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/cryptolang/internal/apperr"
	"github.com/DjordjeVuckovic/cryptolang/internal/dto"
	"github.com/DjordjeVuckovic/cryptolang/internal/interpreter"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CryptoRouter struct {
	e      *echo.Echo
	interp *interpreter.Interpreter
}

func NewCryptoRouter(e *echo.Echo, interp *interpreter.Interpreter) *CryptoRouter {
	return &CryptoRouter{
		e:      e,
		interp: interp,
	}
}

func (r *CryptoRouter) Bind() {
	r.e.POST("/eval", r.evalHandler)
	r.e.POST("/detect", r.detectHandler)
	r.e.GET("/methods", r.methodsHandler)
}

func (r *CryptoRouter) evalHandler(c echo.Context) error {
	var req dto.EvalRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Source) == "" {
		return apperr.NewRequiredField("source")
	}

	id := uuid.New()

	result, err := r.interp.Eval(req.Source)
	if err != nil {
		slog.Debug("Statement rejected", "id", id, "error", err)
		return err
	}

	resp := dto.EvalResponse{
		ID:     id,
		Kind:   result.Command.Type(),
		Output: result.Output,
	}
	if result.Report != nil {
		resp.Report = dto.NewDetectResponse(id, result.Report)
	}

	return c.JSON(http.StatusOK, resp)
}

func (r *CryptoRouter) detectHandler(c echo.Context) error {
	var req dto.DetectRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.Text == "" {
		return apperr.NewRequiredField("text")
	}

	report := r.interp.Detect(req.Text)

	return c.JSON(http.StatusOK, dto.NewDetectResponse(uuid.New(), report))
}

func (r *CryptoRouter) methodsHandler(c echo.Context) error {
	ops := r.interp.Methods()

	resp := dto.MethodsResponse{Methods: make([]dto.MethodResponse, 0, len(ops))}
	for _, op := range ops {
		resp.Methods = append(resp.Methods, dto.MethodResponse{
			Method:      op.Method(),
			Description: op.Description(),
			KeyHint:     op.KeyHint(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}
