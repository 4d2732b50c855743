package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/dataset"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/economics"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/csvload"
)

// EconomicsHandler maneja los endpoints del reporte de unit economics.
type EconomicsHandler struct {
	uc *usecase.EconomicsUseCase
}

// NewEconomicsHandler construye el handler.
func NewEconomicsHandler(uc *usecase.EconomicsUseCase) *EconomicsHandler {
	return &EconomicsHandler{uc: uc}
}

// Report godoc
// @Summary      Reporte de unit economics desde archivos CSV
// @Description  Recibe hasta cuatro CSV (sales obligatorio; inventory, marketing y logistics opcionales) y devuelve el ledger conciliado, el agregado canal/mes y los KPIs globales. Las tablas opcionales ausentes degradan a ceros con aviso, nunca a error.
// @Tags         economics
// @Accept       multipart/form-data
// @Produce      json
// @Param        sales      formData  file  true   "Ventas: Order_ID, Order_Date, SKU, Channel, Units_Sold, Revenue, Customer_ID opcional"
// @Param        inventory  formData  file  false  "Inventario: SKU, Cost_Price (o COGS_per_Unit)"
// @Param        marketing  formData  file  false  "Marketing: Date, Channel, Spend"
// @Param        logistics  formData  file  false  "Logística: Order_ID, Fulfillment_Cost, Is_Return (o Return_Status)"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/economics/report [post]
func (h *EconomicsHandler) Report(c *fiber.Ctx) error {
	sales, err := h.tableFromForm(c, "sales")
	if err != nil {
		return badRequest(c, "INVALID_TABLE", "sales: "+err.Error())
	}
	if sales == nil {
		return badRequest(c, "MISSING_TABLE", "el archivo 'sales' es obligatorio")
	}

	in := economics.Inputs{Sales: sales}
	for name, dst := range map[string]**dataset.Table{
		"inventory": &in.Inventory,
		"marketing": &in.Marketing,
		"logistics": &in.Logistics,
	} {
		t, err := h.tableFromForm(c, name)
		if err != nil {
			return badRequest(c, "INVALID_TABLE", name+": "+err.Error())
		}
		*dst = t
	}

	return h.respond(c, in)
}

// ReportJSON godoc
// @Summary      Reporte de unit economics desde cuerpo JSON
// @Description  Variante del reporte para integraciones: las tablas llegan como arrays de objetos columna → celda en el cuerpo de la petición.
// @Tags         economics
// @Accept       json
// @Produce      json
// @Param        request  body  dto.ReportRequest  true  "Tablas de entrada"
// @Success      200  {object}  dto.ReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/economics/report/json [post]
func (h *EconomicsHandler) ReportJSON(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo JSON inválido")
	}
	if len(req.Sales) == 0 {
		return badRequest(c, "MISSING_TABLE", "la tabla 'sales' es obligatoria")
	}

	report, err := h.uc.ProcessRequest(c.Context(), req)
	if err != nil {
		return h.mapProcessError(c, err)
	}
	return c.JSON(report)
}

// tableFromForm decodifica un archivo del formulario. (nil, nil) si el campo
// no vino: las tablas opcionales pueden faltar.
func (h *EconomicsHandler) tableFromForm(c *fiber.Ctx, field string) (*dataset.Table, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return decodeUpload(fileHeader)
}

func decodeUpload(fh *multipart.FileHeader) (*dataset.Table, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return csvload.Decode(f)
}

func (h *EconomicsHandler) respond(c *fiber.Ctx, in economics.Inputs) error {
	report, err := h.uc.Process(c.Context(), in)
	if err != nil {
		return h.mapProcessError(c, err)
	}
	return c.JSON(report)
}

// mapProcessError traduce los errores del pipeline a HTTP. El esquema mínimo
// de ventas es el único rechazo esperado; lo demás es 500.
func (h *EconomicsHandler) mapProcessError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingColumn):
		return badRequest(c, "MISSING_COLUMN", err.Error())
	case errors.Is(err, domain.ErrInvalidCell), errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "INVALID_TABLE", err.Error())
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error interno procesando el reporte",
		})
	}
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: code, Message: message,
	})
}
