package report

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"jobvibe/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Summary counts users by role, jobs by status and applications by
// status created within the optional range.
// @Summary		Report summary
// @Tags		Reports
// @Security	BearerAuth
// @Param		from	query	string	false	"YYYY-MM-DD or RFC3339"
// @Param		to		query	string	false	"YYYY-MM-DD or RFC3339"
// @Router		/reports/summary [get]
func (h *Handler) Summary(c *gin.Context) {
	rg, err := ParseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	sum, err := h.service.Summary(c.Request.Context(), rg)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, "Report generated successfully", sum)
}

// Generate returns one report type as JSON records. The range comes from
// the body, falling back to the query string.
func (h *Handler) Generate(t Type) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RangeRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				response.Error(c, http.StatusBadRequest, "Invalid request body")
				return
			}
		} else {
			req = RangeRequest{From: c.Query("from"), To: c.Query("to")}
		}

		rg, err := ParseRange(req.From, req.To)
		if err != nil {
			response.Fail(c, err)
			return
		}
		table, err := h.service.Table(c.Request.Context(), t, rg)
		if err != nil {
			response.Fail(c, err)
			return
		}
		records := table.Records()
		response.OK(c, "Report generated successfully", gin.H{
			"type":  t,
			"range": rg,
			"total": len(records),
			"rows":  records,
		})
	}
}

// Export streams a report as CSV.
// @Summary		Export report
// @Tags		Reports
// @Security	BearerAuth
// @Produce		text/csv
// @Param		type	path	string	true	"users | jobs | applications"
// @Router		/reports/export/{type} [get]
func (h *Handler) Export(c *gin.Context) {
	t, err := ParseType(c.Param("type"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	rg, err := ParseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	table, err := h.service.Table(c.Request.Context(), t, rg)
	if err != nil {
		response.Fail(c, err)
		return
	}

	name := fmt.Sprintf("%s-%s.csv", t, time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)
	if err := WriteCSV(c.Writer, table); err != nil {
		slog.Error("csv export failed", "type", t, "error", err)
	}
}
