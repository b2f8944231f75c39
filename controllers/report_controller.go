package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gustavogalazzo/YummyGo/pkg/resp"
	"github.com/gustavogalazzo/YummyGo/services"
	"github.com/gustavogalazzo/YummyGo/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct{ Svc *services.ReportService }

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{Svc: s}
}

// dateRange reads ?from=2026-01-01&to=2026-01-31, defaulting to the last
// 30 days.
func dateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if s := c.Query("from"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, errors.New("invalid from date, want YYYY-MM-DD")
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return from, to, errors.New("invalid to date, want YYYY-MM-DD")
		}
		// inclusive end of day
		to = t.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, nil
}

// GET /owner/restaurants/:id/reports/sales
func (h *ReportController) Sales(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	from, to, err := dateRange(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Sales(uid, uint(restID), from, to)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "not your restaurant")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /owner/restaurants/:id/reports/quality
func (h *ReportController) Quality(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	restID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	from, to, err := dateRange(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Quality(uid, uint(restID), from, to)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "not your restaurant")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
