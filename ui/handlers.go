package ui

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bikerental/domain/core"
	"bikerental/domain/rental"
)

func (s *Server) handleSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.snap.Summarize())
}

func (s *Server) handleOverview(c *gin.Context) {
	overview, err := s.snap.ComputeOverview(c.Request.Context(), s.monthlyOptions(c))
	if err != nil {
		s.logger.Error("overview computation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (s *Server) handleDaily(c *gin.Context) {
	totals := s.snap.Daily()
	c.JSON(http.StatusOK, gin.H{"rows": totals, "count": len(totals)})
}

func (s *Server) handleMonthly(c *gin.Context) {
	totals := s.snap.Monthly(s.monthlyOptions(c))
	c.JSON(http.StatusOK, gin.H{"rows": totals, "count": len(totals)})
}

func (s *Server) handleWeekly(c *gin.Context) {
	totals := s.snap.Weekly()
	c.JSON(http.StatusOK, gin.H{"rows": totals, "count": len(totals)})
}

func (s *Server) handleHourly(c *gin.Context) {
	means := s.snap.Hourly()
	c.JSON(http.StatusOK, gin.H{"rows": means, "count": len(means)})
}

func (s *Server) handleDay(c *gin.Context) {
	day, ok := s.intParam(c, "day")
	if !ok {
		return
	}
	month, ok := s.intParam(c, "month")
	if !ok {
		return
	}
	year, ok := s.intParam(c, "year")
	if !ok {
		return
	}

	rows, err := s.snap.Day(day, month, year)
	if err != nil {
		s.renderDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": len(rows)})
}

func (s *Server) handleMonth(c *gin.Context) {
	month, ok := s.intParam(c, "month")
	if !ok {
		return
	}
	year, ok := s.intParam(c, "year")
	if !ok {
		return
	}

	rows, err := s.snap.Month(month, year)
	if err != nil {
		s.renderDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": len(rows)})
}

func (s *Server) handleSeasons(c *gin.Context) {
	totals := s.snap.SeasonTotals()
	c.JSON(http.StatusOK, gin.H{"rows": totals, "count": len(totals)})
}

func (s *Server) handleClimate(c *gin.Context) {
	months := s.snap.ClimateMonthly()
	c.JSON(http.StatusOK, gin.H{"rows": months, "count": len(months)})
}

// monthlyOptions resolves the merge behavior: the configured default,
// overridable per request with ?merge=true|false.
func (s *Server) monthlyOptions(c *gin.Context) rental.MonthlyOptions {
	merge := s.config.Data.MergeMonthsAcrossYears
	if raw := c.Query("merge"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			merge = parsed
		}
	}
	return rental.MonthlyOptions{MergeAcrossYears: merge}
}

// intParam reads a required integer query parameter, responding 400 and
// returning false when it is missing or malformed.
func (s *Server) intParam(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: " + name})
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameter: " + name})
		return 0, false
	}
	return value, true
}

func (s *Server) renderDomainError(c *gin.Context, err error) {
	if core.IsInvalidCalendarTarget(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.logger.Error("view computation failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "view computation failed"})
}
