package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quantrlabs/hedgecalc/dv01"
	"github.com/quantrlabs/hedgecalc/market"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Pair":     s.cfg.Data.Pair,
		"Units":    s.cfg.Position.Units,
		"Duration": s.cfg.Position.Duration,
	})
}

// handleSeries returns the price history with the per-day hedge table for
// the configured position, newest tail first trimmed by ?tail=N.
func (s *Server) handleSeries(c *gin.Context) {
	bars, err := s.source.Bars(s.cfg.Data.Pair, time.Time{}, time.Time{})
	if err != nil {
		s.log.Error().Err(err).Msg("load series")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "series unavailable"})
		return
	}
	if len(bars) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no data imported for pair " + s.cfg.Data.Pair})
		return
	}

	if tailStr := c.Query("tail"); tailStr != "" {
		n, err := strconv.Atoi(tailStr)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "tail must be a positive integer"})
			return
		}
		bars = bars.Tail(n)
	}

	contract := dv01.Contract{
		CTDDV01:          s.cfg.Contract.CTDDV01,
		ConversionFactor: s.cfg.Contract.ConversionFactor,
	}
	rows, err := market.BuildDV01Table(bars, s.cfg.Position.Units, contract)
	if err != nil {
		s.log.Error().Err(err).Msg("build dv01 table")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "metrics unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pair": s.cfg.Data.Pair, "rows": rows})
}

// handleHedge is the what-if calculator: price and units are required,
// duration/ctd_dv01/conversion_factor fall back to the configured
// conventions. Constraint violations come back as 400s; the response body
// never carries NaN or infinities.
func (s *Server) handleHedge(c *gin.Context) {
	price, err := queryFloat(c, "price", 0)
	if err != nil || price == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price is required and must be a number"})
		return
	}
	unitsStr := c.DefaultQuery("units", strconv.FormatInt(s.cfg.Position.Units, 10))
	units, err := strconv.ParseInt(unitsStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "units must be an integer"})
		return
	}
	duration, err := queryFloat(c, "duration", s.cfg.Position.Duration)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a number"})
		return
	}
	ctd, err := queryFloat(c, "ctd_dv01", s.cfg.Contract.CTDDV01)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ctd_dv01 must be a number"})
		return
	}
	cf, err := queryFloat(c, "conversion_factor", s.cfg.Contract.ConversionFactor)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conversion_factor must be a number"})
		return
	}

	m, err := dv01.Compute(
		dv01.Position{Price: price, Units: units, Duration: duration},
		dv01.Contract{CTDDV01: ctd, ConversionFactor: cf},
	)
	if err != nil {
		if errors.Is(err, dv01.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.log.Error().Err(err).Msg("compute hedge")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "calculation failed"})
		return
	}

	c.JSON(http.StatusOK, m)
}

func queryFloat(c *gin.Context, name string, fallback float64) (float64, error) {
	v := c.Query(name)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}
