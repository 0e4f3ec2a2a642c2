package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	invoicedomain "github.com/acmeboard/acmeboard/internal/invoice/domain"
	"github.com/acmeboard/acmeboard/internal/viewcache"
	"github.com/gin-gonic/gin"
)

func (s *Server) ListInvoices(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	// The unfiltered first page is the view every mutation invalidates;
	// serve it from the cache between writes.
	cacheable := query == "" && page <= 1
	if cacheable {
		if payload, ok := s.views.Get(viewcache.InvoiceListPath); ok {
			c.Data(http.StatusOK, "application/json", payload)
			return
		}
	}

	items, err := s.invoiceSvc.Filtered(c.Request.Context(), query, page)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if cacheable {
		if payload, err := json.Marshal(gin.H{"data": items}); err == nil {
			s.views.Set(viewcache.InvoiceListPath, payload)
			c.Data(http.StatusOK, "application/json", payload)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) GetInvoicePages(c *gin.Context) {
	pages, err := s.invoiceSvc.Pages(c.Request.Context(), c.Query("query"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_pages": pages})
}

func (s *Server) GetLatestInvoices(c *gin.Context) {
	items, err := s.invoiceSvc.Latest(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (s *Server) GetInvoiceByID(c *gin.Context) {
	form, err := s.invoiceSvc.GetByID(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": form})
}

func (s *Server) CreateInvoice(c *gin.Context) {
	var input invoicedomain.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	fieldErrs, err := s.invoiceSvc.Create(c.Request.Context(), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"redirect": viewcache.InvoiceListPath})
}

func (s *Server) UpdateInvoice(c *gin.Context) {
	var input invoicedomain.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	fieldErrs, err := s.invoiceSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), input)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, fieldErrs)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redirect": viewcache.InvoiceListPath})
}

func (s *Server) DeleteInvoice(c *gin.Context) {
	if err := s.invoiceSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	// Every mutation ends back on the invoice list.
	c.JSON(http.StatusOK, gin.H{"redirect": viewcache.InvoiceListPath})
}
