package api

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rushabh0311/LeadGenPro/mailer"
	"github.com/rushabh0311/LeadGenPro/models"
	"github.com/rushabh0311/LeadGenPro/search"
	"github.com/rushabh0311/LeadGenPro/store"
)

// filterFromQuery maps the dashboard's filter query params onto a store
// filter. `location` and `stage` repeat; `hiring` is Yes/No/All; `tech`
// is a substring search.
func filterFromQuery(c *gin.Context) store.Filter {
	return store.Filter{
		Locations: c.QueryArray("location"),
		Stages:    c.QueryArray("stage"),
		Hiring:    c.Query("hiring"),
		Tech:      c.Query("tech"),
	}
}

func (s *Server) dashboardHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.DashboardResponse{
		TotalLeads:    s.store.Len(),
		HiringLeads:   s.store.HiringCount(),
		AvgLeadScore:  math.Round(s.store.AvgScore()*100) / 100,
		Locations:     s.store.Locations(),
		FundingStages: s.store.Stages(),
	})
}

func (s *Server) leadsHandler(c *gin.Context) {
	leads := s.store.Apply(filterFromQuery(c))
	if leads == nil {
		leads = []models.Lead{}
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

func (s *Server) exportHandler(c *gin.Context) {
	leads := s.store.Apply(filterFromQuery(c))
	data, err := store.ExportCSV(leads)
	if err != nil {
		log.Printf("[export] CSV render failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render CSV"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="filtered_leads.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (s *Server) coldEmailHandler(c *gin.Context) {
	leads := s.store.Apply(filterFromQuery(c))
	if len(leads) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no leads found for selected filters"})
		return
	}
	top := leads[0]
	c.JSON(http.StatusOK, gin.H{
		"company_name": top.CompanyName,
		"email":        mailer.ColdEmail(top),
	})
}

func (s *Server) chatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.BindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	result, err := s.router.Route(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		log.Printf("[chat] routing failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "semantic search is unavailable", "detail": err.Error()})
		return
	}

	resp := models.ChatResponse{}
	switch result.Kind {
	case search.ExactFilterQuery:
		resp.Branch = "funding_filter"
		resp.MinMillions = result.MinMillions
		resp.Leads = result.Leads
		if result.NoResults {
			resp.Message = fmt.Sprintf("No companies found with funding above $%gM.", result.MinMillions)
		}
	case search.SemanticQuery:
		resp.Branch = "semantic"
		resp.Matches = result.Matches
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) sendEmailHandler(c *gin.Context) {
	var req models.SendEmailRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.CompanyName) == "" || strings.TrimSpace(req.YourEmail) == "" || req.YourPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company_name, your_email and your_password are required"})
		return
	}
	if req.Mode == "" {
		req.Mode = "default"
	}

	outcome := s.dispatcher.Dispatch(mailer.Request{
		CompanyName:   req.CompanyName,
		SenderName:    req.YourName,
		SenderEmail:   req.YourEmail,
		Password:      req.YourPassword,
		Mode:          req.Mode,
		CustomMessage: req.CustomMessage,
	})

	switch outcome.Status {
	case mailer.StatusNotFound:
		c.JSON(http.StatusNotFound, models.SendEmailResponse{
			Status: outcome.Status,
			Error:  "company not found, please check the name",
		})
	case mailer.StatusMessageRequired:
		c.JSON(http.StatusBadRequest, models.SendEmailResponse{
			Status: outcome.Status,
			Error:  "please write a custom message before sending",
		})
	case mailer.StatusRelayError:
		c.JSON(http.StatusBadGateway, models.SendEmailResponse{
			Status: outcome.Status,
			Error:  outcome.Err.Error(),
		})
	default:
		c.JSON(http.StatusOK, models.SendEmailResponse{
			Status:    outcome.Status,
			Recipient: outcome.Recipient,
		})
	}
}

// contactHandler validates the contact form and acknowledges it.
// Submissions are intentionally not persisted anywhere.
func (s *Server) contactHandler(c *gin.Context) {
	var req models.ContactRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please fill out all fields"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "received", "message": "Thank you for contacting us! We'll get back to you soon."})
}
