package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushabh0311/LeadGenPro/mailer"
	"github.com/rushabh0311/LeadGenPro/search"
	"github.com/rushabh0311/LeadGenPro/store"
)

// Server bundles the read-only application state the handlers need. It is
// built once at startup and shared by every request.
type Server struct {
	store      *store.Store
	router     *search.Router
	dispatcher *mailer.Dispatcher
}

// NewServer wires the handlers to the startup-built state.
func NewServer(s *store.Store, r *search.Router, d *mailer.Dispatcher) *Server {
	return &Server{store: s, router: r, dispatcher: d}
}

// SetupRoutes registers the API surface on the gin engine.
func (s *Server) SetupRoutes(r *gin.Engine) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", healthCheck)
		apiGroup.GET("/dashboard", s.dashboardHandler)
		apiGroup.GET("/leads", s.leadsHandler)
		apiGroup.GET("/leads/export", s.exportHandler)
		apiGroup.GET("/leads/cold-email", s.coldEmailHandler)
		apiGroup.POST("/chat", s.chatHandler)
		apiGroup.POST("/email/send", s.sendEmailHandler)
		apiGroup.POST("/contact", s.contactHandler)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
