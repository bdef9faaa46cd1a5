package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/teamadmin/internal/common"
	"github.com/dmitrijs2005/teamadmin/internal/server/models"
	"github.com/dmitrijs2005/teamadmin/internal/server/services"
)

const (
	msgAdNotFound   = "Ad not found"
	msgUserNotFound = "User not found"
)

func (s *HTTPServer) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *HTTPServer) listAds(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	ads, err := s.moderation.PendingAds(c.Request.Context(), page)
	if err != nil {
		s.logger.Error(c.Request.Context(), "error fetching ads", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching ads"})
		return
	}
	if ads == nil {
		ads = []models.Ad{}
	}

	c.JSON(http.StatusOK, ads)
}

func (s *HTTPServer) verifyAd(c *gin.Context) {
	s.decideAd(c, s.moderation.VerifyAd, "Error verifying ad")
}

func (s *HTTPServer) rejectAd(c *gin.Context) {
	s.decideAd(c, s.moderation.RejectAd, "Error rejecting ad")
}

func (s *HTTPServer) decideAd(c *gin.Context, op func(context.Context, int64) (*models.Ad, error), failure string) {
	id, ok := parseID(c, msgAdNotFound)
	if !ok {
		return
	}

	ad, err := op(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, msgAdNotFound, failure)
		return
	}

	c.JSON(http.StatusOK, ad)
}

func (s *HTTPServer) listUsers(c *gin.Context) {
	page, ok := parsePage(c)
	if !ok {
		return
	}

	users, err := s.moderation.PendingUsers(c.Request.Context(), page)
	if err != nil {
		s.logger.Error(c.Request.Context(), "error fetching users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching users"})
		return
	}
	if users == nil {
		users = []models.User{}
	}

	c.JSON(http.StatusOK, users)
}

func (s *HTTPServer) verifyUser(c *gin.Context) {
	s.decideUser(c, s.moderation.VerifyUser, "User verified successfully", "Error verifying user")
}

func (s *HTTPServer) rejectUser(c *gin.Context) {
	s.decideUser(c, s.moderation.RejectUser, "User rejected successfully", "Error rejecting user")
}

func (s *HTTPServer) decideUser(c *gin.Context, op func(context.Context, int64) (*models.User, error), success, failure string) {
	id, ok := parseID(c, msgUserNotFound)
	if !ok {
		return
	}

	user, err := op(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err, msgUserNotFound, failure)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": success, "user": user})
}

// fail maps a service error to 404 or a generic 500. The cause is only logged.
func (s *HTTPServer) fail(c *gin.Context, err error, notFound, failure string) {
	if errors.Is(err, common.ErrorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
		return
	}
	s.logger.Error(c.Request.Context(), failure, "error", err, "id", c.Param("id"))
	c.JSON(http.StatusInternalServerError, gin.H{"message": failure})
}

// parseID reads the :id path segment. Anything that is not a positive
// integer cannot be a primary key and is answered with 404.
func parseID(c *gin.Context, notFound string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
		return 0, false
	}
	return id, true
}

// parsePage reads the optional limit and after query parameters.
func parsePage(c *gin.Context) (services.Page, bool) {
	var page services.Page

	if v, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "limit must be a positive integer"})
			return page, false
		}
		page.Limit = n
	}

	if v, ok := c.GetQuery("after"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "after must be a non-negative integer"})
			return page, false
		}
		page.AfterID = n
	}

	return page, true
}
