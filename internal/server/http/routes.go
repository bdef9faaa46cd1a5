package http

import "github.com/gin-gonic/gin"

func (s *HTTPServer) routes(r *gin.Engine) {
	r.GET("/ping", s.ping)

	ads := r.Group("/ads")
	{
		ads.GET("", s.listAds)
		ads.PUT("/:id/verify", s.verifyAd)
		ads.PUT("/:id/reject", s.rejectAd)
	}

	users := r.Group("/users")
	{
		users.GET("", s.listUsers)
		users.PUT("/:id/verify", s.verifyUser)
		users.PUT("/:id/reject", s.rejectUser)
	}
}
