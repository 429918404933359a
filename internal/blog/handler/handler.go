package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/contenthub-server/internal/apierror"
	"github.com/contenthub/contenthub-server/internal/blog/repository"
	"github.com/contenthub/contenthub-server/internal/blog/service"
	"github.com/contenthub/contenthub-server/internal/models"
)

// RegisterBlogRoutes mounts the blog endpoints. requireAuth guards creation.
func RegisterBlogRoutes(r gin.IRouter, svc service.Service, requireAuth gin.HandlerFunc) {
	r.POST("/api/addBlog", requireAuth, func(c *gin.Context) {
		var p models.BlogPost
		if err := c.ShouldBindJSON(&p); err != nil {
			apierror.BadRequest(c, "Invalid blog payload")
			return
		}
		id, err := svc.Create(c.Request.Context(), &p)
		if err != nil {
			apierror.Internal(c, err, "Failed to add blog")
			return
		}
		c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id})
	})

	r.GET("/api/blogs", func(c *gin.Context) {
		list, err := svc.All(c.Request.Context())
		if err != nil {
			apierror.Internal(c, err, "Failed to fetch blogs")
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/blog/:id", func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			apierror.Respond(c, err, "Blog not found", "Failed to fetch blog")
			return
		}
		c.JSON(http.StatusOK, p)
	})

	r.GET("/api/allBlogs", func(c *gin.Context) {
		f := repository.Filter{
			Category: c.Query("filter"),
			Search:   c.Query("search"),
			Sort:     repository.ParseSort(c.Query("sort")),
		}
		list, err := svc.List(c.Request.Context(), f)
		if err != nil {
			apierror.Internal(c, err, "Failed to fetch blogs")
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/latestBlogs", func(c *gin.Context) {
		list, err := svc.Latest(c.Request.Context())
		if err != nil {
			apierror.Internal(c, err, "Failed to fetch latest blogs")
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.GET("/api/featuredBlogs", func(c *gin.Context) {
		list, err := svc.Featured(c.Request.Context())
		if err != nil {
			apierror.Internal(c, err, "Failed to fetch featured blogs")
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
