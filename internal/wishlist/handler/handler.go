package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contenthub/contenthub-server/internal/apierror"
	"github.com/contenthub/contenthub-server/internal/models"
	"github.com/contenthub/contenthub-server/internal/wishlist/service"
)

// RegisterWishlistRoutes mounts the wishlist endpoints. None require a token.
func RegisterWishlistRoutes(r gin.IRouter, svc service.Service) {
	r.POST("/addWishlist", func(c *gin.Context) {
		var e models.WishlistEntry
		if err := c.ShouldBindJSON(&e); err != nil {
			apierror.BadRequest(c, "Invalid wishlist payload")
			return
		}
		id, err := svc.Add(c.Request.Context(), &e)
		if errors.Is(err, models.ErrDuplicate) {
			apierror.BadRequest(c, "Item already in wishlist")
			return
		}
		if err != nil {
			apierror.Internal(c, err, "Failed to add to wishlist")
			return
		}
		c.JSON(http.StatusOK, models.InsertResult{Acknowledged: true, InsertedID: id})
	})

	r.GET("/getWishlist", func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			apierror.BadRequest(c, "Email is required")
			return
		}
		list, err := svc.List(c.Request.Context(), email, c.Query("category"), c.Query("search"))
		if err != nil {
			apierror.Internal(c, err, "Failed to fetch wishlist")
			return
		}
		c.JSON(http.StatusOK, list)
	})

	r.DELETE("/removeWishlist", func(c *gin.Context) {
		email, itemID := c.Query("email"), c.Query("itemId")
		if email == "" || itemID == "" {
			apierror.BadRequest(c, "Email and itemId are required")
			return
		}
		if err := svc.Remove(c.Request.Context(), email, itemID); err != nil {
			apierror.Respond(c, err, "Item not found in wishlist", "Failed to remove wishlist item")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from wishlist successfully"})
	})
}
