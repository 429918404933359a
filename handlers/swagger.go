package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves the OpenAPI document and a Swagger UI page.
// - GET /swagger/index.html  -> HTML page that loads the document
// - GET /swagger/doc.json    -> OpenAPI JSON
func RegisterSwagger(r gin.IRouter) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>contenthub - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "contenthub", "version": "v1.0.0" },
  "components": {
    "securitySchemes": { "cookieAuth": { "type": "apiKey", "in": "cookie", "name": "token" } },
    "schemas": {
      "Message": { "type": "object", "properties": { "message": { "type": "string" } } },
      "InsertResult": { "type": "object", "properties": { "acknowledged": { "type": "boolean" }, "insertedId": { "type": "string" } } },
      "Blog": { "type": "object", "additionalProperties": true, "properties": { "_id": {"type":"string"}, "title": {"type":"string"}, "category": {"type":"string"}, "shortDescription": {"type":"string"}, "longDescription": {"type":"string"}, "imageUrl": {"type":"string"}, "deadline": {"type":"string"}, "userEmail": {"type":"string"}, "createdAt": {"type":"string","format":"date-time"}, "wordCount": {"type":"integer"} } },
      "WishlistEntry": { "type": "object", "additionalProperties": true, "properties": { "_id": {"type":"string"}, "reviewId": {"type":"string"}, "userEmail": {"type":"string"}, "title": {"type":"string"}, "category": {"type":"string"} } },
      "Comment": { "type": "object", "additionalProperties": true, "properties": { "_id": {"type":"string"}, "blogId": {"type":"string"}, "createdAt": {"type":"string","format":"date-time"} } }
    }
  },
  "paths": {
    "/jwt": {
      "post": { "summary": "Issue a token for an email and set it as the token cookie", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"}}}}}}, "responses": { "200": { "description": "cookie set" }, "400": { "description": "email missing" } } }
    },
    "/logout": {
      "get": { "summary": "Clear the token cookie", "responses": { "200": { "description": "cookie cleared" } } }
    },
    "/api/addBlog": {
      "post": { "summary": "Create a blog post", "security": [{"cookieAuth": []}], "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Blog"}}}}, "responses": { "200": { "description": "inserted", "content": {"application/json": {"schema": {"$ref":"#/components/schemas/InsertResult"}}} }, "401": { "description": "unauthorized" } } }
    },
    "/api/blogs": {
      "get": { "summary": "List every blog post", "responses": { "200": { "description": "posts" } } }
    },
    "/api/blog/{id}": {
      "get": { "summary": "Fetch one blog post", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "post" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } }
    },
    "/api/allBlogs": {
      "get": { "summary": "List posts by category, title substring and deadline order", "parameters": [{"name":"filter","in":"query","schema":{"type":"string"}},{"name":"search","in":"query","schema":{"type":"string"}},{"name":"sort","in":"query","schema":{"type":"string","enum":["asc","desc"]}}], "responses": { "200": { "description": "posts" } } }
    },
    "/api/latestBlogs": {
      "get": { "summary": "Six most recently created posts", "responses": { "200": { "description": "posts" } } }
    },
    "/api/featuredBlogs": {
      "get": { "summary": "Ten posts with the longest descriptions", "responses": { "200": { "description": "posts with wordCount" } } }
    },
    "/api/uploadImage": {
      "post": { "summary": "Upload a cover image (only when object storage is configured)", "security": [{"cookieAuth": []}], "requestBody": { "content": { "multipart/form-data": { "schema": {"type":"object","properties":{"image":{"type":"string","format":"binary"}}}}}}, "responses": { "200": { "description": "stored" }, "400": { "description": "missing or unsupported image" } } }
    },
    "/addWishlist": {
      "post": { "summary": "Save a review to a user's wishlist", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/WishlistEntry"}}}}, "responses": { "200": { "description": "inserted" }, "400": { "description": "already in wishlist" } } }
    },
    "/getWishlist": {
      "get": { "summary": "List a user's wishlist", "parameters": [{"name":"email","in":"query","required":true,"schema":{"type":"string"}},{"name":"category","in":"query","schema":{"type":"string"}},{"name":"search","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "entries" }, "400": { "description": "email missing" } } }
    },
    "/removeWishlist": {
      "delete": { "summary": "Remove a wishlist entry", "parameters": [{"name":"email","in":"query","required":true,"schema":{"type":"string"}},{"name":"itemId","in":"query","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "removed" }, "400": { "description": "parameters missing" }, "404": { "description": "not found" } } }
    },
    "/api/addcomment": {
      "post": { "summary": "Post a comment", "security": [{"cookieAuth": []}], "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Comment"}}}}, "responses": { "200": { "description": "inserted" }, "401": { "description": "unauthorized" } } },
      "get": { "summary": "List comments", "parameters": [{"name":"blogId","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "comments" } } }
    },
    "/api/comments/{id}": {
      "delete": { "summary": "Delete a comment", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Health check", "responses": { "200": { "description": "ok" } } } },
    "/ready": { "get": { "summary": "Readiness of backing stores", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
