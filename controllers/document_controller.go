package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/emerald-motors/vehicle-trade-api/services"
	"github.com/emerald-motors/vehicle-trade-api/utils"
)

// UploadDocument handles POST /api/documents - accepts a multipart upload
// with "file" and "category" fields and stores the document, returning its
// storage key and an access URL
func UploadDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_FILE",
				"message": "A file is required",
			},
		})
		return
	}

	category := c.PostForm("category")

	documentService := services.GetDocumentService()
	key, err := documentService.UploadDocument(category, fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UPLOAD_FAILED",
				"message": "Failed to store document",
			},
		})
		return
	}

	url, err := documentService.GetDocumentURL(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "URL_GENERATION_FAILED",
				"message": "Document stored but URL generation failed",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"key": key,
			"url": url,
		},
	})
}

// GetDocumentURL handles GET /api/documents/url/*key - generates a short-lived
// access URL for a stored document. The key includes the category prefix, so
// the route uses a wildcard parameter.
func GetDocumentURL(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_KEY",
				"message": "A document key is required",
			},
		})
		return
	}

	documentService := services.GetDocumentService()
	url, err := documentService.GetDocumentURL(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "URL_GENERATION_FAILED",
				"message": "Failed to generate document URL",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"key": key,
			"url": url,
		},
	})
}

// DeleteDocument handles DELETE /api/documents/*key - removes a stored
// document
func DeleteDocument(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_KEY",
				"message": "A document key is required",
			},
		})
		return
	}

	documentService := services.GetDocumentService()
	if err := documentService.DeleteDocument(key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELETE_FAILED",
				"message": "Failed to delete document",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Document deleted",
	})
}
