package admin

import (
	"github.com/civeni/civeni-api/internal/constants"
	"github.com/civeni/civeni-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadFile stores an image or document for posts, banners and events and
// returns its public URL.
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	url, err := h.Store.SaveUpload(file, constants.BucketUploads)
	if err != nil {
		respondError(c, response.CodeInternal, "error.upload_failed", err)
		return
	}
	requestLog(c).Infow("admin_file_uploaded", "filename", file.Filename, "url", url)
	response.Success(c, gin.H{"url": url})
}
