package api

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"jobtrack/internal/model"
	"jobtrack/internal/repository"
	"jobtrack/internal/storage"
)

const presignedURLTTL = 15 * time.Minute

// DocumentHandler stores uploaded files (CVs, offer letters) in object
// storage and tracks them as rows tied to the owning user.
type DocumentHandler struct {
	docs      repository.DocumentRepository
	storage   *storage.Client
	clamdAddr string
}

// NewDocumentHandler builds the handler. An empty clamdAddr disables the
// virus scan step.
func NewDocumentHandler(docs repository.DocumentRepository, storageClient *storage.Client, clamdAddr string) *DocumentHandler {
	return &DocumentHandler{
		docs:      docs,
		storage:   storageClient,
		clamdAddr: clamdAddr,
	}
}

// Upload accepts a multipart file, scans it when clamd is configured,
// uploads it to the bucket and records a document row. An optional
// job_apply_id form field links the document to an application.
func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "missing file")
		return
	}

	var jobApplyID *uint
	if raw := c.PostForm("job_apply_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			BadRequest(c, "invalid job_apply_id")
			return
		}
		id := uint(n)
		jobApplyID = &id
	}

	if h.clamdAddr != "" {
		clean, err := h.scanUpload(file)
		if err != nil {
			Internal(c, "failed to scan file")
			return
		}
		if !clean {
			BadRequest(c, "malicious file detected")
			return
		}
	}

	fileReader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return
	}
	defer fileReader.Close()

	objectKey := fmt.Sprintf("documents/%d/%s%s", userID, uuid.NewString(), filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ctx := c.Request.Context()
	if _, err := h.storage.UploadFile(ctx, objectKey, fileReader, file.Size, contentType); err != nil {
		Internal(c, "failed to upload file")
		return
	}

	meta, _ := json.Marshal(map[string]string{"content_type": contentType})
	doc := model.Document{
		UserID:     userID,
		JobApplyID: jobApplyID,
		FileName:   file.Filename,
		ObjectKey:  objectKey,
		Size:       file.Size,
		Metadata:   datatypes.JSON(meta),
	}
	if err := h.docs.Create(ctx, &doc); err != nil {
		// The row failed, so the uploaded object would be orphaned.
		_ = h.storage.DeleteObject(ctx, objectKey)
		RepositoryError(c, err, "failed to record document")
		return
	}

	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) scanUpload(file *multipart.FileHeader) (bool, error) {
	clamdClient := clamd.NewClamd(h.clamdAddr)

	fileReader, err := file.Open()
	if err != nil {
		return false, err
	}

	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(fileReader, abortChan)
	fileReader.Close()
	if err != nil {
		return false, err
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			return false, nil
		}
	}
	return true, nil
}

// List returns the caller's documents with short-lived download links.
func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	docs, err := h.docs.ListByUser(ctx, userID)
	if err != nil {
		RepositoryError(c, err, "failed to list documents")
		return
	}

	items := make([]gin.H, 0, len(docs))
	for _, doc := range docs {
		url, err := h.storage.GeneratePresignedURL(ctx, doc.ObjectKey, presignedURLTTL)
		if err != nil {
			continue
		}
		items = append(items, gin.H{
			"id":           doc.ID,
			"file_name":    doc.FileName,
			"size":         doc.Size,
			"job_apply_id": doc.JobApplyID,
			"created_at":   doc.CreatedAt,
			"download_url": url,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Download redirects to a presigned URL for one document.
func (h *DocumentHandler) Download(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	ctx := c.Request.Context()
	doc, err := h.docs.GetByID(ctx, id, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load document")
		return
	}

	url, err := h.storage.GeneratePresignedURL(ctx, doc.ObjectKey, presignedURLTTL)
	if err != nil {
		Internal(c, "failed to generate url")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Delete removes the document row and its stored object.
func (h *DocumentHandler) Delete(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		BadRequest(c, "invalid id")
		return
	}

	ctx := c.Request.Context()
	doc, err := h.docs.GetByID(ctx, id, userID)
	if err != nil {
		RepositoryError(c, err, "failed to load document")
		return
	}

	deleted, err := h.docs.Delete(ctx, id, userID)
	if err != nil {
		RepositoryError(c, err, "failed to delete document")
		return
	}
	if !deleted {
		NotFound(c, "document not found")
		return
	}

	// Object removal is best effort; the row is gone either way.
	_ = h.storage.DeleteObject(ctx, doc.ObjectKey)
	c.Status(http.StatusNoContent)
}
