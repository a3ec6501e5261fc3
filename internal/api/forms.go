package api

import (
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"nfg/fitness-site/internal/service"
	"nfg/fitness-site/internal/storage"

	"github.com/gin-gonic/gin"
)

const imageSlotCount = 8

// saveUpload stores an uploaded image and returns its public URL. A missing
// file, a disallowed extension, or a storage failure all yield ok=false so
// the caller can fall through to the matching URL field.
func saveUpload(c *gin.Context, store storage.FileStorage, header *multipart.FileHeader) (string, bool) {
	if header == nil || header.Filename == "" {
		return "", false
	}
	ext, ok := storage.AllowedImageExt(header.Filename)
	if !ok {
		log.Printf("WARN: rejected upload %q: extension not allowed", header.Filename)
		return "", false
	}
	file, err := header.Open()
	if err != nil {
		log.Printf("ERROR: opening upload %q: %v", header.Filename, err)
		return "", false
	}
	defer file.Close()

	url, err := store.Save(c.Request.Context(), file, ext)
	if err != nil {
		log.Printf("ERROR: storing upload %q: %v", header.Filename, err)
		return "", false
	}
	return url, true
}

// formFile fetches a named multipart file, treating "not present" and
// "not a multipart request" alike as absence.
func formFile(c *gin.Context, name string) *multipart.FileHeader {
	header, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return header
}

// slotFile finds the uploaded file for a gallery slot under either accepted
// field spelling, img{i}_file or image_file_{i}.
func slotFile(c *gin.Context, i int) *multipart.FileHeader {
	if header := formFile(c, fmt.Sprintf("img%d_file", i)); header != nil {
		return header
	}
	return formFile(c, fmt.Sprintf("image_file_%d", i))
}

// slotURL finds the URL for a gallery slot, img{i}_url or image_url_{i}.
func slotURL(c *gin.Context, i int) string {
	if url := strings.TrimSpace(c.PostForm(fmt.Sprintf("img%d_url", i))); url != "" {
		return url
	}
	return strings.TrimSpace(c.PostForm(fmt.Sprintf("image_url_%d", i)))
}

// collectOrderedImages gathers the ordered gallery slots img1..img8. Within a
// slot an uploaded file wins over its URL field; empty slots are skipped so
// the resulting slice preserves slot order without gaps. When no slot is
// filled, the legacy freeform "images" field (newline or comma separated
// URLs) is used instead.
func collectOrderedImages(c *gin.Context, store storage.FileStorage) []string {
	var images []string
	for i := 1; i <= imageSlotCount; i++ {
		if url, ok := saveUpload(c, store, slotFile(c, i)); ok {
			images = append(images, url)
			continue
		}
		if url := slotURL(c, i); url != "" {
			images = append(images, url)
		}
	}
	if len(images) == 0 {
		images = service.SplitList(c.PostForm("images"))
	}
	return images
}

// collectSingleImage resolves one image field pair (file wins over URL).
// fallback names older form fields that carried the same value.
func collectSingleImage(c *gin.Context, store storage.FileStorage, fileField, urlField string, fallback ...string) string {
	if url, ok := saveUpload(c, store, formFile(c, fileField)); ok {
		return url
	}
	if url := strings.TrimSpace(c.PostForm(urlField)); url != "" {
		return url
	}
	for _, name := range fallback {
		if url := strings.TrimSpace(c.PostForm(name)); url != "" {
			return url
		}
	}
	return ""
}
