package api

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/youruser/idcard/internal/card"
	"github.com/youruser/idcard/internal/photo"
	"github.com/youruser/idcard/internal/roster"
)

// Server exposes single-card rendering over HTTP for previewing a
// layout without running the whole batch.
type Server struct {
	Compositor *card.Compositor
	Resolver   photo.Resolver
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// cardImageHandler renders one card from a JSON record. The photo is
// resolved from the configured photos directory, same as the batch.
func (s *Server) cardImageHandler(c *gin.Context) {
	var rec roster.Record
	if err := c.BindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rec.ID == "" {
		rec.ID = roster.DeriveID(rec)
	}

	img, err := s.Resolver.Resolve(rec)
	if err != nil {
		if errors.Is(err, photo.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "id": rec.ID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "id": rec.ID})
		return
	}

	out, err := s.Compositor.Render(rec, img)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "id": rec.ID})
		return
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// qrHandler returns a PNG QR code for the "text" query param.
func (s *Server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing text"})
		return
	}
	size := 400
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 {
		size = v
	}
	b, err := card.QRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}
