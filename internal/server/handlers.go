package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	art "github.com/llehouerou/storesearch/internal/artwork"
	"github.com/llehouerou/storesearch/internal/catalog"
	"github.com/llehouerou/storesearch/internal/errmsg"
	"github.com/llehouerou/storesearch/internal/present"
	"github.com/llehouerou/storesearch/internal/search"
)

const (
	defaultDeviceWidth   = 568
	defaultTerminalWidth = 80
	defaultThumbSize     = 100
	maxThumbSize         = 600
)

// SearchResult is the body of /api/search.
type SearchResult struct {
	State      string           `json:"state"`
	Success    bool             `json:"success"`
	Generation uint64           `json:"generation"`
	Results    []catalog.Result `json:"results"`
}

// Health is the body of /api/health.
type Health struct {
	Status     string `json:"status"`
	State      string `json:"state"`
	Generation uint64 `json:"generation"`
}

func (s *Server) handleSearch(c *gin.Context) {
	category, ok := catalog.ParseCategory(c.Query("category"))
	if !ok {
		writeError(c, http.StatusBadRequest, "unknown category: "+c.Query("category"))
		return
	}

	req, ok := s.holder.Begin(c.Query("term"), category)
	if !ok {
		writeError(c, http.StatusBadRequest, "term is required")
		return
	}

	done := s.holder.Run(req)
	st, applied, success := s.holder.Resolve(done)
	if !applied {
		writeError(c, http.StatusConflict, "superseded by a newer search")
		return
	}

	body := SearchResult{
		State:      st.Kind().String(),
		Success:    success,
		Generation: req.Generation,
		Results:    st.Results(),
	}
	if body.Results == nil {
		body.Results = []catalog.Result{}
	}

	if !success {
		writeJSON(c, http.StatusBadGateway, Response{
			Code:    http.StatusBadGateway,
			Message: errmsg.Format(errmsg.OpSearch, done.Err),
			Data:    body,
		})
		return
	}
	writeJSON(c, http.StatusOK, NewSuccessResponse(body))
}

func (s *Server) handleList(c *gin.Context) {
	writeJSON(c, http.StatusOK, NewSuccessResponse(present.List(s.holder.State())))
}

func (s *Server) handleGrid(c *gin.Context) {
	profiles, width := present.DeviceProfiles, float64(defaultDeviceWidth)
	switch strings.ToLower(c.DefaultQuery("profile", "device")) {
	case "device":
	case "terminal":
		profiles, width = present.TerminalProfiles, defaultTerminalWidth
	default:
		writeError(c, http.StatusBadRequest, "profile must be device or terminal")
		return
	}

	if raw := c.Query("width"); raw != "" {
		w, err := strconv.ParseFloat(raw, 64)
		if err != nil || w <= 0 {
			writeError(c, http.StatusBadRequest, "invalid width: "+raw)
			return
		}
		width = w
	}

	writeJSON(c, http.StatusOK, NewSuccessResponse(present.Grid(s.holder.State(), width, profiles)))
}

// selectParam resolves the :index parameter against the live state.
// It writes the error reply and returns false on failure.
func (s *Server) selectParam(c *gin.Context) (catalog.Result, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid index: "+c.Param("index"))
		return catalog.Result{}, false
	}
	item, err := s.holder.Select(index)
	if errors.Is(err, search.ErrStaleIndex) {
		writeError(c, http.StatusNotFound, fmt.Sprintf("no result at index %d", index))
		return catalog.Result{}, false
	}
	return item, true
}

func (s *Server) handleSelect(c *gin.Context) {
	item, ok := s.selectParam(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, NewSuccessResponse(item))
}

// handleThumbnail serves the artwork of a live result as a PNG scaled to
// fit size×size.
func (s *Server) handleThumbnail(c *gin.Context) {
	if s.opts.Artwork == nil {
		writeError(c, http.StatusNotImplemented, "artwork disabled")
		return
	}

	size := defaultThumbSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxThumbSize {
			writeError(c, http.StatusBadRequest, "invalid size: "+raw)
			return
		}
		size = n
	}

	item, ok := s.selectParam(c)
	if !ok {
		return
	}

	url := item.ImageLarge
	if url == "" {
		url = item.ImageSmall
	}
	data, err := s.opts.Artwork.Fetch(c.Request.Context(), url)
	if errors.Is(err, art.ErrNotFound) {
		writeError(c, http.StatusNotFound, errmsg.Format(errmsg.OpArtworkLoad, err))
		return
	}
	if err != nil {
		writeError(c, http.StatusBadGateway, errmsg.Format(errmsg.OpArtworkLoad, err))
		return
	}

	png, err := art.Thumbnail(s.opts.ThumbCache, url, data, size, size)
	if err != nil {
		writeError(c, http.StatusUnprocessableEntity, errmsg.Format(errmsg.OpArtworkLoad, err))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (s *Server) handleHealth(c *gin.Context) {
	writeJSON(c, http.StatusOK, NewSuccessResponse(Health{
		Status:     "ok",
		State:      s.holder.State().Kind().String(),
		Generation: s.holder.Generation(),
	}))
}
