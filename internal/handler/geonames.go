package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/KunalGarg-PEC/BlogsApi/internal/util"

	"github.com/gin-gonic/gin"
)

// GeonamesHandler proxies place-name lookups for the submission form's
// location autocomplete, keeping the GeoNames account name server-side.
type GeonamesHandler struct {
	Username string
	Client   *http.Client
}

func NewGeonamesHandler(username string) *GeonamesHandler {
	return &GeonamesHandler{
		Username: username,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (h *GeonamesHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "q is required")
		return
	}

	endpoint := "https://secure.geonames.org/searchJSON?" + url.Values{
		"q":        {q},
		"maxRows":  {"10"},
		"username": {h.Username},
	}.Encode()

	resp, err := h.Client.Get(endpoint)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "geonames lookup failed")
		return
	}
	defer resp.Body.Close()

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "geonames lookup failed")
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}
