package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/court-finder/model"
	"github.com/gcbaptista/court-finder/services"
)

// ListSurfacesHandler returns the surface facet values, "all" first.
func (api *API) ListSurfacesHandler(c *gin.Context) {
	surfaces := make([]string, 0, len(model.Surfaces)+1)
	surfaces = append(surfaces, services.FacetAll)
	surfaces = append(surfaces, model.Surfaces...)
	statusOK(c, gin.H{"surfaces": surfaces})
}

// ListCourtsHandler filters courts by facets and ranks them by the q parameter.
// Example: GET /courts?q=mass&surface=Clay&indoor=outdoor
func (api *API) ListCourtsHandler(c *gin.Context) {
	var query services.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		SendInvalidQueryError(c, err)
		return
	}

	list, err := api.courts.List(query)
	if err != nil {
		api.handleServiceError(c, "list courts", err)
		return
	}

	statusOK(c, list)
}

// GetCourtHandler returns one court with its reviews and rating histogram.
func (api *API) GetCourtHandler(c *gin.Context) {
	courtID := c.Param("courtId")
	if v := ValidateCourtID(courtID); v.HasErrors() {
		SendValidationError(c, v)
		return
	}

	detail, err := api.courts.Get(courtID)
	if err != nil {
		api.handleServiceError(c, "get court", err)
		return
	}

	statusOK(c, detail)
}
