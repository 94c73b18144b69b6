package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jqt_lookup_backend/lookup"
	"jqt_lookup_backend/models"
)

type LookupHandler struct {
	service *lookup.Service
}

func NewLookupHandler(service *lookup.Service) *LookupHandler {
	return &LookupHandler{service: service}
}

// Lookup handles GET /api/lookup?id=<identifier>.
//
// A blank identifier is a 400 warning, an unknown one a 404, a data source
// failure a 502 whose body carries the raw detail for operators. A known
// student with no history is a 200 with an informational message, not an
// error.
func (h *LookupHandler) Lookup(c *gin.Context) {
	result, err := h.service.Lookup(c.Request.Context(), c.Query("id"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": "請輸入學員的身分證字號"})
		case errors.Is(err, models.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "查無資料"})
		case models.IsDataSourceError(err):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  "系統讀取錯誤",
				"detail": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "系統讀取錯誤", "detail": err.Error()})
		}
		return
	}

	resp := gin.H{
		"name":              result.Name,
		"class_label":       result.ClassLabel,
		"remaining_lessons": result.RemainingLessons,
		"remaining_display": result.RemainingDisplay,
		"records":           result.Records,
	}
	if len(result.Records) == 0 {
		resp["message"] = "尚無上課紀錄"
	}
	c.JSON(http.StatusOK, resp)
}
