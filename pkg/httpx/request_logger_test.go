package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/dance_center/internal/ports/mocks"
	"github.com/Gunvolt24/dance_center/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

func TestRequestLogger_LevelByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	r := gin.New()
	r.Use(httpx.RequestLogger(log))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	gomock.InOrder(
		log.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any()).Times(1),
		log.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).Times(1),
		log.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Times(1),
	)

	for _, path := range []string{"/ok", "/missing", "/boom", "/ping"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", path, http.NoBody))
	}
}
