package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/dance_center/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Утилита для создания *gin.Context с path-параметром
func ctxWithParam(name, value string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", http.NoBody)
	c.Params = gin.Params{{Key: name, Value: value}}
	return c
}

func TestParseIDParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{"ok", "42", 42, false},
		{"one", "1", 1, false},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"not_a_number", "abc", 0, true},
		{"empty", "", 0, true},
		{"overflow", "99999999999999999999", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := httpx.ParseIDParam(ctxWithParam("id", tt.raw), "id")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIDParam(%q) err=%v, wantErr=%v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseIDParam(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParamOrEmpty_Trims(t *testing.T) {
	t.Parallel()

	c := ctxWithParam("danceStyle", "  salsa ")
	if got := httpx.ParamOrEmpty(c, "danceStyle"); got != "salsa" {
		t.Fatalf("got %q, want %q", got, "salsa")
	}
	if got := httpx.ParamOrEmpty(c, "missing"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}
