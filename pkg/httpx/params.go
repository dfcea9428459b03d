package httpx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseIDParam — читает положительный int64 из path-параметра.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// ParamOrEmpty — строковый path-параметр без пробелов по краям.
func ParamOrEmpty(c *gin.Context, name string) string {
	return strings.TrimSpace(c.Param(name))
}
