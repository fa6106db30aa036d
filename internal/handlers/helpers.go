package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nsuemschool/internal/repositories"
)

// более устойчиво к типам (int / int64 / float64 / string)
func getIntFromCtx(c *gin.Context, key string) (int, bool) {
	v, ok := c.Get(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case string:
		if n, err := strconv.Atoi(t); err == nil {
			return n, true
		}
	}
	return 0, false
}

func getUserFromCtx(c *gin.Context) (userID int, isAdmin bool) {
	if id, ok := getIntFromCtx(c, "user_id"); ok {
		userID = id
	}
	if v, ok := c.Get("is_admin"); ok {
		isAdmin, _ = v.(bool)
	}
	return
}

// respondDuplicate переводит конфликт уникальности в продуктовое сообщение.
// Возвращает true, если ошибка была обработана.
func respondDuplicate(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, repositories.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Пользователь с таким email уже существует"})
		return true
	case errors.Is(err, repositories.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Пользователь с таким логином уже существует"})
		return true
	}
	return false
}
