package controllers

import (
	"strconv"

	"github.com/sandarunihara/Online-Food-Ordering-System/pkg/resp"
	"github.com/sandarunihara/Online-Food-Ordering-System/services"

	"github.com/gin-gonic/gin"
)

// fail maps a service error onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case services.NotFound(err):
		resp.NotFound(c, err.Error())
	case services.InvalidInput(err):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

func paramID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id)
}
