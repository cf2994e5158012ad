package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"
)

type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	// expvar counters: users_registered, logins, cart_mutations
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
