package service

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/reflectdiary/diary-api/app/core"
	v1 "github.com/reflectdiary/diary-api/app/logic/v1"
	"github.com/reflectdiary/diary-api/cmd/service/handler"
	"github.com/reflectdiary/diary-api/cmd/service/middleware"
)

// ReadyMarkerFormat is printed to stdout once the listener is about to
// accept. The launcher scans for it.
const ReadyMarkerFormat = "diary service listening on %s"

func serve(core *core.Core) error {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	fmt.Printf(ReadyMarkerFormat+"\n", core.Cfg().Addr)
	return core.HttpEngine().Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return middleware.UseLimit(core, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		})
	}
}

func GetUserLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return middleware.UseLimit(core, key, func(c *gin.Context) string {
			claims, _ := v1.InjectTokenClaim(c)
			return fmt.Sprintf("%s:%d", key, claims.UserID)
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(middleware.I18n())
	s.Engine.Use(middleware.Cors)
	s.Engine.Use(middleware.Metrics(s.Core))

	s.Engine.GET("/metrics", gin.WrapH(s.Core.Metrics().HTTPHandler()))

	api := s.Engine.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", ipLimit("login"), s.Login)
			auth.POST("/change-password", middleware.Authorization(s.Core), userLimit("change_password"), s.ChangePassword)
		}

		authed := api.Group("")
		authed.Use(middleware.Authorization(s.Core))

		authed.GET("/sections", s.ListSections)

		subtopics := authed.Group("/subtopics")
		{
			subtopics.POST("", s.CreateSubtopic)
			subtopics.PUT("/:id", s.UpdateSubtopic)
			subtopics.DELETE("/:id", s.DeleteSubtopic)
		}

		entries := authed.Group("/entries")
		{
			entries.GET("", s.ListEntries)
			entries.GET("/:id", s.GetEntry)
			entries.POST("", s.CreateEntry)
			entries.PUT("/:id", s.UpdateEntry)
			entries.DELETE("/:id", s.DeleteEntry)
			entries.POST("/:id/answers", s.SaveEntryAnswer)
		}

		tags := authed.Group("/tags")
		{
			tags.GET("", s.ListTags)
			tags.POST("", s.CreateTag)
			tags.PUT("/:id", s.UpdateTag)
			tags.DELETE("/:id", s.DeleteTag)
		}

		authed.GET("/export", s.Export)
		authed.POST("/import", userLimit("import"), s.Import)

		authed.GET("/stats", s.StatsOverview)
		authed.GET("/prompts", s.ListPrompts)
	}
}
