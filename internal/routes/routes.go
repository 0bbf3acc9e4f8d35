package routes

import (
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/handler"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Handlers every API handler mounted under /api/v1
type Handlers struct {
	Group        *handler.GroupHandler
	Content      *handler.ContentHandler
	Bookmark     *handler.BookmarkHandler
	Emotion      *handler.EmotionHandler
	Comment      *handler.CommentHandler
	Notification *handler.NotificationHandler
	User         *handler.UserHandler
}

// Setup configures all API routes. Every route requires a bearer token.
func Setup(router *gin.Engine, h *Handlers, jwtManager *jwt.Manager) {
	api := router.Group("/api/v1", middleware.JWTAuth(jwtManager))

	// Groups (그룹)
	groups := api.Group("/groups")
	groups.POST("", h.Group.CreateGroup)
	groups.GET("/:group_id", h.Group.GetGroup)
	groups.POST("/:group_id/join", h.Group.JoinGroup)
	groups.GET("/:group_id/contents", h.Content.ListGroupContents)
	groups.POST("/:group_id/contents", h.Content.CreateContent)

	// Contents (게시물)
	contents := api.Group("/contents")
	contents.GET("", h.Content.ListContents) // ?group_id=1&group_id=2
	contents.GET("/:content_id", h.Content.GetContent)
	contents.PUT("/:content_id", h.Content.UpdateContent)
	contents.DELETE("/:content_id", h.Content.DeleteContent)
	contents.POST("/:content_id/bookmark", h.Bookmark.ToggleBookmark)
	contents.PUT("/:content_id/emotion", h.Emotion.React)
	contents.GET("/:content_id/comments", h.Comment.ListComments)
	contents.POST("/:content_id/comments", h.Comment.AddComment)

	// Comments (댓글)
	comments := api.Group("/comments")
	comments.DELETE("/:comment_id", h.Comment.DeleteComment)
	comments.POST("/:comment_id/like", h.Comment.ToggleLike)

	// Notifications (알림)
	api.PATCH("/notifications/:id/read", h.Notification.MarkAsRead)

	// Current user (내 정보)
	me := api.Group("/users/me")
	me.GET("", h.User.GetMe)
	me.DELETE("", h.User.Withdraw)
	me.GET("/groups", h.Group.ListMyGroups)
	me.GET("/bookmarks", h.Bookmark.ListBookmarks)
	me.GET("/notifications", h.Notification.GetList)
}
