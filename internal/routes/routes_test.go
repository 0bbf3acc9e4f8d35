package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/1000kkannoo/dnd-8th-4-backend/internal/common"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/domain"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/handler"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/middleware"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/repository"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/service"
	"github.com/1000kkannoo/dnd-8th-4-backend/internal/testutil"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/jwt"
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/storage"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type envelope struct {
	Code    common.ResultCode `json:"code"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
}

// APISuite drives the HTTP surface end to end against SQLite, miniredis and an in-memory bucket
type APISuite struct {
	suite.Suite
	db      *gorm.DB
	router  *gin.Engine
	backend *storage.MemoryBackend
	redis   *miniredis.Miniredis
	alice   string
	bob     string
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.db = testutil.NewDB(s.T())
	cacheService, mr := testutil.NewCache(s.T())
	s.redis = mr
	s.backend = storage.NewMemoryBackend("https://cdn.test")

	userRepo := repository.NewUserRepository(s.db)
	groupRepo := repository.NewGroupRepository(s.db)
	contentRepo := repository.NewContentRepository(s.db)
	emotionRepo := repository.NewEmotionRepository(s.db)
	commentRepo := repository.NewCommentRepository(s.db)
	bookmarkRepo := repository.NewBookmarkRepository(s.db)
	notificationRepo := repository.NewNotificationRepository(s.db)
	views := repository.NewViewCounter(cacheService)
	index := repository.NewBookmarkIndex(cacheService)

	notifications := service.NewNotificationService(userRepo, notificationRepo)
	handlers := &Handlers{
		Group:        handler.NewGroupHandler(service.NewGroupService(userRepo, groupRepo)),
		Content:      handler.NewContentHandler(service.NewContentService(userRepo, groupRepo, contentRepo, commentRepo, emotionRepo, bookmarkRepo, views, service.NewImageService(s.backend))),
		Bookmark:     handler.NewBookmarkHandler(service.NewBookmarkService(userRepo, contentRepo, bookmarkRepo, index)),
		Emotion:      handler.NewEmotionHandler(service.NewEmotionService(userRepo, contentRepo, emotionRepo)),
		Comment:      handler.NewCommentHandler(service.NewCommentService(userRepo, contentRepo, commentRepo, emotionRepo, notifications)),
		Notification: handler.NewNotificationHandler(notifications),
		User:         handler.NewUserHandler(service.NewUserService(userRepo, index)),
	}

	manager := jwt.NewManager("test-secret", 3600, 7200)
	s.router = gin.New()
	s.router.Use(middleware.I18n())
	Setup(s.router, handlers, manager)

	s.Require().NoError(s.db.Create(&domain.User{Email: "alice@diary.com", Name: "앨리스", Nickname: "alice"}).Error)
	s.Require().NoError(s.db.Create(&domain.User{Email: "bob@diary.com", Name: "밥", Nickname: "bob"}).Error)

	var err error
	s.alice, err = manager.GenerateAccessToken("alice@diary.com", "alice")
	s.Require().NoError(err)
	s.bob, err = manager.GenerateAccessToken("bob@diary.com", "bob")
	s.Require().NoError(err)
}

func (s *APISuite) do(method, path, token string, body []byte, contentType string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func (s *APISuite) doJSON(method, path, token string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		s.Require().NoError(err)
	}
	return s.do(method, path, token, body, "application/json")
}

// multipartBody builds a content form with one file per name under "images"
func (s *APISuite) multipartBody(fields map[string]string, files ...string) ([]byte, string) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		s.Require().NoError(w.WriteField(k, v))
	}
	for _, name := range files {
		part, err := w.CreateFormFile("images", name)
		s.Require().NoError(err)
		_, err = part.Write([]byte("image-bytes"))
		s.Require().NoError(err)
	}
	s.Require().NoError(w.Close())
	return buf.Bytes(), w.FormDataContentType()
}

func (s *APISuite) createGroup(token, name string) domain.GroupResponse {
	w, env := s.doJSON(http.MethodPost, "/api/v1/groups", token, map[string]string{"group_name": name})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var group domain.GroupResponse
	s.Require().NoError(json.Unmarshal(env.Data, &group))
	return group
}

func (s *APISuite) createContent(token string, groupID int64, text string, files ...string) domain.ContentResponse {
	body, ct := s.multipartBody(map[string]string{"content": text}, files...)
	w, env := s.do(http.MethodPost, fmt.Sprintf("/api/v1/groups/%d/contents", groupID), token, body, ct)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var content domain.ContentResponse
	s.Require().NoError(json.Unmarshal(env.Data, &content))
	return content
}

func (s *APISuite) TestUnauthorized() {
	w, env := s.doJSON(http.MethodGet, "/api/v1/users/me", "", nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(common.ResultUnauthorized, env.Code)
	s.Equal("null", string(env.Data))
}

func (s *APISuite) TestGetMe() {
	w, env := s.doJSON(http.MethodGet, "/api/v1/users/me", s.alice, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(common.ResultOK, env.Code)

	var me domain.UserResponse
	s.Require().NoError(json.Unmarshal(env.Data, &me))
	s.Equal("alice@diary.com", me.Email)
}

func (s *APISuite) TestCreateGroup_NameTooLong() {
	w, env := s.doJSON(http.MethodPost, "/api/v1/groups", s.alice, map[string]string{"group_name": "가나다라마바사아자차카타파"})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(common.ResultHighMaxGroupNameLength, env.Code)
}

func (s *APISuite) TestGroupLifecycle() {
	w, env := s.doJSON(http.MethodGet, "/api/v1/users/me/groups", s.bob, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(common.ResultNoUserGroupList, env.Code)

	group := s.createGroup(s.alice, "우리집")

	w, _ = s.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/groups/%d/join", group.ID), s.bob, nil)
	s.Equal(http.StatusOK, w.Code)

	w, env = s.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/groups/%d", group.ID), s.bob, nil)
	s.Equal(http.StatusOK, w.Code)
	var detail domain.GroupDetailResponse
	s.Require().NoError(json.Unmarshal(env.Data, &detail))
	s.Equal("alice", detail.Host.Nickname)
	s.Len(detail.Members, 2)

	w, _ = s.doJSON(http.MethodGet, "/api/v1/users/me/groups", s.bob, nil)
	s.Equal(http.StatusOK, w.Code)

	w, env = s.doJSON(http.MethodGet, "/api/v1/groups/999", s.bob, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(common.ResultNotFoundGroup, env.Code)
}

func (s *APISuite) TestContentLifecycle() {
	group := s.createGroup(s.alice, "가족")
	content := s.createContent(s.alice, group.ID, "오늘 일기", "a.png")
	s.Require().Len(content.Images, 1)
	s.Equal(1, s.backend.Len())

	for i := 1; i <= 2; i++ {
		w, env := s.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/contents/%d", content.ID), s.bob, nil)
		s.Require().Equal(http.StatusOK, w.Code)
		var view domain.ContentView
		s.Require().NoError(json.Unmarshal(env.Data, &view))
		s.Equal(int64(i), view.Views)
		s.Equal(domain.EmotionStatusNone, view.EmotionStatus)
	}

	w, env := s.doJSON(http.MethodDelete, fmt.Sprintf("/api/v1/contents/%d", content.ID), s.bob, nil)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(common.ResultNotMatchedUserContent, env.Code)

	body, ct := s.multipartBody(map[string]string{"content": "수정", "delete_image_names": content.Images[0].ImageName}, "b.jpg")
	w, env = s.do(http.MethodPut, fmt.Sprintf("/api/v1/contents/%d", content.ID), s.alice, body, ct)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var updated domain.ContentResponse
	s.Require().NoError(json.Unmarshal(env.Data, &updated))
	s.Equal("수정", updated.Content)
	s.Require().Len(updated.Images, 1)
	s.NotEqual(content.Images[0].ImageName, updated.Images[0].ImageName)
	s.Equal(1, s.backend.Len())

	w, _ = s.doJSON(http.MethodDelete, fmt.Sprintf("/api/v1/contents/%d", content.ID), s.alice, nil)
	s.Equal(http.StatusOK, w.Code)

	w, env = s.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/contents/%d", content.ID), s.alice, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(common.ResultNotFoundContent, env.Code)
}

func (s *APISuite) TestCreateContent_BadExtension() {
	group := s.createGroup(s.alice, "가족")
	body, ct := s.multipartBody(map[string]string{"content": "x"}, "noext")
	w, env := s.do(http.MethodPost, fmt.Sprintf("/api/v1/groups/%d/contents", group.ID), s.alice, body, ct)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(common.ResultFailImageUpload, env.Code)
	s.Equal(0, s.backend.Len())
}

func (s *APISuite) TestCreateContent_MissingText() {
	group := s.createGroup(s.alice, "가족")
	body, ct := s.multipartBody(map[string]string{"latitude": "37.5"})
	w, env := s.do(http.MethodPost, fmt.Sprintf("/api/v1/groups/%d/contents", group.ID), s.alice, body, ct)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(common.ResultInvalidInput, env.Code)
	s.Contains(env.Message, "Content")
	s.Equal("null", string(env.Data))
}

func (s *APISuite) TestListContents() {
	g1 := s.createGroup(s.alice, "하나")
	g2 := s.createGroup(s.alice, "둘")
	s.createContent(s.alice, g1.ID, "one")
	s.createContent(s.alice, g2.ID, "two")

	w, env := s.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/contents?group_id=%d&group_id=%d", g1.ID, g2.ID), s.alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var page struct {
		Items []domain.ContentView `json:"items"`
		Meta  common.PageMeta      `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &page))
	s.Len(page.Items, 2)
	s.Equal(int64(2), page.Meta.Total)

	w, env = s.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/groups/%d/contents?page=1", g1.ID), s.alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().NoError(json.Unmarshal(env.Data, &page))
	s.Len(page.Items, 1)

	w, env = s.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/contents?group_id=%d,999", g1.ID), s.alice, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(common.ResultNotFoundGroup, env.Code)

	w, env = s.doJSON(http.MethodGet, "/api/v1/contents", s.alice, nil)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(common.ResultInvalidInput, env.Code)
}

func (s *APISuite) TestBookmarkToggle() {
	group := s.createGroup(s.alice, "가족")
	content := s.createContent(s.alice, group.ID, "북마크")
	path := fmt.Sprintf("/api/v1/contents/%d/bookmark", content.ID)

	_, env := s.doJSON(http.MethodPost, path, s.bob, nil)
	var toggle domain.BookmarkToggleResponse
	s.Require().NoError(json.Unmarshal(env.Data, &toggle))
	s.True(toggle.Bookmarked)

	_, env = s.doJSON(http.MethodGet, "/api/v1/users/me/bookmarks", s.bob, nil)
	var list domain.BookmarkListResponse
	s.Require().NoError(json.Unmarshal(env.Data, &list))
	s.Equal([]string{fmt.Sprint(content.ID)}, list.ContentIDs)

	_, env = s.doJSON(http.MethodPost, path, s.bob, nil)
	s.Require().NoError(json.Unmarshal(env.Data, &toggle))
	s.False(toggle.Bookmarked)

	_, env = s.doJSON(http.MethodGet, "/api/v1/users/me/bookmarks", s.bob, nil)
	s.Require().NoError(json.Unmarshal(env.Data, &list))
	s.Empty(list.ContentIDs)
}

func (s *APISuite) TestBookmark_DeletedContentLeavesList() {
	group := s.createGroup(s.alice, "가족")
	gone := s.createContent(s.alice, group.ID, "지울 글")
	kept := s.createContent(s.alice, group.ID, "남길 글")

	for _, id := range []int64{gone.ID, kept.ID} {
		w, _ := s.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/contents/%d/bookmark", id), s.bob, nil)
		s.Require().Equal(http.StatusOK, w.Code)
	}

	w, _ := s.doJSON(http.MethodDelete, fmt.Sprintf("/api/v1/contents/%d", gone.ID), s.alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)

	_, env := s.doJSON(http.MethodGet, "/api/v1/users/me/bookmarks", s.bob, nil)
	var list domain.BookmarkListResponse
	s.Require().NoError(json.Unmarshal(env.Data, &list))
	s.Equal([]string{fmt.Sprint(kept.ID)}, list.ContentIDs)

	// rebuilt index skips the deleted content too
	s.redis.Del("bookmarkbob@diary.com")
	_, env = s.doJSON(http.MethodGet, "/api/v1/users/me/bookmarks", s.bob, nil)
	s.Require().NoError(json.Unmarshal(env.Data, &list))
	s.Equal([]string{fmt.Sprint(kept.ID)}, list.ContentIDs)
}

func (s *APISuite) TestEmotion() {
	group := s.createGroup(s.alice, "가족")
	content := s.createContent(s.alice, group.ID, "감정")
	path := fmt.Sprintf("/api/v1/contents/%d/emotion", content.ID)

	w, env := s.doJSON(http.MethodPut, path, s.bob, map[string]int{"emotion_status": 11})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(common.ResultInvalidInput, env.Code)

	w, env = s.doJSON(http.MethodPut, path, s.bob, map[string]interface{}{})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(common.ResultInvalidInput, env.Code)

	w, env = s.doJSON(http.MethodPut, path, s.bob, map[string]int{"emotion_status": 0})
	s.Require().Equal(http.StatusOK, w.Code)
	var result domain.EmotionResult
	s.Require().NoError(json.Unmarshal(env.Data, &result))
	s.Equal(0, result.EmotionStatus)
}

func (s *APISuite) TestCommentsAndNotifications() {
	group := s.createGroup(s.alice, "가족")
	content := s.createContent(s.alice, group.ID, "댓글")

	w, env := s.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/contents/%d/comments", content.ID), s.bob, map[string]string{})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(common.ResultInvalidInput, env.Code)

	w, env = s.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/contents/%d/comments", content.ID), s.bob, map[string]string{"comment_note": "좋아요"})
	s.Require().Equal(http.StatusCreated, w.Code)
	var comment domain.CommentResponse
	s.Require().NoError(json.Unmarshal(env.Data, &comment))

	w, _ = s.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/comments/%d/like", comment.ID), s.alice, nil)
	s.Equal(http.StatusOK, w.Code)

	w, env = s.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/contents/%d/comments", content.ID), s.alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var page domain.CommentPageResponse
	s.Require().NoError(json.Unmarshal(env.Data, &page))
	s.Require().Len(page.Comments, 1)
	s.Equal(int64(1), page.Comments[0].LikeCount)
	s.True(page.Comments[0].Liked)

	w, env = s.doJSON(http.MethodDelete, fmt.Sprintf("/api/v1/comments/%d", comment.ID), s.alice, nil)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(common.ResultNotMatchedUserComment, env.Code)

	w, env = s.doJSON(http.MethodGet, "/api/v1/users/me/notifications", s.alice, nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var notifications struct {
		Items []domain.Notification `json:"items"`
	}
	s.Require().NoError(json.Unmarshal(env.Data, &notifications))
	s.Require().Len(notifications.Items, 1)

	w, env = s.doJSON(http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d/read", notifications.Items[0].ID), s.bob, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(common.ResultNotFoundNotification, env.Code)

	w, _ = s.doJSON(http.MethodPatch, fmt.Sprintf("/api/v1/notifications/%d/read", notifications.Items[0].ID), s.alice, nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APISuite) TestLocalizedMessage() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/999", nil)
	req.Header.Set("Authorization", "Bearer "+s.alice)
	req.Header.Set("Accept-Language", "en")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	s.Equal("Group not found", env.Message)
}

func (s *APISuite) TestWithdraw() {
	w, _ := s.doJSON(http.MethodDelete, "/api/v1/users/me", s.bob, nil)
	s.Equal(http.StatusOK, w.Code)

	w, env := s.doJSON(http.MethodGet, "/api/v1/users/me", s.bob, nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(common.ResultNotFoundUser, env.Code)
}
