package i18n

import "strconv"

// ResultKey message key of a numeric result code ("result.2101")
func ResultKey(code int) string {
	return "result." + strconv.Itoa(code)
}

// DefaultMessages returns built-in translations for all supported locales.
func DefaultMessages() map[Locale]map[string]string {
	return map[Locale]map[string]string{
		LocaleKo: koMessages,
		LocaleEn: enMessages,
	}
}

var koMessages = map[string]string{
	"result.0":    "성공",
	"result.-1":   "실패",
	"result.1000": "잘못된 요청",
	"result.1001": "인증 실패",
	"result.2000": "파일 업로드 실패",
	"result.2100": "존재하지 않는 사용자",
	"result.2101": "존재하지 않는 그룹",
	"result.2102": "그룹 이름 최소 글자(1자) 미만",
	"result.2103": "그룹 이름 최대 글자(12자) 초과",
	"result.2104": "가입한 그룹이 없는 경우",
	"result.2200": "존재하지 않는 게시물",
	"result.2201": "게시물 작성자가 아닙니다",
	"result.2202": "존재하지 않는 이미지",
	"result.2300": "존재하지 않는 댓글",
	"result.2301": "댓글 작성자가 아닙니다",
	"result.2400": "존재하지 않는 알림",

	"notification.comment": "%s님이 회원님의 게시물에 댓글을 남겼습니다",
}

var enMessages = map[string]string{
	"result.0":    "Success",
	"result.-1":   "Failure",
	"result.1000": "Invalid request",
	"result.1001": "Authentication failed",
	"result.2000": "File upload failed",
	"result.2100": "User not found",
	"result.2101": "Group not found",
	"result.2102": "Group name is shorter than 1 character",
	"result.2103": "Group name is longer than 12 characters",
	"result.2104": "User has not joined any group",
	"result.2200": "Content not found",
	"result.2201": "Content does not belong to the user",
	"result.2202": "Image not found",
	"result.2300": "Comment not found",
	"result.2301": "Comment does not belong to the user",
	"result.2400": "Notification not found",

	"notification.comment": "%s commented on your post",
}
