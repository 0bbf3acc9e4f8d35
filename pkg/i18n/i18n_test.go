package i18n

import "testing"

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", LocaleKo},
		{"ko", LocaleKo},
		{"ko-KR,ko;q=0.9,en-US;q=0.8", LocaleKo},
		{"en-US,en;q=0.9", LocaleEn},
		{"fr-FR,en;q=0.5", LocaleEn},
		{"fr-FR,fr;q=0.9", LocaleKo}, // unsupported → fallback
	}

	for _, tt := range tests {
		got := ParseAcceptLanguage(tt.header)
		if got != tt.want {
			t.Errorf("ParseAcceptLanguage(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestResultKey(t *testing.T) {
	if got := ResultKey(2101); got != "result.2101" {
		t.Errorf("ResultKey(2101) = %q", got)
	}
	if got := ResultKey(-1); got != "result.-1" {
		t.Errorf("ResultKey(-1) = %q", got)
	}
	if got := ResultKey(0); got != "result.0" {
		t.Errorf("ResultKey(0) = %q", got)
	}
}

func TestBundleTranslation(t *testing.T) {
	b := Default()

	if got := b.T(LocaleKo, ResultKey(2101)); got != "존재하지 않는 그룹" {
		t.Errorf("ko 2101 = %q", got)
	}
	if got := b.T(LocaleEn, ResultKey(2101)); got != "Group not found" {
		t.Errorf("en 2101 = %q", got)
	}

	// fallback to Korean when the locale lacks the key
	b2 := NewBundle(LocaleKo)
	b2.LoadMessages(LocaleKo, map[string]string{"only.ko": "한국어"})
	if got := b2.T(LocaleEn, "only.ko"); got != "한국어" {
		t.Errorf("fallback = %q", got)
	}

	if got := b.T(LocaleEn, "unknown.key"); got != "unknown.key" {
		t.Errorf("unknown key = %q, want key itself", got)
	}

	if got := b.T(LocaleKo, "notification.comment", "다이어리"); got != "다이어리님이 회원님의 게시물에 댓글을 남겼습니다" {
		t.Errorf("format args = %q", got)
	}
}

func TestDefaultMessagesParity(t *testing.T) {
	msgs := DefaultMessages()
	for key := range msgs[LocaleKo] {
		if _, ok := msgs[LocaleEn][key]; !ok {
			t.Errorf("en missing key %q", key)
		}
	}
}
