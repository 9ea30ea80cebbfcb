package slackapi

import (
	"fmt"
	"time"
)

// fakeAPI — настраиваемая подмена Slack API для тестов. Каждый метод
// считает вызовы и делегирует в соответствующую функцию; не заданная
// функция означает успешный пустой ответ.
type fakeAPI struct {
	authFunc   func() (AuthInfo, error)
	listFunc   func(cursor string, limit int) ([]Conversation, string, error)
	infoFunc   func(channelID string) (Conversation, error)
	uploadFunc func(channelID, filename, comment string, content []byte) (string, error)

	authCalls   int
	listCalls   int
	infoCalls   int
	uploadCalls int
}

func (f *fakeAPI) AuthTest() (AuthInfo, error) {
	f.authCalls++
	if f.authFunc == nil {
		return AuthInfo{}, nil
	}
	return f.authFunc()
}

func (f *fakeAPI) ListConversations(cursor string, limit int) ([]Conversation, string, error) {
	f.listCalls++
	if f.listFunc == nil {
		return nil, "", nil
	}
	return f.listFunc(cursor, limit)
}

func (f *fakeAPI) ConversationInfo(channelID string) (Conversation, error) {
	f.infoCalls++
	if f.infoFunc == nil {
		return Conversation{ID: channelID}, nil
	}
	return f.infoFunc(channelID)
}

func (f *fakeAPI) UploadFile(channelID, filename, comment string, content []byte) (string, error) {
	f.uploadCalls++
	if f.uploadFunc == nil {
		return "F000000000", nil
	}
	return f.uploadFunc(channelID, filename, comment, content)
}

// pagedList раздаёт страницы листинга по курсору: пустой курсор — первая
// страница, дальше курсоры вида "p1", "p2"; последняя страница отдаёт
// пустой курсор продолжения.
func pagedList(pages [][]Conversation) func(cursor string, limit int) ([]Conversation, string, error) {
	return func(cursor string, limit int) ([]Conversation, string, error) {
		idx := 0
		if cursor != "" {
			if _, err := fmt.Sscanf(cursor, "p%d", &idx); err != nil {
				return nil, "", fmt.Errorf("bad cursor %q", cursor)
			}
		}
		if idx >= len(pages) {
			return nil, "", fmt.Errorf("cursor %q out of range", cursor)
		}
		next := ""
		if idx+1 < len(pages) {
			next = fmt.Sprintf("p%d", idx+1)
		}
		return pages[idx], next, nil
	}
}

// fastRetry — политика с микроскопическими паузами, чтобы тесты
// повторов не спали заметное время.
func fastRetry() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     3,
		InitialInterval: time.Millisecond,
		MaxInterval:     4 * time.Millisecond,
	}
}
