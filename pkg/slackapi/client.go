package slackapi

import (
	"bytes"

	"github.com/slack-go/slack"
)

// AuthInfo — сведения о сессии бота из auth.test.
type AuthInfo struct {
	Team  string
	User  string
	BotID string
}

// Conversation — запись листинга каналов в том объёме,
// который нужен сервису.
type Conversation struct {
	ID         string
	Name       string
	IsPrivate  bool
	IsMember   bool
	NumMembers int
}

// API — поверхность Slack, от которой зависит сервис. В тестах
// подменяется фейком, в бою реализуется Client поверх slack-go.
type API interface {
	AuthTest() (AuthInfo, error)
	// ListConversations возвращает страницу каналов (публичных и приватных)
	// и курсор продолжения; пустой курсор означает конец листинга.
	ListConversations(cursor string, limit int) ([]Conversation, string, error)
	ConversationInfo(channelID string) (Conversation, error)
	// UploadFile загружает файл с подписью в канал и возвращает ID файла.
	UploadFile(channelID, filename, comment string, content []byte) (string, error)
}

// Client — реализация API поверх официального SDK. Создаётся один раз
// при старте процесса и после этого не изменяется, поэтому безопасно
// переиспользуется всеми обработчиками.
type Client struct {
	api *slack.Client
}

func NewClient(token string) *Client {
	return &Client{api: slack.New(token)}
}

func (c *Client) AuthTest() (AuthInfo, error) {
	resp, err := c.api.AuthTest()
	if err != nil {
		return AuthInfo{}, err
	}
	return AuthInfo{Team: resp.Team, User: resp.User, BotID: resp.BotID}, nil
}

func (c *Client) ListConversations(cursor string, limit int) ([]Conversation, string, error) {
	channels, next, err := c.api.GetConversations(&slack.GetConversationsParameters{
		Types:  []string{"public_channel", "private_channel"},
		Cursor: cursor,
		Limit:  limit,
	})
	if err != nil {
		return nil, "", err
	}
	out := make([]Conversation, 0, len(channels))
	for _, ch := range channels {
		out = append(out, convConversation(ch))
	}
	return out, next, nil
}

func (c *Client) ConversationInfo(channelID string) (Conversation, error) {
	ch, err := c.api.GetConversationInfo(&slack.GetConversationInfoInput{
		ChannelID:         channelID,
		IncludeNumMembers: true,
	})
	if err != nil {
		return Conversation{}, err
	}
	return convConversation(*ch), nil
}

func (c *Client) UploadFile(channelID, filename, comment string, content []byte) (string, error) {
	summary, err := c.api.UploadFileV2(slack.UploadFileV2Parameters{
		Channel:        channelID,
		Reader:         bytes.NewReader(content),
		FileSize:       len(content),
		Filename:       filename,
		InitialComment: comment,
	})
	if err != nil {
		return "", err
	}
	return summary.ID, nil
}

func convConversation(ch slack.Channel) Conversation {
	return Conversation{
		ID:         ch.ID,
		Name:       ch.Name,
		IsPrivate:  ch.IsPrivate,
		IsMember:   ch.IsMember,
		NumMembers: ch.NumMembers,
	}
}
