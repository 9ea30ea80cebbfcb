package slackapi

import (
	"fmt"
	"log"
	"strings"

	"slackqr_go/models"
)

// Размер страницы листинга каналов. Slack отдаёт курсор продолжения,
// по которому выбирается следующая страница.
const listPageSize = 200

// isChannelID распознаёт готовый ID канала: первая буква из фиксированного
// набора и длина от девяти символов. Такой референс резолвить не нужно.
func isChannelID(ref string) bool {
	if len(ref) < 9 {
		return false
	}
	switch ref[0] {
	case 'C', 'G', 'D', 'Z':
		return true
	}
	return false
}

// ResolveChannel превращает референс канала (имя или ID) в стабильный ID.
// ID возвращается как есть без обращения к API; имя ищется точным
// сравнением по всем страницам листинга, выигрывает первое совпадение.
func (s *Service) ResolveChannel(ref string) (string, error) {
	if ref == "" {
		return "", &ValidationError{Msg: "channel is required"}
	}
	if isChannelID(ref) {
		log.Printf("[SLACK] Референс уже является ID канала: %s", ref)
		return ref, nil
	}

	name := strings.TrimLeft(ref, "#")
	log.Printf("[SLACK] Поиск канала по имени: %s", name)

	cursor := ""
	for {
		channels, next, err := s.api.ListConversations(cursor, listPageSize)
		if err != nil {
			log.Printf("[SLACK ERROR] Листинг каналов не удался: %v", err)
			return "", fmt.Errorf("conversations list: %w", err)
		}
		for _, ch := range channels {
			if ch.Name == name {
				log.Printf("[SLACK] Канал %s найден, ID=%s", name, ch.ID)
				return ch.ID, nil
			}
		}
		if next == "" {
			break
		}
		cursor = next
	}

	return "", fmt.Errorf("%w: %s", ErrChannelNotFound, name)
}

// ListMemberChannels возвращает все каналы, где бот состоит участником.
// Порядок повторяет порядок листинга; бэкенд его не гарантирует,
// поэтому между вызовами он может отличаться.
func (s *Service) ListMemberChannels() ([]models.Channel, error) {
	var result []models.Channel
	err := s.retry.Do(func() error {
		result = result[:0]
		cursor := ""
		for {
			channels, next, err := s.api.ListConversations(cursor, listPageSize)
			if err != nil {
				return err
			}
			for _, ch := range channels {
				if !ch.IsMember {
					continue
				}
				result = append(result, models.Channel{
					ID:          ch.ID,
					Name:        ch.Name,
					IsPrivate:   ch.IsPrivate,
					MemberCount: ch.NumMembers,
				})
			}
			if next == "" {
				return nil
			}
			cursor = next
		}
	})
	if err != nil {
		log.Printf("[SLACK ERROR] Не удалось получить список каналов: %v", err)
		return nil, fmt.Errorf("conversations list: %w", err)
	}
	log.Printf("[SLACK] Бот состоит в %d каналах", len(result))
	return result, nil
}
