package slackapi

import (
	"fmt"
	"log"

	"slackqr_go/models"
)

// Broadcast последовательно отправляет QR-код в каждый канал списка.
// Ошибка по одному каналу фиксируется в результате и не прерывает
// обработку остальных; порядок результатов повторяет порядок refs.
func (s *Service) Broadcast(refs []string, req models.QRRequest) (models.BroadcastReport, error) {
	if req.APKURL == "" {
		return models.BroadcastReport{}, &ValidationError{Msg: "apk_url is required"}
	}
	if len(refs) == 0 {
		return models.BroadcastReport{}, &ValidationError{Msg: "channels must be a non-empty array"}
	}

	report := models.BroadcastReport{
		TotalTargets: len(refs),
		Results:      make([]models.DeliveryResult, 0, len(refs)),
	}
	for _, ref := range refs {
		result, err := s.Deliver(ref, req)
		if err != nil {
			log.Printf("[SLACK ERROR] Рассылка в %s не удалась: %v", ref, err)
			report.FailedCount++
			report.Results = append(report.Results, models.DeliveryResult{
				ChannelRef: ref,
				Status:     models.DeliveryStatusFailed,
				Error:      err.Error(),
			})
			continue
		}
		report.SuccessCount++
		report.Results = append(report.Results, result)
	}

	log.Printf("[SLACK] Рассылка завершена: %d/%d успешно", report.SuccessCount, report.TotalTargets)
	return report, nil
}

// BroadcastAll рассылает QR-код во все каналы, где состоит бот.
// Пустой список каналов — ошибка валидации, а не пустой отчёт:
// рассылка «в никуда» почти наверняка означает ошибку конфигурации.
func (s *Service) BroadcastAll(req models.QRRequest) (models.BroadcastReport, error) {
	if req.APKURL == "" {
		return models.BroadcastReport{}, &ValidationError{Msg: "apk_url is required"}
	}

	channels, err := s.ListMemberChannels()
	if err != nil {
		return models.BroadcastReport{}, fmt.Errorf("channel listing: %w", err)
	}
	if len(channels) == 0 {
		return models.BroadcastReport{}, &ValidationError{Msg: "no channels available"}
	}

	report := models.BroadcastReport{
		TotalTargets: len(channels),
		Results:      make([]models.DeliveryResult, 0, len(channels)),
	}
	for _, ch := range channels {
		result, err := s.Deliver(ch.ID, req)
		if err != nil {
			log.Printf("[SLACK ERROR] Рассылка в %s (%s) не удалась: %v", ch.Name, ch.ID, err)
			report.FailedCount++
			report.Results = append(report.Results, models.DeliveryResult{
				ChannelRef:  ch.ID,
				ChannelName: ch.Name,
				Status:      models.DeliveryStatusFailed,
				Error:       err.Error(),
			})
			continue
		}
		result.ChannelName = ch.Name
		report.SuccessCount++
		report.Results = append(report.Results, result)
	}

	log.Printf("[SLACK] Рассылка по всем каналам завершена: %d/%d успешно", report.SuccessCount, report.TotalTargets)
	return report, nil
}
