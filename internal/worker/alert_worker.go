package worker

// alert_worker.go
// Processes low-stock alert jobs from QueueAlerts and emails the shop owner.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vinnxoficialai-cyber/vinnxaiecoo/internal/infra"

	"github.com/rs/zerolog/log"
)

// AlertWorker sends low-stock notification emails via SMTP.
type AlertWorker struct {
	mailer *infra.Mailer
	to     string
}

// NewAlertWorker creates an AlertWorker. to is the operator address that
// receives every alert.
func NewAlertWorker(mailer *infra.Mailer, to string) *AlertWorker {
	return &AlertWorker{mailer: mailer, to: to}
}

// Process sends the low-stock email for one job.
func (w *AlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload LowStockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_worker: invalid payload")
		return err
	}
	if w.to == "" {
		log.Warn().Msg("alert_worker: no recipient configured — skipping")
		return nil
	}

	subject := fmt.Sprintf("Estoque baixo: %s", payload.ProductName)
	body := fmt.Sprintf(
		"O produto %q ficou com %d unidade(s) em estoque (mínimo configurado: %d).\n\nReponha o estoque para não perder vendas.",
		payload.ProductName, payload.StockQuantity, payload.MinStockLevel,
	)

	if err := w.mailer.Send(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("to", w.to).Msg("alert_worker: failed to send email")
		return err
	}
	log.Info().Str("product", payload.ProductName).Msg("alert_worker: low-stock alert sent")
	return nil
}
