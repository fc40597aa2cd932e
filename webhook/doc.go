// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package webhook posts vote notifications to an optional external listener.

Notify is fire-and-forget: the event goes onto a buffered queue drained by
one worker goroutine, so webhook latency and failures never touch the vote
response. Test performs a synchronous delivery for the admin test endpoint
and does report errors.

	n := webhook.New(cfg.WebhookURL, cfg.WebhookEnabled)
	n.Notify(logEntry)          // async, errors only logged
	body, err := n.Test()       // sync, for POST /api/admin/webhook/test
*/
package webhook
