// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-password-vault/internal/logger"
	"github.com/MKhiriev/go-password-vault/models"
)

const defaultTickInterval = time.Second

// CodeSource produces the current one-time code.
type CodeSource func(ctx context.Context) (models.OneTimeCode, error)

// CodeTicker is a [Worker] that refreshes a one-time code on every tick and
// hands it to a callback, for countdown displays.
type CodeTicker struct {
	source   CodeSource
	emit     func(models.OneTimeCode)
	interval time.Duration
}

// NewCodeTicker returns a ticker calling source every interval (one second
// when interval is not positive) and passing each code to emit.
func NewCodeTicker(source CodeSource, interval time.Duration, emit func(models.OneTimeCode)) *CodeTicker {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return &CodeTicker{source: source, emit: emit, interval: interval}
}

// Run emits a code immediately and then on every tick until ctx is
// cancelled. A failing source stops the ticker, because the secret it reads
// does not change between ticks.
func (c *CodeTicker) Run(ctx context.Context) {
	log := logger.FromContext(ctx)

	if !c.tick(ctx) {
		return
	}

	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("code ticker stopped")
			return
		case <-t.C:
			if !c.tick(ctx) {
				return
			}
		}
	}
}

func (c *CodeTicker) tick(ctx context.Context) bool {
	code, err := c.source(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "CodeTicker.Run").Msg("failed to generate one-time code")
		return false
	}
	c.emit(code)
	return true
}
