package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"notification-hub/internal/notification"
	"notification-hub/pkg/channel"
)

// HealthCheck verifies every channel concurrently. A probe that fails or
// panics marks its own channel false and never affects the others.
func (uc *implUseCase) HealthCheck(ctx context.Context) notification.HealthReport {
	probes := []struct {
		name    channel.Name
		adapter channel.Adapter
	}{
		{channel.Mail, uc.mail},
		{channel.Sheet, uc.sheet},
		{channel.Chat, uc.chat},
		{channel.Bot, uc.bot},
	}

	results := make([]bool, len(probes))
	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			results[i] = uc.probe(ctx, p.name, p.adapter)
			return nil
		})
	}
	_ = g.Wait()

	report := make(notification.HealthReport, len(probes))
	for i, p := range probes {
		report[p.name] = results[i]
		observeProbe(p.name, results[i])
	}
	return report
}

func (uc *implUseCase) probe(ctx context.Context, name channel.Name, a channel.Adapter) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "notification.usecase.HealthCheck: channel=%s: probe panicked: %v", name, r)
			ok = false
		}
	}()

	ok = a.Verify(ctx)
	if !ok {
		uc.l.Warnf(ctx, "notification.usecase.HealthCheck: channel=%s: unhealthy", name)
	}
	return ok
}
