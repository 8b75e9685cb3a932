package usecase

import (
	"context"

	cronUC "github.com/MMN3003/carbondesk/src/cron/usecase"
	"github.com/google/uuid"
)

var RegistryProbeCronID = uuid.MustParse("62444ba0-b2dd-4b8f-afee-c04f7b2ab6f0")

// NewCronService schedules the periodic registry probe. An empty schedule
// leaves it disabled.
func NewCronService(c *cronUC.Service, schedule string, s *Service) error {
	if schedule == "" {
		return nil
	}
	_, err := c.Schedule(schedule, RegistryProbeCronID, "registry-probe", func(ctx context.Context) error {
		return s.Probe(ctx)
	})
	return err
}
