//go:build protogen

package roster

import (
	"context"
	"time"

	"github.com/flightops/flightline/libs/grpcx"
	rosterv1 "github.com/flightops/flightline/protos/gen/roster/v1"
	"github.com/flightops/flightline/services/scheduler-service/internal/model"
)

type grpcProvider struct {
	client rosterv1.RosterServiceClient
}

// NewRemoteProvider dials the central crew system. An empty address returns
// (nil, nil) so callers fall back to the DB provider.
func NewRemoteProvider(addr string) (Provider, error) {
	if addr == "" {
		return nil, nil
	}
	conn, err := grpcx.Dial(context.Background(), addr, grpcx.DialOptions{Timeout: 3 * time.Second})
	if err != nil {
		return nil, err
	}
	return &grpcProvider{client: rosterv1.NewRosterServiceClient(conn)}, nil
}

func (p *grpcProvider) RulesForDate(ctx context.Context, dutyDate string) ([]model.RosterRule, error) {
	resp, err := p.client.GetDutyRoster(ctx, &rosterv1.DutyRosterRequest{DutyDate: dutyDate})
	if err != nil {
		return nil, err
	}
	rules := make([]model.RosterRule, 0, len(resp.GetRules()))
	for _, r := range resp.GetRules() {
		rule := model.RosterRule{
			ID:           r.GetId(),
			InstructorID: r.GetInstructorId(),
			DutyDate:     dutyDate,
			StartTime:    r.GetStartTime(),
			EndTime:      r.GetEndTime(),
			IsActive:     r.GetIsActive(),
		}
		if r.GetVoidedAt() != nil {
			voidedAt := r.GetVoidedAt().AsTime()
			rule.VoidedAt = &voidedAt
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
