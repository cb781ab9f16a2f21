// internal/service/notify/dispatcher.go
package notify

import (
	"context"
	"fmt"
	"sync"

	"caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/service/appsettings"

	"go.uber.org/zap"
)

// EmailSender is the outbound email channel.
type EmailSender interface {
	Configured() bool
	Send(ctx context.Context, to, subject, body string) error
}

// SMSSender is the outbound SMS channel.
type SMSSender interface {
	Configured() bool
	Send(ctx context.Context, to, body string) error
}

// Result reports per-channel outcomes back to the caller, for user-facing
// "email sent: yes/no" feedback. It is not persisted and not retried.
type Result struct {
	EmailSent bool `json:"email_sent"`
	SMSSent   bool `json:"sms_sent"`
}

// Dispatcher sends best-effort case notifications. Each channel is gated
// by the global toggle AND the customer's own preference flag; the two
// sends run concurrently and a failure on one never affects the other.
// Nothing here ever propagates an error into the mutation path.
type Dispatcher struct {
	settings *appsettings.Service
	email    EmailSender
	sms      SMSSender
	company  string
	logger   *zap.Logger
}

func NewDispatcher(settings *appsettings.Service, email EmailSender, sms SMSSender, company string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		settings: settings,
		email:    email,
		sms:      sms,
		company:  company,
		logger:   logger,
	}
}

// CaseCreated notifies the customer that a new case was opened.
func (d *Dispatcher) CaseCreated(ctx context.Context, cust *customer.Customer, c *cases.Case) Result {
	subject := fmt.Sprintf("%s: repair case opened", d.company)
	body := fmt.Sprintf("Hello %s, a repair case for your %s (SN %s) has been opened with status %q. We will keep you posted.",
		cust.Name, c.Model, c.Serial, c.Status)
	return d.send(ctx, cust, subject, body)
}

// CaseStatusChanged notifies the customer about a status transition.
func (d *Dispatcher) CaseStatusChanged(ctx context.Context, cust *customer.Customer, c *cases.Case, oldStatus, newStatus cases.Status) Result {
	subject := fmt.Sprintf("%s: repair case update", d.company)
	body := fmt.Sprintf("Hello %s, the status of your %s (SN %s) changed from %q to %q.",
		cust.Name, c.Model, c.Serial, oldStatus, newStatus)
	return d.send(ctx, cust, subject, body)
}

func (d *Dispatcher) send(ctx context.Context, cust *customer.Customer, subject, body string) Result {
	st, err := d.settings.Get(ctx)
	if err != nil {
		d.logger.Warn("notification settings unavailable, skipping dispatch", zap.Error(err))
		return Result{}
	}

	var res Result
	var wg sync.WaitGroup

	if st.Notifications.EmailEnabled && cust.Prefs.Email && cust.Email != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !d.email.Configured() {
				return
			}
			if err := d.email.Send(ctx, cust.Email, subject, body); err != nil {
				d.logger.Warn("email notification failed",
					zap.String("customer_id", cust.ID),
					zap.Error(err),
				)
				return
			}
			res.EmailSent = true
		}()
	}

	if st.Notifications.SMSEnabled && cust.Prefs.SMS && cust.Phone != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !d.sms.Configured() {
				return
			}
			if err := d.sms.Send(ctx, cust.Phone, body); err != nil {
				d.logger.Warn("sms notification failed",
					zap.String("customer_id", cust.ID),
					zap.Error(err),
				)
				return
			}
			res.SMSSent = true
		}()
	}

	wg.Wait()
	return res
}
