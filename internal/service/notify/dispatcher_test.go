package notify

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"caseflow-service/internal/domain/cases"
	"caseflow-service/internal/domain/customer"
	"caseflow-service/internal/service/appsettings"
	"caseflow-service/internal/store/memory"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeEmail struct {
	calls atomic.Int64
	fail  bool
}

func (f *fakeEmail) Configured() bool { return true }
func (f *fakeEmail) Send(ctx context.Context, to, subject, body string) error {
	f.calls.Add(1)
	if f.fail {
		return errors.New("smtp down")
	}
	return nil
}

type fakeSMS struct {
	calls atomic.Int64
	fail  bool
}

func (f *fakeSMS) Configured() bool { return true }
func (f *fakeSMS) Send(ctx context.Context, to, body string) error {
	f.calls.Add(1)
	if f.fail {
		return errors.New("gateway down")
	}
	return nil
}

func newDispatcher(t *testing.T, email *fakeEmail, sms *fakeSMS) *Dispatcher {
	t.Helper()
	settings := appsettings.NewService(memory.New(nil).Settings(), zap.NewNop())
	return NewDispatcher(settings, email, sms, "Acme Repairs", zap.NewNop())
}

func testCustomer(emailOK, smsOK bool) *customer.Customer {
	return &customer.Customer{
		ID:    "cust-1",
		Name:  "A. Lee",
		Phone: "5551230000",
		Email: "a@x.com",
		Prefs: customer.NotificationPrefs{Email: emailOK, SMS: smsOK},
	}
}

func testCase() *cases.Case {
	return &cases.Case{ID: "case-1", Model: "TV", Serial: "sn-1", Status: cases.StatusNew}
}

func TestBothChannelsFire(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	d := newDispatcher(t, email, sms)

	res := d.CaseCreated(context.Background(), testCustomer(true, true), testCase())

	assert.True(t, res.EmailSent)
	assert.True(t, res.SMSSent)
	assert.Equal(t, int64(1), email.calls.Load())
	assert.Equal(t, int64(1), sms.calls.Load())
}

func TestEmailPrefOffNeverAttemptsSend(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	d := newDispatcher(t, email, sms)

	res := d.CaseCreated(context.Background(), testCustomer(false, true), testCase())

	assert.False(t, res.EmailSent)
	assert.True(t, res.SMSSent)
	assert.Equal(t, int64(0), email.calls.Load(), "disabled preference must mean zero channel calls")
}

func TestChannelFailureIsIsolated(t *testing.T) {
	email := &fakeEmail{fail: true}
	sms := &fakeSMS{}
	d := newDispatcher(t, email, sms)

	res := d.CaseStatusChanged(context.Background(), testCustomer(true, true), testCase(), cases.StatusNew, cases.StatusClosed)

	assert.False(t, res.EmailSent)
	assert.True(t, res.SMSSent, "sms must not be affected by the email failure")
}

func TestMissingAddressSkipsChannel(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	d := newDispatcher(t, email, sms)

	cust := testCustomer(true, true)
	cust.Email = ""
	res := d.CaseCreated(context.Background(), cust, testCase())

	assert.False(t, res.EmailSent)
	assert.Equal(t, int64(0), email.calls.Load())
	assert.True(t, res.SMSSent)
}
