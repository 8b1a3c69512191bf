package notifier

import "context"

// PushGW sends push notices to driver devices
type PushGW interface {
	NotifyDriver(ctx context.Context, driverPhone, message string) error
}

// SMSGW sends text messages to riders
type SMSGW interface {
	SendSMS(ctx context.Context, phone, message string) error
}
