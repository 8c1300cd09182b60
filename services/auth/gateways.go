package auth

import "context"

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/xsnapster/backend/services/auth NotifierGW

// NotifierGW delivers one-time passcodes over an external channel
// (email or SMS provider behind the notifier service).
type NotifierGW interface {
	SendOTP(ctx context.Context, channel, recipient, code string) error
}
