package ports

import (
	"context"

	"github.com/kevin07696/cybersource-gateway/internal/domain"
)

// Gateway is the public operation surface of the payment integration layer.
// Every method validates its inputs and the merchant profile before any
// network call; no partial request is ever sent for known-invalid input.
//
// Accepted responses return the parsed reply. Business rejections, SOAP
// faults, transport failures, and unparseable outcomes return a
// domain.DomainError carrying the corresponding error code.
type Gateway interface {
	Authorize(ctx context.Context, profile string, params domain.AuthorizeParams) (*domain.GatewayReply, error)
	AuthorizeApplePay(ctx context.Context, profile string, params domain.WalletAuthorizeParams) (*domain.GatewayReply, error)
	AuthorizeAndroidPay(ctx context.Context, profile string, params domain.WalletAuthorizeParams) (*domain.GatewayReply, error)

	Capture(ctx context.Context, profile string, params domain.CaptureParams) (*domain.GatewayReply, error)
	Refund(ctx context.Context, profile string, params domain.RefundParams) (*domain.GatewayReply, error)
	Void(ctx context.Context, profile string, params domain.VoidParams) (*domain.GatewayReply, error)
	Credit(ctx context.Context, profile string, params domain.CreditParams) (*domain.GatewayReply, error)
	ReverseAuth(ctx context.Context, profile string, params domain.ReverseAuthParams) (*domain.GatewayReply, error)

	CreateToken(ctx context.Context, profile string, params domain.CreateTokenParams) (*domain.GatewayReply, error)
	RetrieveToken(ctx context.Context, profile string, params domain.RetrieveTokenParams) (*domain.GatewayReply, error)
	DeleteToken(ctx context.Context, profile string, params domain.DeleteTokenParams) (*domain.GatewayReply, error)
}
