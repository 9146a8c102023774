package payment

import (
	"context"

	"github.com/kevin07696/cybersource-gateway/internal/adapters/cybersource"
	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/kevin07696/cybersource-gateway/internal/domain/ports"
	"github.com/kevin07696/cybersource-gateway/pkg/observability"
	"go.uber.org/zap"
)

// Service implements the Gateway port: it resolves the merchant profile,
// builds the request document, issues the transport call, parses the reply,
// and resolves the outcome. All validation happens before any network call;
// no partial request is ever sent for known-invalid input.
type Service struct {
	profiles  ports.ProfileProvider
	builder   *cybersource.RequestBuilder
	transport *cybersource.Transport
	logger    *zap.Logger
}

// NewService creates the payment service
func NewService(profiles ports.ProfileProvider, transport *cybersource.Transport, logger *zap.Logger) ports.Gateway {
	return &Service{
		profiles:  profiles,
		builder:   cybersource.NewRequestBuilder(logger),
		transport: transport,
		logger:    logger,
	}
}

// Authorize runs a card-present authorization.
func (s *Service) Authorize(ctx context.Context, profile string, params domain.AuthorizeParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindAuthorize, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.Authorize(p, params)
	})
}

// AuthorizeApplePay runs an Apple Pay authorization. The encrypted payload
// is classified first and must match the Apple Pay scheme.
func (s *Service) AuthorizeApplePay(ctx context.Context, profile string, params domain.WalletAuthorizeParams) (*domain.GatewayReply, error) {
	if err := s.requireWalletType(params.EncryptedPayload, domain.WalletTypeApplePay); err != nil {
		return nil, err
	}
	return s.execute(ctx, domain.KindAuthorizeApplePay, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.AuthorizeApplePay(p, params)
	})
}

// AuthorizeAndroidPay runs an Android Pay authorization. The encrypted
// payload is classified first and must match the Android Pay scheme.
func (s *Service) AuthorizeAndroidPay(ctx context.Context, profile string, params domain.WalletAuthorizeParams) (*domain.GatewayReply, error) {
	if err := s.requireWalletType(params.EncryptedPayload, domain.WalletTypeAndroidPay); err != nil {
		return nil, err
	}
	return s.execute(ctx, domain.KindAuthorizeAndroidPay, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.AuthorizeAndroidPay(p, params)
	})
}

// Capture settles a prior authorization.
func (s *Service) Capture(ctx context.Context, profile string, params domain.CaptureParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindCapture, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.Capture(p, params)
	})
}

// Refund returns funds from a prior capture.
func (s *Service) Refund(ctx context.Context, profile string, params domain.RefundParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindRefund, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.Refund(p, params)
	})
}

// Void cancels a prior capture or credit before settlement.
func (s *Service) Void(ctx context.Context, profile string, params domain.VoidParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindVoid, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.Void(p, params)
	})
}

// Credit issues a follow-on credit against a prior capture.
func (s *Service) Credit(ctx context.Context, profile string, params domain.CreditParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindCredit, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.Credit(p, params)
	})
}

// ReverseAuth releases the hold placed by a prior authorization.
func (s *Service) ReverseAuth(ctx context.Context, profile string, params domain.ReverseAuthParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindAuthReversal, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.ReverseAuth(p, params)
	})
}

// CreateToken stores a card on file and returns a subscription id.
func (s *Service) CreateToken(ctx context.Context, profile string, params domain.CreateTokenParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindCreateToken, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.CreateToken(p, params)
	})
}

// RetrieveToken fetches a stored card by subscription id.
func (s *Service) RetrieveToken(ctx context.Context, profile string, params domain.RetrieveTokenParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindRetrieveToken, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.RetrieveToken(p, params)
	})
}

// DeleteToken removes a stored card by subscription id.
func (s *Service) DeleteToken(ctx context.Context, profile string, params domain.DeleteTokenParams) (*domain.GatewayReply, error) {
	return s.execute(ctx, domain.KindDeleteToken, profile, func(p *domain.MerchantProfile) ([]byte, error) {
		return s.builder.DeleteToken(p, params)
	})
}

// requireWalletType classifies the encrypted payload and rejects payloads
// that do not belong to the requested scheme, unrecognized ones included.
func (s *Service) requireWalletType(encoded string, want domain.WalletType) error {
	got, err := domain.DetectPaymentType(encoded)
	if err != nil {
		return err
	}
	if got != want {
		return domain.NewDomainError(domain.ErrorCodeWalletTypeMismatch, "wallet payload does not match the requested payment scheme").
			WithDetail("expected", string(want)).
			WithDetail("detected", string(got))
	}
	return nil
}

// execute runs the shared pipeline for a single operation.
func (s *Service) execute(ctx context.Context, kind domain.RequestKind, profileName string, build func(*domain.MerchantProfile) ([]byte, error)) (reply *domain.GatewayReply, err error) {
	done := observability.TrackGatewayRequest(string(kind))
	defer func() {
		outcome := "accepted"
		if err != nil {
			outcome = string(domain.GetErrorCode(err))
		}
		done(outcome)
	}()

	// Profiles are resolved fresh on every call so configuration can be
	// hot-swapped between calls.
	profile, err := s.profiles.Profile(ctx, profileName)
	if err != nil {
		return nil, domain.WrapError(domain.ErrorCodeMerchantConfigMissing, "failed to resolve merchant profile", err)
	}
	if !profile.IsUsable() {
		s.logger.Warn("Merchant profile is missing or incomplete",
			zap.String("profile", profileName),
			zap.String("kind", string(kind)),
		)
		return nil, domain.NewDomainError(domain.ErrorCodeMerchantConfigMissing, "merchant profile is not configured").
			WithDetail("profile", profileName)
	}

	doc, err := build(profile)
	if err != nil {
		return nil, err
	}

	raw, err := s.transport.Send(ctx, doc)
	if err != nil {
		return nil, err
	}

	reply, err = cybersource.ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	return s.resolve(kind, reply)
}

// resolve translates the parsed reply into the caller-facing result.
func (s *Service) resolve(kind domain.RequestKind, reply *domain.GatewayReply) (*domain.GatewayReply, error) {
	outcome := cybersource.ResolveOutcome(reply)

	switch outcome.Status {
	case domain.OutcomeAccepted:
		s.logger.Info("Gateway accepted request",
			zap.String("kind", string(kind)),
			zap.String("merchant_reference_code", reply.MerchantReferenceCode),
			zap.String("request_id", reply.RequestID),
		)
		return reply, nil

	case domain.OutcomeRejected:
		description := ""
		if info, ok := cybersource.LookupReasonCode(outcome.ReasonCode); ok {
			description = info.Description
		}
		s.logger.Warn("Gateway rejected request",
			zap.String("kind", string(kind)),
			zap.String("merchant_reference_code", reply.MerchantReferenceCode),
			zap.Int("reason_code", outcome.ReasonCode),
			zap.String("reason", description),
		)
		return nil, domain.NewDomainError(domain.ErrorCodeGatewayRejected, "payment rejected by gateway").
			WithDetail("reason_code", outcome.ReasonCode).
			WithDetail("reason", description)

	case domain.OutcomeFault:
		s.logger.Error("Gateway returned SOAP fault",
			zap.String("kind", string(kind)),
			zap.String("fault_code", outcome.FaultCode),
			zap.String("fault_message", outcome.FaultMessage),
		)
		return nil, domain.NewDomainError(domain.ErrorCodeGatewayFault, "payment gateway fault").
			WithDetail("fault_code", outcome.FaultCode).
			WithDetail("fault_message", outcome.FaultMessage)

	default:
		s.logger.Error("Gateway response carried no usable outcome",
			zap.String("kind", string(kind)),
			zap.String("decision", reply.Decision),
		)
		return nil, domain.NewDomainError(domain.ErrorCodeUnknownResponse, "payment gateway response carried no decision or fault").
			WithDetail("decision", reply.Decision)
	}
}
