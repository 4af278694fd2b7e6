// Package chat mints Amazon IVS Chat tokens. Message delivery itself is
// IVS-managed; this service only decides what a participant may do.
package chat

import (
	"context"
	"fmt"
	"time"

	shopcli "github.com/magicshop-live/magicshop-backend/shop-cli"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ivschat"
	"github.com/aws/aws-sdk-go/service/ivschat/ivschatiface"
)

// sessionDuration is how long a chat session stays valid before the client
// must request a new token.
const sessionDuration = 180 * time.Minute

// CapabilityProfileUser is the profile granted to signed-in shoppers; any
// other profile yields a read-only viewer token.
const CapabilityProfileUser = "user"

var userCapabilities = []string{ivschat.ChatTokenCapabilitySendMessage}

type TokenInput struct {
	RoomARN             string
	UserID              string
	CapabilitiesProfile string
}

type Token struct {
	SessionExpirationTime *time.Time `json:"sessionExpirationTime"`
	Token                 string     `json:"token"`
	TokenExpirationTime   *time.Time `json:"tokenExpirationTime"`
}

type Service struct {
	api     ivschatiface.IvschatAPI
	metrics shopcli.Metrics
}

func New(api ivschatiface.IvschatAPI, metrics shopcli.Metrics) *Service {
	return &Service{
		api:     api,
		metrics: metrics,
	}
}

// CreateToken mints a chat token for one participant in one room.
func (s *Service) CreateToken(ctx context.Context, input TokenInput) (Token, error) {
	if input.RoomARN == "" {
		return Token{}, fmt.Errorf("roomId is required")
	}
	if input.UserID == "" {
		return Token{}, fmt.Errorf("userId is required")
	}

	var capabilities []string
	if input.CapabilitiesProfile == CapabilityProfileUser {
		capabilities = userCapabilities
	}

	out, err := s.api.CreateChatTokenWithContext(ctx, &ivschat.CreateChatTokenInput{
		RoomIdentifier:           aws.String(input.RoomARN),
		UserId:                   aws.String(input.UserID),
		Capabilities:             aws.StringSlice(capabilities),
		SessionDurationInMinutes: aws.Int64(int64(sessionDuration / time.Minute)),
	})
	if err != nil {
		return Token{}, fmt.Errorf("failed to create chat token for room %v: %w", input.RoomARN, err)
	}
	s.metrics.Event(ctx, shopcli.ChatTokenIssuedMetric)

	return Token{
		SessionExpirationTime: out.SessionExpirationTime,
		Token:                 aws.StringValue(out.Token),
		TokenExpirationTime:   out.TokenExpirationTime,
	}, nil
}
