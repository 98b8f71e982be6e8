package events

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"

	sharedBus "github.com/davicafu/adsflow/internal/shared/infra/platform/bus"
	sharedUtils "github.com/davicafu/adsflow/internal/shared/infra/utils"
)

// snsAPI es el subconjunto del cliente SNS que usa el publisher.
type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPublisher publica en el topic cuyo ARN es destination.
type SNSPublisher struct {
	client snsAPI
	log    *zap.Logger
}

func NewSNSPublisher(client snsAPI, log *zap.Logger) *SNSPublisher {
	return &SNSPublisher{client: client, log: log}
}

func (p *SNSPublisher) Publish(ctx context.Context, destination string, event interface{}) error {
	data, err := sharedUtils.MarshalPayload(event)
	if err != nil {
		return fmt.Errorf("%w: %w", sharedBus.ErrPublisherUnavailable, err)
	}

	input := &sns.PublishInput{
		TopicArn: aws.String(destination),
		Message:  aws.String(string(data)),
	}
	if eventType := sharedBus.EventType(event); eventType != "" {
		input.MessageAttributes = map[string]types.MessageAttributeValue{
			"eventType": {DataType: aws.String("String"), StringValue: aws.String(eventType)},
		}
	}

	out, err := p.client.Publish(ctx, input)
	if err != nil {
		p.log.Error("Error publishing to SNS", zap.String("topic_arn", destination), zap.Error(err))
		return fmt.Errorf("%w: %w", sharedBus.ErrPublisherUnavailable, err)
	}

	p.log.Debug("Event published successfully", zap.String("topic_arn", destination), zap.String("message_id", aws.ToString(out.MessageId)))
	return nil
}

var _ sharedBus.EventBus = (*SNSPublisher)(nil)
