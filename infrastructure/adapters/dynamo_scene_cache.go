package adapters

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/YabsiraYetwale/StoryForgeAI/application/ports/outbound"
	"github.com/YabsiraYetwale/StoryForgeAI/config"
	"github.com/YabsiraYetwale/StoryForgeAI/domain"
)

type dynamoSceneItem struct {
	StoryId      string  `dynamodbav:"story_id"`
	SceneId      string  `dynamodbav:"scene_id"`
	Text         string  `dynamodbav:"text"`
	SceneOrdinal int     `dynamodbav:"scene_ordinal"`
	Duration     float64 `dynamodbav:"duration"`
	TTL          int64   `dynamodbav:"ttl"`
}

type dynamoSceneCache struct {
	logger       outbound.LoggerPort
	dynamoSvc    *dynamodb.DynamoDB
	dynamoConfig *config.DynamoConfig
}

func NewDynamoSceneCache(logger outbound.LoggerPort, dynamoSvc *dynamodb.DynamoDB, dynamoConfig *config.DynamoConfig) outbound.SceneCachePort {
	return &dynamoSceneCache{
		logger:       logger,
		dynamoSvc:    dynamoSvc,
		dynamoConfig: dynamoConfig,
	}
}

func (c *dynamoSceneCache) Save(ctx context.Context, clip domain.SceneClip) error {
	item := dynamoSceneItem{
		StoryId:      clip.StoryID,
		SceneId:      clip.ID,
		Text:         clip.Text,
		SceneOrdinal: clip.Ordinal,
		Duration:     clip.Duration,
		TTL:          time.Now().Add(time.Duration(c.dynamoConfig.TtlMinutes) * time.Minute).Unix(),
	}
	av, err := dynamodbattribute.MarshalMap(item)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to marshal scene item", map[string]interface{}{
			"item": item,
		})
		return err
	}

	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.dynamoConfig.TableName),
	}

	_, err = c.dynamoSvc.PutItemWithContext(ctx, input)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save scene item", map[string]interface{}{
			"item": item,
		})
		return err
	}

	return nil
}
