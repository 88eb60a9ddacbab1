package outbound

import "context"

type PublishVideoRequest struct {
	VideoFileName string
	StoryID       string
	UserID        string
	OutputName    string
}

type PublishVideoResponse struct {
	Location    string
	StoreRegion string
}

type VideoPublisherPort interface {
	Publish(ctx context.Context, req PublishVideoRequest) (*PublishVideoResponse, error)
}
