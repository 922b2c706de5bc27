package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/studyai-app/studyai-lambda/internal/container"
	"github.com/studyai-app/studyai-lambda/internal/router"
)

var chiLambda *chiadapter.ChiLambda

func init() {
	c := container.New()
	r := router.New(router.RouterConfig{
		GenQuizHandler:   c.GenQuizContainer.Handler,
		AttemptHandler:   c.AttemptContainer.Handler,
		AssistantHandler: c.AssistantContainer.Handler,
	})
	chiLambda = chiadapter.New(r)
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return chiLambda.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
