package genquiz

type GenQuizContainer struct {
	Handler *Handler
}

func NewGenQuizContainer() *GenQuizContainer {
	provider := NewOpenAIProvider(NewProviderConfigFromEnv())
	service := NewService(provider)
	handler := NewHandler(service)

	return &GenQuizContainer{
		Handler: handler,
	}
}
